package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ProfessionGeneral is the fallback profession when a resume gives no
// clear signal.
const ProfessionGeneral = "general"

// Resume holds metadata of an uploaded resume file.
type Resume struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Filename  string    `json:"filename"`
	MimeType  string    `json:"mimeType"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// Signals is the profile derived from a resume: a profession label from
// the fixed taxonomy (or "general") and the skills found in the text.
// Each upload replaces the previous signals wholesale; there is no
// partial-update path.
type Signals struct {
	Profession string   `json:"profession"`
	Skills     []string `json:"skills"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DefaultSignals is what a user without an uploaded resume gets.
func DefaultSignals() Signals {
	return Signals{Profession: ProfessionGeneral, Skills: []string{}}
}

var (
	// ErrExtraction marks an unreadable or unsupported resume file. The
	// caller keeps whatever signals were stored before the failed upload.
	ErrExtraction = errors.New("resume text extraction failed")
	ErrNotFound   = errors.New("resume not found")
)

// Repository persists resume metadata and per-user signals.
type Repository interface {
	CreateMeta(ctx context.Context, r Resume) error
	GetMetaForOwner(ctx context.Context, ownerID uuid.UUID) (Resume, error)
	// SaveSignals replaces the stored signals for the user entirely.
	SaveSignals(ctx context.Context, userID uuid.UUID, s Signals) error
	// LoadSignals returns DefaultSignals (no error) when the user has
	// never uploaded a resume.
	LoadSignals(ctx context.Context, userID uuid.UUID) (Signals, error)
	// ListSignals returns stored signals with their owners, for feed
	// warm-up. Order is unspecified.
	ListSignals(ctx context.Context, limit int) (map[uuid.UUID]Signals, error)
}
