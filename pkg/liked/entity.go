package liked

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Job is the snapshot persisted when a user likes a posting. It freezes
// the posting fields and the match annotation as they were at like time;
// later ranking passes do not touch it.
type Job struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	JobID          string     `json:"jobId"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	Description    string     `json:"description"`
	ApplyLink      string     `json:"applyLink"`
	PublisherLink  string     `json:"publisherLink"`
	MatchScore     int        `json:"matchScore"`
	MatchingSkills []string   `json:"matchingSkills"`
	LikedAt        time.Time  `json:"likedAt"`
	Applied        bool       `json:"applied"`
	AppliedAt      *time.Time `json:"appliedAt,omitempty"`
	Application    *Application `json:"application,omitempty"`
}

// Application holds the details a user files when marking a job applied.
type Application struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl"`
}

var (
	ErrNotFound     = errors.New("liked job not found")
	ErrAlreadyLiked = errors.New("job already liked")
)

// Repository persists liked-job snapshots per user.
type Repository interface {
	Create(ctx context.Context, j Job) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Job, error)
	GetForUser(ctx context.Context, userID uuid.UUID, id uuid.UUID) (Job, error)
	MarkApplied(ctx context.Context, userID uuid.UUID, id uuid.UUID, appliedAt time.Time, app *Application) error
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}
