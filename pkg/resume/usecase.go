package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UploadResult is what a successful resume upload produces.
type UploadResult struct {
	Resume  Resume
	Signals Signals
}

// SignalsUseCase is the upload pipeline: extract text, classify the
// profession, extract skills, persist. Each step is fallible and the
// pipeline short-circuits on the first failure, so no partial signals are
// ever stored; a failed upload leaves the previous signals in effect.
type SignalsUseCase interface {
	ProcessUpload(ctx context.Context, ownerID uuid.UUID, filename, mimeType string, data []byte) (UploadResult, error)
	Signals(ctx context.Context, userID uuid.UUID) (Signals, error)
	// Meta returns the latest uploaded resume's metadata, ErrNotFound
	// when the user never uploaded one.
	Meta(ctx context.Context, userID uuid.UUID) (Resume, error)
}

type signalsService struct {
	repo Repository
	now  func() time.Time
}

// NewSignalsService returns the default SignalsUseCase implementation.
func NewSignalsService(repo Repository) SignalsUseCase {
	return &signalsService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *signalsService) ProcessUpload(ctx context.Context, ownerID uuid.UUID, filename, mimeType string, data []byte) (UploadResult, error) {
	text, err := ExtractText(filename, data)
	if err != nil {
		return UploadResult{}, err
	}
	if text == "" {
		return UploadResult{}, fmt.Errorf("%w: empty resume content", ErrExtraction)
	}

	// Pure, synchronous steps; nothing is persisted until both succeed.
	signals := Signals{
		Profession: ClassifyProfession(text),
		Skills:     ExtractSkills(text),
		UpdatedAt:  s.now(),
	}

	meta := Resume{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Filename:  filename,
		MimeType:  mimeType,
		Size:      int64(len(data)),
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateMeta(ctx, meta); err != nil {
		return UploadResult{}, fmt.Errorf("save resume metadata: %w", err)
	}
	// Wholesale replace: a re-upload fully overwrites prior signals.
	if err := s.repo.SaveSignals(ctx, ownerID, signals); err != nil {
		return UploadResult{}, fmt.Errorf("save resume signals: %w", err)
	}
	return UploadResult{Resume: meta, Signals: signals}, nil
}

func (s *signalsService) Signals(ctx context.Context, userID uuid.UUID) (Signals, error) {
	return s.repo.LoadSignals(ctx, userID)
}

func (s *signalsService) Meta(ctx context.Context, userID uuid.UUID) (Resume, error) {
	return s.repo.GetMetaForOwner(ctx, userID)
}
