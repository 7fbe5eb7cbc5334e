package liked

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jobswipe/backend/pkg/job"
)

// descriptionLimit caps the stored description; the full text stays with
// the provider and can be refetched via the job details endpoint.
const descriptionLimit = 200

// UseCase covers the liked-job lifecycle: like, list, apply, remove.
type UseCase interface {
	Like(ctx context.Context, userID uuid.UUID, ranked job.Ranked) (Job, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Job, error)
	MarkApplied(ctx context.Context, userID, id uuid.UUID, app *Application) (Job, error)
	Remove(ctx context.Context, userID, id uuid.UUID) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService returns the default UseCase implementation.
func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Like persists a snapshot of the ranked posting. If the repository
// rejects the write the job is NOT considered liked: the error surfaces
// and nothing is retried.
func (s *service) Like(ctx context.Context, userID uuid.UUID, ranked job.Ranked) (Job, error) {
	skills := ranked.MatchingSkills
	if skills == nil {
		skills = []string{}
	}
	snapshot := Job{
		ID:             uuid.New(),
		UserID:         userID,
		JobID:          ranked.ID,
		Title:          ranked.Title,
		Company:        ranked.Company,
		Location:       ranked.Location,
		Description:    truncate(ranked.Description, descriptionLimit),
		ApplyLink:      ranked.ApplyLink,
		PublisherLink:  ranked.PublisherLink,
		MatchScore:     ranked.MatchScore,
		MatchingSkills: skills,
		LikedAt:        s.now(),
		Applied:        false,
	}
	if snapshot.PublisherLink == "" {
		snapshot.PublisherLink = ranked.ApplyLink
	}
	if err := s.repo.Create(ctx, snapshot); err != nil {
		return Job{}, err
	}
	return snapshot, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Job, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *service) MarkApplied(ctx context.Context, userID, id uuid.UUID, app *Application) (Job, error) {
	appliedAt := s.now()
	if err := s.repo.MarkApplied(ctx, userID, id, appliedAt, app); err != nil {
		return Job{}, err
	}
	return s.repo.GetForUser(ctx, userID, id)
}

func (s *service) Remove(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// Back off to a rune boundary so the cut never splits a multi-byte
	// character.
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut]) + "..."
}
