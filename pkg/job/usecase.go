package job

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jobswipe/backend/pkg/resume"
)

// FeedUseCase serves the swipe feed: postings fetched from the provider
// for the user's profile query, scored and ranked.
type FeedUseCase interface {
	Feed(ctx context.Context, userID uuid.UUID, page, pages int) ([]Ranked, error)
	Details(ctx context.Context, jobID string) (Posting, error)
}

type feedService struct {
	provider Provider
	profiles resume.Repository
	scorer   *Scorer
}

// NewFeedService wires the feed over a provider, the signals store and a
// scorer.
func NewFeedService(provider Provider, profiles resume.Repository, scorer *Scorer) FeedUseCase {
	return &feedService{provider: provider, profiles: profiles, scorer: scorer}
}

func (s *feedService) Feed(ctx context.Context, userID uuid.UUID, page, pages int) ([]Ranked, error) {
	signals, err := s.profiles.LoadSignals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load signals: %w", err)
	}
	postings, err := s.provider.Search(ctx, SearchQuery(signals), page, pages)
	if err != nil {
		// Provider failure skips ranking entirely; no degraded list.
		return nil, err
	}
	return s.scorer.Rank(postings, signals.Skills, signals.Profession), nil
}

func (s *feedService) Details(ctx context.Context, jobID string) (Posting, error) {
	return s.provider.Details(ctx, jobID)
}
