package job

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobswipe/backend/pkg/resume"
)

// stubProvider records queries and replies from canned data.
type stubProvider struct {
	queries  []string
	postings []Posting
	err      error
}

func (p *stubProvider) Search(_ context.Context, query string, _, _ int) ([]Posting, error) {
	p.queries = append(p.queries, query)
	if p.err != nil {
		return nil, p.err
	}
	return p.postings, nil
}

func (p *stubProvider) Details(_ context.Context, jobID string) (Posting, error) {
	if p.err != nil {
		return Posting{}, p.err
	}
	for _, posting := range p.postings {
		if posting.ID == jobID {
			return posting, nil
		}
	}
	return Posting{}, ErrProvider
}

// stubSignals implements the resume.Repository port with fixed signals.
type stubSignals struct {
	signals resume.Signals
	err     error
}

func (s *stubSignals) CreateMeta(context.Context, resume.Resume) error { return nil }
func (s *stubSignals) GetMetaForOwner(context.Context, uuid.UUID) (resume.Resume, error) {
	return resume.Resume{}, resume.ErrNotFound
}
func (s *stubSignals) SaveSignals(context.Context, uuid.UUID, resume.Signals) error { return nil }
func (s *stubSignals) LoadSignals(context.Context, uuid.UUID) (resume.Signals, error) {
	return s.signals, s.err
}
func (s *stubSignals) ListSignals(context.Context, int) (map[uuid.UUID]resume.Signals, error) {
	return map[uuid.UUID]resume.Signals{uuid.New(): s.signals}, nil
}

func TestFeedRanksProviderResults(t *testing.T) {
	provider := &stubProvider{postings: []Posting{
		{ID: "other", Title: "Barista", Description: "coffee"},
		{ID: "match", Title: "Math Teacher", Description: "teacher with classroom management"},
	}}
	profiles := &stubSignals{signals: resume.Signals{
		Profession: "teacher",
		Skills:     []string{"classroom management"},
		UpdatedAt:  time.Now().UTC(),
	}}
	svc := NewFeedService(provider, profiles, NewScorer(zeroRand))

	ranked, err := svc.Feed(context.Background(), uuid.New(), 1, 1)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "match", ranked[0].ID)
	assert.Equal(t, []string{"teacher jobs"}, provider.queries)
}

func TestFeedEmptyResultIsNotAnError(t *testing.T) {
	provider := &stubProvider{}
	profiles := &stubSignals{signals: resume.DefaultSignals()}
	svc := NewFeedService(provider, profiles, NewScorer(zeroRand))

	ranked, err := svc.Feed(context.Background(), uuid.New(), 1, 1)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestFeedProviderFailureSkipsRanking(t *testing.T) {
	provider := &stubProvider{err: ErrProvider}
	profiles := &stubSignals{signals: resume.DefaultSignals()}
	svc := NewFeedService(provider, profiles, NewScorer(zeroRand))

	ranked, err := svc.Feed(context.Background(), uuid.New(), 1, 1)
	assert.ErrorIs(t, err, ErrProvider)
	assert.Nil(t, ranked)
}

func TestDetailsDelegatesToProvider(t *testing.T) {
	provider := &stubProvider{postings: []Posting{{ID: "j1", Title: "Nurse"}}}
	svc := NewFeedService(provider, &stubSignals{signals: resume.DefaultSignals()}, NewScorer(zeroRand))

	p, err := svc.Details(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, "Nurse", p.Title)
}
