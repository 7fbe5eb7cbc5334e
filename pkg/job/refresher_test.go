package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobswipe/backend/pkg/resume"
)

// warmSignals serves a fixed set of stored profiles.
type warmSignals struct {
	stubSignals
	profiles map[uuid.UUID]resume.Signals
}

func (s *warmSignals) ListSignals(context.Context, int) (map[uuid.UUID]resume.Signals, error) {
	return s.profiles, nil
}

func TestRefreshWarmsDistinctQueriesOnly(t *testing.T) {
	provider := &stubProvider{}
	repo := &warmSignals{profiles: map[uuid.UUID]resume.Signals{
		uuid.New(): {Profession: "teacher"},
		uuid.New(): {Profession: "teacher"},
		uuid.New(): {Profession: resume.ProfessionGeneral},
	}}

	r := NewRefresher(provider, repo, 30)
	r.refresh(context.Background())

	assert.ElementsMatch(t, []string{"teacher jobs", "entry level jobs"}, provider.queries)
}

func TestRefreshSkipsEmptyProfileSet(t *testing.T) {
	provider := &stubProvider{}
	r := NewRefresher(provider, &warmSignals{profiles: map[uuid.UUID]resume.Signals{}}, 30)
	r.refresh(context.Background())
	assert.Empty(t, provider.queries)
}

func TestZeroIntervalDisablesRefresher(t *testing.T) {
	provider := &stubProvider{}
	repo := &warmSignals{profiles: map[uuid.UUID]resume.Signals{
		uuid.New(): {Profession: "teacher"},
	}}

	r := NewRefresher(provider, repo, 0)
	require.NoError(t, r.Start(context.Background()))
	r.Stop()

	assert.Empty(t, provider.queries)
}
