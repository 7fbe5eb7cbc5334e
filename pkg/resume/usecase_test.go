package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory Repository for pipeline tests.
type memRepo struct {
	metas      []Resume
	signals    map[uuid.UUID]Signals
	failMeta   error
	failSave   error
	saveCalled int
}

func newMemRepo() *memRepo {
	return &memRepo{signals: map[uuid.UUID]Signals{}}
}

func (m *memRepo) CreateMeta(_ context.Context, r Resume) error {
	if m.failMeta != nil {
		return m.failMeta
	}
	m.metas = append(m.metas, r)
	return nil
}

func (m *memRepo) GetMetaForOwner(_ context.Context, ownerID uuid.UUID) (Resume, error) {
	for i := len(m.metas) - 1; i >= 0; i-- {
		if m.metas[i].OwnerID == ownerID {
			return m.metas[i], nil
		}
	}
	return Resume{}, ErrNotFound
}

func (m *memRepo) SaveSignals(_ context.Context, userID uuid.UUID, s Signals) error {
	m.saveCalled++
	if m.failSave != nil {
		return m.failSave
	}
	m.signals[userID] = s
	return nil
}

func (m *memRepo) LoadSignals(_ context.Context, userID uuid.UUID) (Signals, error) {
	if s, ok := m.signals[userID]; ok {
		return s, nil
	}
	return DefaultSignals(), nil
}

func (m *memRepo) ListSignals(_ context.Context, limit int) (map[uuid.UUID]Signals, error) {
	out := make(map[uuid.UUID]Signals, len(m.signals))
	for k, v := range m.signals {
		out[k] = v
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func TestProcessUploadDerivesAndStoresSignals(t *testing.T) {
	repo := newMemRepo()
	svc := NewSignalsService(repo)
	owner := uuid.New()

	res, err := svc.ProcessUpload(context.Background(), owner, "cv.txt", "text/plain",
		[]byte("Experienced teacher with curriculum development and classroom management skills, 5 years teaching."))
	require.NoError(t, err)
	assert.Equal(t, "teacher", res.Signals.Profession)
	assert.Contains(t, res.Signals.Skills, "curriculum development")
	assert.Contains(t, res.Signals.Skills, "classroom management")
	assert.Equal(t, owner, res.Resume.OwnerID)

	// Round-trip through the store.
	loaded, err := svc.Signals(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, res.Signals.Profession, loaded.Profession)
	assert.Equal(t, res.Signals.Skills, loaded.Skills)
}

func TestProcessUploadReplacesSignalsWholesale(t *testing.T) {
	repo := newMemRepo()
	svc := NewSignalsService(repo)
	owner := uuid.New()

	_, err := svc.ProcessUpload(context.Background(), owner, "cv.txt", "text/plain",
		[]byte("nurse nursing hospital patient care"))
	require.NoError(t, err)

	_, err = svc.ProcessUpload(context.Background(), owner, "cv2.txt", "text/plain",
		[]byte("software developer programming docker kubernetes"))
	require.NoError(t, err)

	loaded, err := svc.Signals(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "software engineer", loaded.Profession)
	assert.NotContains(t, loaded.Skills, "patient care")
}

func TestProcessUploadExtractionFailureLeavesPriorSignals(t *testing.T) {
	repo := newMemRepo()
	svc := NewSignalsService(repo)
	owner := uuid.New()

	_, err := svc.ProcessUpload(context.Background(), owner, "cv.txt", "text/plain",
		[]byte("teacher teaching classroom curriculum"))
	require.NoError(t, err)

	_, err = svc.ProcessUpload(context.Background(), owner, "cv.exe", "application/octet-stream", []byte("junk"))
	assert.ErrorIs(t, err, ErrExtraction)

	loaded, err := svc.Signals(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "teacher", loaded.Profession)
}

func TestProcessUploadNoPartialEffectsOnMetaFailure(t *testing.T) {
	repo := newMemRepo()
	repo.failMeta = errors.New("db down")
	svc := NewSignalsService(repo)

	_, err := svc.ProcessUpload(context.Background(), uuid.New(), "cv.txt", "text/plain",
		[]byte("teacher teaching classroom"))
	require.Error(t, err)
	assert.Zero(t, repo.saveCalled)
}

func TestProcessUploadEmptyContent(t *testing.T) {
	svc := NewSignalsService(newMemRepo())
	_, err := svc.ProcessUpload(context.Background(), uuid.New(), "cv.txt", "text/plain", []byte("   "))
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestSignalsDefaultWhenAbsent(t *testing.T) {
	svc := NewSignalsService(newMemRepo())
	s, err := svc.Signals(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, ProfessionGeneral, s.Profession)
	assert.Empty(t, s.Skills)
}

func TestMetaReturnsLatestUpload(t *testing.T) {
	repo := newMemRepo()
	svc := NewSignalsService(repo)
	owner := uuid.New()

	_, err := svc.Meta(context.Background(), owner)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ProcessUpload(context.Background(), owner, "first.txt", "text/plain",
		[]byte("teacher teaching classroom curriculum"))
	require.NoError(t, err)
	_, err = svc.ProcessUpload(context.Background(), owner, "second.txt", "text/plain",
		[]byte("teacher teaching classroom curriculum"))
	require.NoError(t, err)

	meta, err := svc.Meta(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "second.txt", meta.Filename)
	assert.Equal(t, owner, meta.OwnerID)
}
