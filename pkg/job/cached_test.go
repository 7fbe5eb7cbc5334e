package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCache is a TTL-less in-memory Cache for tests.
type memCache struct {
	entries map[string][]byte
	getErr  error
	sets    int
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.sets++
	c.entries[key] = value
	return nil
}

func TestCachedProviderHitSkipsUpstream(t *testing.T) {
	upstream := &stubProvider{postings: []Posting{{ID: "j1", Title: "Teacher"}}}
	cache := newMemCache()
	p := NewCachedProvider(upstream, cache, time.Minute)

	first, err := p.Search(context.Background(), "teacher jobs", 1, 1)
	require.NoError(t, err)
	second, err := p.Search(context.Background(), "teacher jobs", 1, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, upstream.queries, 1)
	assert.Equal(t, 1, cache.sets)
}

func TestCachedProviderKeyIncludesPaging(t *testing.T) {
	upstream := &stubProvider{postings: []Posting{{ID: "j1"}}}
	p := NewCachedProvider(upstream, newMemCache(), time.Minute)

	_, err := p.Search(context.Background(), "q", 1, 1)
	require.NoError(t, err)
	_, err = p.Search(context.Background(), "q", 2, 1)
	require.NoError(t, err)
	assert.Len(t, upstream.queries, 2)
}

func TestCachedProviderCacheErrorFallsThrough(t *testing.T) {
	upstream := &stubProvider{postings: []Posting{{ID: "j1"}}}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	p := NewCachedProvider(upstream, cache, time.Minute)

	got, err := p.Search(context.Background(), "q", 1, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Len(t, upstream.queries, 1)
}

func TestCachedProviderDoesNotMaskProviderFailure(t *testing.T) {
	upstream := &stubProvider{err: ErrProvider}
	p := NewCachedProvider(upstream, newMemCache(), time.Minute)

	_, err := p.Search(context.Background(), "q", 1, 1)
	assert.ErrorIs(t, err, ErrProvider)
}
