package job

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Cache is a byte-blob cache port (Redis in production, in-memory in
// tests). Get returns (nil, nil) on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedProvider decorates a Provider with search-result caching. The
// cache is an optimization only: cache errors fall through to a direct
// fetch, and provider failures are never masked by stale entries.
type CachedProvider struct {
	next  Provider
	cache Cache
	ttl   time.Duration
}

// NewCachedProvider wraps next with a cache. A zero ttl defaults to 15
// minutes.
func NewCachedProvider(next Provider, cache Cache, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &CachedProvider{next: next, cache: cache, ttl: ttl}
}

func searchKey(query string, page, pages int) string {
	return fmt.Sprintf("jobs:search:%s:%d:%d", query, page, pages)
}

func (p *CachedProvider) Search(ctx context.Context, query string, page, pages int) ([]Posting, error) {
	key := searchKey(query, page, pages)
	if raw, err := p.cache.Get(ctx, key); err != nil {
		log.Printf("[jobs] cache get %q: %v", key, err)
	} else if raw != nil {
		var cached []Posting
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		log.Printf("[jobs] corrupt cache entry %q, refetching", key)
	}

	postings, err := p.next.Search(ctx, query, page, pages)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(postings); err == nil {
		if err := p.cache.Set(ctx, key, raw, p.ttl); err != nil {
			log.Printf("[jobs] cache set %q: %v", key, err)
		}
	}
	return postings, nil
}

// Details is not cached; detail views are rare compared to feed searches.
func (p *CachedProvider) Details(ctx context.Context, jobID string) (Posting, error) {
	return p.next.Details(ctx, jobID)
}
