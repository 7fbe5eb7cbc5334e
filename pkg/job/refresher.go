package job

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/jobswipe/backend/pkg/resume"
)

// Refresher periodically re-runs every stored profile's search query so
// the provider cache is warm when users open their feed.
type Refresher struct {
	cron     *cron.Cron
	provider Provider
	profiles resume.Repository
	spec     string
}

// NewRefresher builds a Refresher firing every intervalMinutes minutes.
// An interval of zero or less disables it: Start and Stop become no-ops.
func NewRefresher(provider Provider, profiles resume.Repository, intervalMinutes int) *Refresher {
	r := &Refresher{
		provider: provider,
		profiles: profiles,
	}
	if intervalMinutes > 0 {
		r.cron = cron.New()
		r.spec = fmt.Sprintf("@every %dm", intervalMinutes)
	}
	return r
}

// Start registers the cron job and runs one warm-up immediately.
func (r *Refresher) Start(ctx context.Context) error {
	if r.cron == nil {
		log.Println("[refresher] disabled")
		return nil
	}
	_, err := r.cron.AddFunc(r.spec, func() { r.refresh(ctx) })
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	r.cron.Start()
	log.Printf("[refresher] started, spec %s", r.spec)
	go r.refresh(ctx)
	return nil
}

// Stop shuts the scheduler down.
func (r *Refresher) Stop() {
	if r.cron == nil {
		return
	}
	r.cron.Stop()
	log.Println("[refresher] stopped")
}

func (r *Refresher) refresh(ctx context.Context) {
	profiles, err := r.profiles.ListSignals(ctx, 200)
	if err != nil {
		log.Printf("[refresher] list signals: %v", err)
		return
	}
	if len(profiles) == 0 {
		return
	}
	// Distinct queries only; many users share the fallback query.
	queries := make(map[string]struct{}, len(profiles))
	for _, s := range profiles {
		queries[SearchQuery(s)] = struct{}{}
	}
	for q := range queries {
		if _, err := r.provider.Search(ctx, q, 1, 1); err != nil {
			log.Printf("[refresher] warm %q: %v", q, err)
		}
	}
	log.Printf("[refresher] warmed %d quer(ies)", len(queries))
}
