package job

import (
	"context"
	"errors"
)

// Posting is a job listing as it arrives from the external provider.
// Immutable for the duration of a ranking pass.
type Posting struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Company       string `json:"company"`
	Location      string `json:"location"`
	Salary        string `json:"salary"`
	Description   string `json:"description"`
	ApplyLink     string `json:"applyLink"`
	PublisherLink string `json:"publisherLink"`
}

// Ranked is a Posting annotated with its heuristic fit against the user
// profile. Recomputed on every feed request, never persisted as-is (a
// snapshot is stored only when the user likes the job).
type Ranked struct {
	Posting
	MatchScore     int      `json:"matchScore"`
	MatchingSkills []string `json:"matchingSkills"`
}

// ErrProvider wraps any failure of the external job-search provider.
// A failed fetch is surfaced as such; it is never passed off as "no jobs
// found", and no partial ranked list is produced.
var ErrProvider = errors.New("job provider request failed")

// ErrNotFound marks a job id the provider does not know.
var ErrNotFound = errors.New("job not found")

// Provider is the port for the external job-search API.
type Provider interface {
	Search(ctx context.Context, query string, page, pages int) ([]Posting, error)
	Details(ctx context.Context, jobID string) (Posting, error)
}
