package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobswipe/backend/pkg/job"
)

type fakeFeed struct {
	ranked []job.Ranked
	err    error
}

func (f *fakeFeed) Feed(ctx context.Context, userID uuid.UUID, page, pages int) ([]job.Ranked, error) {
	return f.ranked, f.err
}

func (f *fakeFeed) Details(ctx context.Context, jobID string) (job.Posting, error) {
	if jobID == "known" {
		return job.Posting{ID: "known", Title: "Nurse"}, nil
	}
	if f.err != nil {
		return job.Posting{}, f.err
	}
	return job.Posting{}, fmt.Errorf("%w: %q", job.ErrNotFound, jobID)
}

func jobsApp(feed job.FeedUseCase) *fiber.App {
	app := fiber.New()
	identity := func(c *fiber.Ctx) error {
		c.Locals("userId", uuid.New().String())
		return c.Next()
	}
	h := NewJobsHandler(feed)
	app.Get("/jobs", identity, h.Feed)
	app.Get("/jobs/:id", identity, h.Details)
	return app
}

func TestFeedReturnsRankedJobs(t *testing.T) {
	feed := &fakeFeed{ranked: []job.Ranked{
		{Posting: job.Posting{ID: "a", Title: "Nurse"}, MatchScore: 75, MatchingSkills: []string{"patient care"}},
	}}
	resp, err := jobsApp(feed).Test(httptest.NewRequest(http.MethodGet, "/jobs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []job.Ranked
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, 75, got[0].MatchScore)
}

func TestFeedEmptyIsOKNotError(t *testing.T) {
	resp, err := jobsApp(&fakeFeed{}).Test(httptest.NewRequest(http.MethodGet, "/jobs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []job.Ranked
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Empty(t, got)
}

func TestFeedProviderFailureIsBadGateway(t *testing.T) {
	feed := &fakeFeed{err: fmt.Errorf("%w: http 429", job.ErrProvider)}
	resp, err := jobsApp(feed).Test(httptest.NewRequest(http.MethodGet, "/jobs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestFeedRequiresIdentity(t *testing.T) {
	app := fiber.New()
	app.Get("/jobs", NewJobsHandler(&fakeFeed{}).Feed)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDetailsStatusCodes(t *testing.T) {
	app := jobsApp(&fakeFeed{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs/known", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/jobs/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
