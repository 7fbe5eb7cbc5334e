package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jobswipe/backend/api/http/presenter"
	"github.com/jobswipe/backend/pkg/job"
)

type JobsHandler struct {
	feed job.FeedUseCase
}

func NewJobsHandler(feed job.FeedUseCase) *JobsHandler {
	return &JobsHandler{feed: feed}
}

// Feed returns the ranked job feed for the authenticated user.
// @Summary Job feed
// @Description Jobs matching the user's profile, annotated with match score and matching skills, best first.
// @Tags    jobs
// @Produce json
// @Param   page query int false "provider page (default 1)"
// @Security BearerAuth
// @Success 200 {array} job.Ranked
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /jobs [get]
func (h *JobsHandler) Feed(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	page := 1
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	ranked, err := h.feed.Feed(c.Context(), userID, page, 1)
	if err != nil {
		// A provider failure is distinct from an empty result set.
		if errors.Is(err, job.ErrProvider) {
			return presenter.Error(c, http.StatusBadGateway, "job provider unavailable")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to build feed")
	}
	if ranked == nil {
		ranked = []job.Ranked{}
	}
	return presenter.JSON(c, http.StatusOK, ranked)
}

// Details returns the full posting for one external job id.
// @Summary Job details
// @Tags    jobs
// @Produce json
// @Param   id path string true "external job id"
// @Security BearerAuth
// @Success 200 {object} job.Posting
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) Details(c *fiber.Ctx) error {
	jobID := c.Params("id")
	if jobID == "" {
		return presenter.Error(c, http.StatusBadRequest, "job id is required")
	}
	posting, err := h.feed.Details(c.Context(), jobID)
	if err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "job not found")
		case errors.Is(err, job.ErrProvider):
			return presenter.Error(c, http.StatusBadGateway, "job provider unavailable")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to load job")
		}
	}
	return presenter.JSON(c, http.StatusOK, posting)
}
