package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobswipe/backend/api/http/presenter"
	"github.com/jobswipe/backend/pkg/job"
	"github.com/jobswipe/backend/pkg/liked"
)

type LikedHandler struct {
	svc liked.UseCase
}

func NewLikedHandler(svc liked.UseCase) *LikedHandler {
	return &LikedHandler{svc: svc}
}

type likeRequest struct {
	JobID          string   `json:"jobId"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	ApplyLink      string   `json:"applyLink"`
	PublisherLink  string   `json:"publisherLink"`
	MatchScore     int      `json:"matchScore"`
	MatchingSkills []string `json:"matchingSkills"`
}

// Like saves a snapshot of a swiped-right posting.
// @Summary Like a job
// @Tags    liked
// @Accept  json
// @Produce json
// @Param   input body likeRequest true "posting snapshot from the feed"
// @Security BearerAuth
// @Success 201 {object} liked.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /liked [post]
func (h *LikedHandler) Like(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	var req likeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.JobID) == "" {
		return presenter.Error(c, http.StatusBadRequest, "jobId is required")
	}
	ranked := job.Ranked{
		Posting: job.Posting{
			ID:            req.JobID,
			Title:         req.Title,
			Company:       req.Company,
			Location:      req.Location,
			Description:   req.Description,
			ApplyLink:     req.ApplyLink,
			PublisherLink: req.PublisherLink,
		},
		MatchScore:     req.MatchScore,
		MatchingSkills: req.MatchingSkills,
	}
	snapshot, err := h.svc.Like(c.Context(), userID, ranked)
	if err != nil {
		if errors.Is(err, liked.ErrAlreadyLiked) {
			return presenter.Error(c, http.StatusConflict, "job already liked")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to save liked job")
	}
	return presenter.JSON(c, http.StatusCreated, snapshot)
}

// List returns the user's liked jobs, newest first.
// @Summary Liked jobs
// @Tags    liked
// @Produce json
// @Param   limit query int false "page size (default 50, max 200)"
// @Param   offset query int false "offset"
// @Security BearerAuth
// @Success 200 {array} liked.Job
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /liked [get]
func (h *LikedHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	limit, offset := parseLimitOffset(c, 50)
	jobs, err := h.svc.List(c.Context(), userID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list liked jobs")
	}
	if jobs == nil {
		jobs = []liked.Job{}
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

type applyRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl"`
}

// Apply marks a liked job as applied, optionally with application
// details.
// @Summary Mark liked job applied
// @Tags    liked
// @Accept  json
// @Produce json
// @Param   id path string true "liked job id"
// @Param   input body applyRequest false "application details"
// @Security BearerAuth
// @Success 200 {object} liked.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /liked/{id}/apply [post]
func (h *LikedHandler) Apply(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid liked job id")
	}
	var app *liked.Application
	var req applyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
		app = &liked.Application{
			FullName:    req.FullName,
			Email:       req.Email,
			Phone:       req.Phone,
			CoverLetter: req.CoverLetter,
			ResumeURL:   req.ResumeURL,
		}
	}
	snapshot, err := h.svc.MarkApplied(c.Context(), userID, id, app)
	if err != nil {
		if errors.Is(err, liked.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "liked job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to mark applied")
	}
	return presenter.JSON(c, http.StatusOK, snapshot)
}

// Remove deletes a liked job (swipe undo).
// @Summary Remove liked job
// @Tags    liked
// @Produce json
// @Param   id path string true "liked job id"
// @Security BearerAuth
// @Success 204 {string} string ""
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /liked/{id} [delete]
func (h *LikedHandler) Remove(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid liked job id")
	}
	if err := h.svc.Remove(c.Context(), userID, id); err != nil {
		if errors.Is(err, liked.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "liked job not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to remove liked job")
	}
	return c.SendStatus(http.StatusNoContent)
}
