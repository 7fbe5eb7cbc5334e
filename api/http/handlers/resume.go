package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jobswipe/backend/api/http/presenter"
	"github.com/jobswipe/backend/pkg/resume"
)

type ResumeHandler struct {
	svc resume.SignalsUseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.SignalsUseCase) *ResumeHandler {
	return &ResumeHandler{svc: svc, maxBytes: 15 << 20} // 15MB
}

// Upload accepts a resume file, extracts its text and replaces the
// user's stored signals with the profession and skills derived from it.
// @Summary Upload resume
// @Description Accepts PDF, DOCX, TXT or MD, derives profession and skills and stores them as the user's profile.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume file (PDF, DOCX, TXT or MD)"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.ProcessUpload(c.Context(), userID, fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, resume.ErrExtraction) {
			return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to process resume")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"resumeId":   result.Resume.ID.String(),
		"filename":   result.Resume.Filename,
		"sizeB":      result.Resume.Size,
		"profession": result.Signals.Profession,
		"skills":     result.Signals.Skills,
		"updatedAt":  result.Signals.UpdatedAt,
	})
}

// Signals returns the stored signals for the authenticated user. Users
// without an uploaded resume get the general profile.
// @Summary Current profile signals
// @Tags    resume
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resume.Signals
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /resume/signals [get]
func (h *ResumeHandler) Signals(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	signals, err := h.svc.Signals(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load signals")
	}
	return presenter.JSON(c, http.StatusOK, signals)
}

// Meta returns metadata of the latest uploaded resume.
// @Summary Current resume metadata
// @Tags    resume
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resume.Resume
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume [get]
func (h *ResumeHandler) Meta(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	meta, err := h.svc.Meta(c.Context(), userID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "no resume uploaded")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume metadata")
	}
	return presenter.JSON(c, http.StatusOK, meta)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
