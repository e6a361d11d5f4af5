package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prepforge/interview-engine/internal/models"
	"github.com/prepforge/interview-engine/internal/resume"
)

// maxResumeSize bounds uploaded resume files.
const maxResumeSize = 5 << 20 // 5 MiB

// handleUploadResume accepts a multipart form with the resume file, the
// target job description and the owning user.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid multipart form")
		return
	}

	userID := strings.TrimSpace(r.FormValue("user_id"))
	if userID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "user_id is required")
		return
	}

	jobDescription := strings.TrimSpace(r.FormValue("job_description"))
	if jobDescription == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "job_description is required")
		return
	}

	user, err := s.repo.GetUserByID(r.Context(), userID)
	if err != nil {
		slog.Error("failed to load user", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to upload resume")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "user_not_found", "user not found")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "resume file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "failed to read resume file")
		return
	}

	text, err := resume.ExtractText(content, header.Filename)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			respondError(w, http.StatusBadRequest, "unsupported_format", err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, "invalid_request", "failed to extract resume text")
		return
	}

	if strings.TrimSpace(text) == "" {
		respondError(w, http.StatusBadRequest, "empty_resume", "no text found in the resume")
		return
	}

	details := resume.ExtractDetails(text)
	summary := s.summarizer.Summarize(r.Context(), text, jobDescription)

	rec := &models.Resume{
		UserID:         userID,
		Filename:       header.Filename,
		JobDescription: jobDescription,
		Name:           details.Name,
		Skills:         details.Skills,
		WorkExperience: details.WorkExperience,
		Projects:       details.Projects,
		Summary:        summary,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.CreateResume(r.Context(), rec); err != nil {
		slog.Error("failed to store resume", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to store resume")
		return
	}

	slog.Info("resume uploaded", "user_id", userID, "resume_id", rec.ID, "filename", rec.Filename)

	respondJSON(w, http.StatusCreated, models.UploadResumeResponse{
		Details: details,
		Summary: summary,
	})
}
