package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/prepforge/interview-engine/internal/interview"
	"github.com/prepforge/interview-engine/internal/models"
	"github.com/prepforge/interview-engine/internal/report"
)

// chatErrorResponse keeps the interviewer in character when a turn fails.
const chatErrorResponse = "I apologize, but I'm having trouble processing your response right now. Could you please repeat that?"

func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req models.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.UserID) == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "user_id is required")
		return
	}

	greeting, err := s.interviews.Start(r.Context(), req.UserID, models.InterviewType(req.InterviewType))
	if err != nil {
		if errors.Is(err, interview.ErrNoResume) {
			respondError(w, http.StatusNotFound, "no_resume", "no resume found, upload a resume before starting an interview")
			return
		}
		slog.Error("failed to start interview", "error", err, "user_id", req.UserID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to start interview")
		return
	}

	respondJSON(w, http.StatusOK, models.StartInterviewResponse{
		Message:  "interview started",
		Question: greeting,
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if strings.TrimSpace(req.UserID) == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "user_id is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "message is required")
		return
	}

	response, ended, err := s.interviews.Chat(r.Context(), req.UserID, req.Message)
	if err != nil {
		// Turn failures stay in character so the conversation can continue.
		slog.Error("chat turn failed", "error", err, "user_id", req.UserID)
		respondJSON(w, http.StatusOK, models.ChatResponse{Response: chatErrorResponse})
		return
	}

	respondJSON(w, http.StatusOK, models.ChatResponse{
		Response:     response,
		EndInterview: ended,
	})
}

func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "user id is required")
		return
	}

	transcript, err := s.interviews.Transcript(r.Context(), userID)
	if err != nil {
		slog.Error("failed to load transcript", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load transcript")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"transcript": transcript,
		"exchanges":  len(transcript),
	})
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "user id is required")
		return
	}

	transcript, err := s.interviews.Transcript(r.Context(), userID)
	if err != nil {
		slog.Error("failed to load transcript for report", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to generate report")
		return
	}

	var jobDescription, skills string
	if res, err := s.repo.LatestResume(r.Context(), userID); err != nil {
		slog.Error("failed to load resume for report", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to generate report")
		return
	} else if res != nil {
		jobDescription = res.JobDescription
		skills = res.Skills
	}

	result := report.Generate(transcript, jobDescription, skills)
	respondJSON(w, http.StatusOK, result)
}
