package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prepforge/interview-engine/internal/models"
)

// Account handlers

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "username is required")
		return
	}
	if len(creds.Password) < 8 {
		respondError(w, http.StatusBadRequest, "validation_error", "password must be at least 8 characters")
		return
	}

	existing, err := s.repo.GetUserByUsername(r.Context(), creds.Username)
	if err != nil {
		slog.Error("failed to check username", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to register user")
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "username_taken", "username is already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to register user")
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     creds.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(r.Context(), user); err != nil {
		slog.Error("failed to create user", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to register user")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	respondJSON(w, http.StatusCreated, models.AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Success:  true,
		Message:  "registration successful",
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	user, err := s.repo.GetUserByUsername(r.Context(), strings.TrimSpace(creds.Username))
	if err != nil {
		slog.Error("failed to load user", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to log in")
		return
	}

	// A missing user and a wrong password produce the same response.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
		return
	}

	respondJSON(w, http.StatusOK, models.AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Success:  true,
		Message:  "login successful",
	})
}
