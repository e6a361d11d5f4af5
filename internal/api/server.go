package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/prepforge/interview-engine/internal/config"
	"github.com/prepforge/interview-engine/internal/interview"
	"github.com/prepforge/interview-engine/internal/resume"
	"github.com/prepforge/interview-engine/internal/storage"
)

// Server represents the HTTP API server
type Server struct {
	config     config.ServerConfig
	router     *chi.Mux
	interviews *interview.Service
	repo       storage.Repository
	summarizer *resume.Summarizer
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	interviews *interview.Service,
	repo storage.Repository,
	summarizer *resume.Summarizer,
) *Server {
	s := &Server{
		config:     cfg,
		interviews: interviews,
		repo:       repo,
		summarizer: summarizer,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (outside versioned API - public)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Accounts
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// Resumes
		r.Post("/resumes", s.handleUploadResume)

		// Interviews
		r.Route("/interviews", func(r chi.Router) {
			r.Post("/start", s.handleStartInterview)
			r.Post("/chat", s.handleChat)
			r.Get("/{userID}/transcript", s.handleGetTranscript)
			r.Get("/{userID}/report", s.handleGenerateReport)
		})
	})

	// WebSocket chat channel
	r.Get("/ws/interviews/{userID}", s.handleChatWS)

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
