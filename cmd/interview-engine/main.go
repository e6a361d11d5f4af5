package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prepforge/interview-engine/internal/ai"
	"github.com/prepforge/interview-engine/internal/api"
	"github.com/prepforge/interview-engine/internal/cleanup"
	"github.com/prepforge/interview-engine/internal/config"
	"github.com/prepforge/interview-engine/internal/interview"
	"github.com/prepforge/interview-engine/internal/questionbank"
	"github.com/prepforge/interview-engine/internal/resume"
	"github.com/prepforge/interview-engine/internal/retrieval"
	"github.com/prepforge/interview-engine/internal/state"
	"github.com/prepforge/interview-engine/internal/storage"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.Info("starting interview-engine",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Create context for initialization
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	// Run database migrations
	slog.Info("running database migrations", "dir", cfg.Database.MigrationsDir)
	if err := storage.MigrateFromDSN(initCtx, cfg.Database.DSN, cfg.Database.MigrationsDir); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize database repository
	repo, err := storage.NewPostgresRepository(initCtx, storage.PostgresConfig{
		DSN: cfg.Database.DSN,
	})
	if err != nil {
		slog.Error("failed to create database repository", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected successfully")

	// Initialize session state store
	sessions, err := state.NewRedisStore(initCtx, state.RedisConfig{
		Address:  cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.SessionTTL,
	})
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.Info("redis connected successfully")

	// Load question packs on top of the built-in bank
	bank := questionbank.NewBank()
	if cfg.QuestionBank.Dir != "" {
		if err := bank.LoadFromDir(cfg.QuestionBank.Dir); err != nil {
			slog.Warn("failed to load question packs", "dir", cfg.QuestionBank.Dir, "error", err)
		}
	}

	// Question retrieval is optional; without it the engine runs on the
	// static bank alone.
	var retriever interview.Retriever
	if cfg.Retrieval.URL != "" {
		retriever = retrieval.NewClient(cfg.Retrieval.URL, retrieval.WithTimeout(cfg.Retrieval.Timeout))
		slog.Info("question retrieval enabled", "url", cfg.Retrieval.URL)
	} else {
		slog.Info("question retrieval disabled, using static question bank")
	}

	// Profile summarization is optional as well.
	var completer ai.Completer
	if cfg.AI.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiCompleter(initCtx, cfg.AI.GeminiAPIKey, cfg.AI.Model)
		if err != nil {
			slog.Error("failed to create gemini completer", "error", err)
			os.Exit(1)
		}
		completer = gemini
		slog.Info("profile summarization enabled", "model", gemini.Model())
	} else {
		slog.Info("profile summarization disabled, using template summaries")
	}
	summarizer := resume.NewSummarizer(completer)

	// Wire the interview engine
	rng := interview.NewRand(time.Now().UnixNano())
	provider := interview.NewQuestionProvider(retriever, bank, rng)
	engine := interview.NewEngine(provider, rng)
	service := interview.NewService(sessions, storage.NewTranscripts(repo), repo, engine, rng)

	// Initialize cleanup worker
	cleaner := cleanup.NewCleaner(repo, cfg.Cleanup.Interval, cfg.Cleanup.Retention)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start cleanup worker
	cleaner.Start(ctx)

	// Setup HTTP server
	server := api.NewServer(cfg.Server, service, repo, summarizer)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if err := sessions.Close(); err != nil {
		slog.Error("redis close error", "error", err)
	}
	if err := repo.Close(); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("interview-engine stopped")
}
