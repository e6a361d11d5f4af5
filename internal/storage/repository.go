package storage

import (
	"context"
	"time"

	"github.com/prepforge/interview-engine/internal/models"
)

// Repository defines the interface for account, resume and transcript
// persistence
type Repository interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Resumes
	CreateResume(ctx context.Context, r *models.Resume) error
	LatestResume(ctx context.Context, userID string) (*models.Resume, error)

	// Interview type preference
	InterviewType(ctx context.Context, userID string) (models.InterviewType, error)
	SetInterviewType(ctx context.Context, userID string, t models.InterviewType) error

	// Transcripts
	LoadTranscript(ctx context.Context, userID string) (models.Transcript, error)
	SaveTranscript(ctx context.Context, userID string, t models.Transcript) error
	ClearTranscript(ctx context.Context, userID string) error

	// Cleanup
	PurgeStaleTranscripts(ctx context.Context, olderThan time.Duration) (int64, error)

	// Health
	Ping(ctx context.Context) error
	Close() error
}

// Transcripts adapts a Repository to the interview service's transcript
// store.
type Transcripts struct {
	repo Repository
}

// NewTranscripts wraps a repository as a transcript store.
func NewTranscripts(repo Repository) *Transcripts {
	return &Transcripts{repo: repo}
}

func (t *Transcripts) Load(ctx context.Context, userID string) (models.Transcript, error) {
	return t.repo.LoadTranscript(ctx, userID)
}

func (t *Transcripts) Save(ctx context.Context, userID string, tr models.Transcript) error {
	return t.repo.SaveTranscript(ctx, userID, tr)
}

func (t *Transcripts) Clear(ctx context.Context, userID string) error {
	return t.repo.ClearTranscript(ctx, userID)
}
