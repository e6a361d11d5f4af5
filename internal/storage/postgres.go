package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prepforge/interview-engine/internal/models"
)

// PostgresRepository implements Repository using PostgreSQL
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// PostgresConfig holds PostgreSQL connection configuration
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int32
	MaxIdleConns int32
	MaxLifetime  time.Duration
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(ctx context.Context, cfg PostgresConfig) (*PostgresRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = cfg.MaxOpenConns
	} else {
		poolConfig.MaxConns = 25
	}

	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = cfg.MaxIdleConns
	} else {
		poolConfig.MinConns = 5
	}

	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxLifetime
	} else {
		poolConfig.MaxConnLifetime = 30 * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Ping checks database connectivity
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the database connection pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// CreateUser inserts a new account record
func (r *PostgresRepository) CreateUser(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves a user by username, nil when absent
func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUser(ctx, "username", username)
}

// GetUserByID retrieves a user by ID, nil when absent
func (r *PostgresRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUser(ctx, "id", id)
}

func (r *PostgresRepository) getUser(ctx context.Context, field, value string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE %s = $1
	`, field)

	var u models.User
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// CreateResume inserts a new resume record and fills in its generated ID
func (r *PostgresRepository) CreateResume(ctx context.Context, res *models.Resume) error {
	query := `
		INSERT INTO resumes (user_id, filename, job_description, name, skills, work_experience, projects, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		res.UserID,
		res.Filename,
		nullString(res.JobDescription),
		nullString(res.Name),
		nullString(res.Skills),
		nullString(res.WorkExperience),
		nullString(res.Projects),
		nullString(res.Summary),
		res.CreatedAt,
	).Scan(&res.ID)

	if err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// LatestResume returns the user's most recent resume, nil when none exists
func (r *PostgresRepository) LatestResume(ctx context.Context, userID string) (*models.Resume, error) {
	query := `
		SELECT id, user_id, filename, job_description, name, skills, work_experience, projects, summary, created_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var res models.Resume
	var jobDescription, name, skills, workExperience, projects, summary sql.NullString

	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&res.ID,
		&res.UserID,
		&res.Filename,
		&jobDescription,
		&name,
		&skills,
		&workExperience,
		&projects,
		&summary,
		&res.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest resume: %w", err)
	}

	res.JobDescription = jobDescription.String
	res.Name = name.String
	res.Skills = skills.String
	res.WorkExperience = workExperience.String
	res.Projects = projects.String
	res.Summary = summary.String

	return &res, nil
}

// InterviewType returns the user's stored interview-type preference.
// Technical is the default when no preference was recorded.
func (r *PostgresRepository) InterviewType(ctx context.Context, userID string) (models.InterviewType, error) {
	query := `SELECT interview_type FROM user_preferences WHERE user_id = $1`

	var t string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.InterviewTechnical, nil
		}
		return "", fmt.Errorf("failed to get interview type: %w", err)
	}

	return models.InterviewType(t), nil
}

// SetInterviewType stores the user's interview-type preference
func (r *PostgresRepository) SetInterviewType(ctx context.Context, userID string, t models.InterviewType) error {
	query := `
		INSERT INTO user_preferences (user_id, interview_type, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET interview_type = EXCLUDED.interview_type, updated_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query, userID, string(t))
	if err != nil {
		return fmt.Errorf("failed to set interview type: %w", err)
	}

	return nil
}

// LoadTranscript returns the user's transcript, empty when none is stored
func (r *PostgresRepository) LoadTranscript(ctx context.Context, userID string) (models.Transcript, error) {
	query := `SELECT exchanges FROM transcripts WHERE user_id = $1`

	var exchangesJSON []byte
	err := r.pool.QueryRow(ctx, query, userID).Scan(&exchangesJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Transcript{}, nil
		}
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	var t models.Transcript
	if err := json.Unmarshal(exchangesJSON, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transcript: %w", err)
	}

	return t, nil
}

// SaveTranscript upserts the user's transcript as a JSON document
func (r *PostgresRepository) SaveTranscript(ctx context.Context, userID string, t models.Transcript) error {
	exchangesJSON, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	query := `
		INSERT INTO transcripts (user_id, exchanges, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET exchanges = EXCLUDED.exchanges, updated_at = NOW()
	`

	_, err = r.pool.Exec(ctx, query, userID, exchangesJSON)
	if err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}

	return nil
}

// ClearTranscript removes the user's transcript
func (r *PostgresRepository) ClearTranscript(ctx context.Context, userID string) error {
	query := `DELETE FROM transcripts WHERE user_id = $1`

	_, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear transcript: %w", err)
	}

	return nil
}

// PurgeStaleTranscripts deletes transcripts that have not been touched within
// the retention window and returns the number removed.
func (r *PostgresRepository) PurgeStaleTranscripts(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `DELETE FROM transcripts WHERE updated_at < NOW() - $1::interval`

	result, err := r.pool.Exec(ctx, query, olderThan.String())
	if err != nil {
		return 0, fmt.Errorf("failed to purge stale transcripts: %w", err)
	}

	return result.RowsAffected(), nil
}

// nullString maps empty strings to SQL NULL
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
