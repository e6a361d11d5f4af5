// Package state persists per-user interview session state in Redis as a
// versioned JSON blob.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prepforge/interview-engine/internal/models"
)

// RedisStore implements the interview service's session state store
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	// TTL bounds how long an idle session survives. Zero disables expiry.
	TTL time.Duration
}

// NewRedisStore connects to Redis and verifies connectivity.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

func sessionKey(userID string) string {
	return fmt.Sprintf("interview:session:%s", userID)
}

// Load returns the stored session state for the user. A missing key or a
// blob with an unknown version yields a fresh default state, so schema bumps
// restart sessions instead of misreading them.
func (s *RedisStore) Load(ctx context.Context, userID string) (*models.SessionState, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.NewSessionState(), nil
		}
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}

	var st models.SessionState
	if err := json.Unmarshal(data, &st); err != nil {
		slog.Warn("corrupt session state, starting fresh", "user_id", userID, "error", err)
		return models.NewSessionState(), nil
	}

	if st.Version != models.SessionStateVersion {
		slog.Info("session state version mismatch, starting fresh",
			"user_id", userID, "stored", st.Version, "current", models.SessionStateVersion)
		return models.NewSessionState(), nil
	}

	if st.ConceptsCovered == nil {
		st.ConceptsCovered = map[string][]string{}
	}
	if st.ExploredTopics == nil {
		st.ExploredTopics = []string{}
	}

	return &st, nil
}

// Save stores the session state, refreshing the idle TTL.
func (s *RedisStore) Save(ctx context.Context, userID string, st *models.SessionState) error {
	st.Version = models.SessionStateVersion

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}

	return nil
}

// Ping checks Redis connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
