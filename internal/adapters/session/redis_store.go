package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "session:"

// RedisStore keeps identity bindings in Redis. The key TTL matches the
// session's absolute expiry, so bindings disappear on their own; logout
// deletes the key immediately.
type RedisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

type RedisStoreParams struct {
	RedisClient *redis.Client
	Logger      zerolog.Logger
}

// NewRedisStore creates a new Redis-backed session store
func NewRedisStore(params RedisStoreParams) *RedisStore {
	return &RedisStore{
		client: params.RedisClient,
		logger: params.Logger.With().Str("component", "session_store").Logger(),
	}
}

// Save persists a session until its absolute expiry
func (s *RedisStore) Save(ctx context.Context, session *shared.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return shared.ErrSessionExpired
	}

	if err := s.client.Set(ctx, keyPrefix+session.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID
func (s *RedisStore) Get(ctx context.Context, id string) (*shared.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, shared.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session shared.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Delete invalidates a session immediately
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Debug().Str("session_id", id).Msg("Session invalidated")
	return nil
}
