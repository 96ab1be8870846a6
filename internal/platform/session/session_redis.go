// Package session provides a Redis-backed session repository.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rapideat_backend/internal/feature/auth/domain/entity"
	"rapideat_backend/internal/feature/auth/usecase"
)

// SessionRedis implements usecase.SessionRepository using Redis.
// Sessions are stored under their lookup hash with a native TTL, so Redis
// evicts expired records on its own; the usecase's lazy cleanup remains a
// harmless no-op here.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure SessionRedis implements SessionRepository.
var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	if prefix == "" {
		prefix = "session"
	}
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// sessionKey returns the Redis key for a session's lookup hash.
func (r *SessionRedis) sessionKey(hash string) string {
	return fmt.Sprintf("%s:%s", r.prefix, hash)
}

// Insert persists a new session to Redis with a TTL matching its expiry.
func (r *SessionRedis) Insert(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	return r.client.Set(ctx, r.sessionKey(session.TokenHash), data, ttl).Err()
}

// FindByLookupHash retrieves a session by the keyed hash of its token.
func (r *SessionRedis) FindByLookupHash(ctx context.Context, hash string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(hash)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteByLookupHash removes a session. DEL of an absent key is a no-op, so
// the operation is idempotent.
func (r *SessionRedis) DeleteByLookupHash(ctx context.Context, hash string) error {
	return r.client.Del(ctx, r.sessionKey(hash)).Err()
}
