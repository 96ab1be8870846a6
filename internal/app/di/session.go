// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "rapideat_backend/internal/feature/auth/adapters"
	"rapideat_backend/internal/feature/auth/usecase"
	"rapideat_backend/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation whose keys
// expire on their own. Otherwise, it falls back to Postgres with lazy cleanup.
// With neither store configured, sessions are unavailable and auth surfaces
// store errors while the rest of the app keeps serving.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB, table string) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	if db == nil {
		return authadapters.NewSessionUnavailable()
	}
	return authadapters.NewSessionPostgres(db, table)
}
