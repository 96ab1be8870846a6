package usecase

import (
	"context"

	"rapideat_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
// Sessions are immutable once created, so there is no update operation.
type SessionRepository interface {
	// Insert persists a new session to the storage.
	Insert(ctx context.Context, session *entity.Session) error

	// FindByLookupHash retrieves a session by the keyed hash of its token.
	// Returns ErrSessionNotFound when absent.
	FindByLookupHash(ctx context.Context, hash string) (*entity.Session, error)

	// DeleteByLookupHash removes a session by the keyed hash of its token.
	// Deleting an absent session is a no-op, not an error.
	DeleteByLookupHash(ctx context.Context, hash string) error
}
