package entity

import "time"

// Session represents an active login grant.
// It is keyed by the lookup hash of its token; the raw token handed to the
// client is never stored. Sessions are immutable once created: every lifecycle
// transition is insert-then-delete, never an in-place update.
type Session struct {
	ID        uint      // Surrogate key
	UserID    uint      // Owning user (weak reference)
	TokenHash string    // Keyed one-way hash of the raw session token
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
