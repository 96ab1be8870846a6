package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"rapideat_backend/internal/feature/auth/domain/entity"
)

// DefaultSessionTTL is the session lifetime used when none is configured.
const DefaultSessionTTL = 7 * 24 * time.Hour

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists when the email is already taken; the
	// storage layer enforces this with a uniqueness constraint, so concurrent
	// registrations race on the constraint rather than on an application check.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address,
	// compared case-insensitively. Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user with the given ID.
	// Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenCodec generates raw session tokens and derives their storage keys.
type TokenCodec interface {
	// GenerateToken returns a new high-entropy raw token for the client.
	GenerateToken() (string, error)
	// DeriveLookupHash returns the deterministic keyed hash under which the
	// token's session is stored.
	DeriveLookupHash(rawToken string) string
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash returns the one-way digest of a plaintext password.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the digest.
	// Malformed digests verify as false, never as an error.
	Verify(plaintext, digest string) bool
}

// AuthUsecase orchestrates registration, login, and the session lifecycle.
// Tokens are explicit parameters and return values; the transport layer owns
// extracting them from and applying them to its own request representation.
type AuthUsecase struct {
	users    UserRepository
	sessions SessionRepository
	hasher   PasswordHasher
	tokens   TokenCodec
	ttl      time.Duration
}

// NewAuthUsecase creates a new AuthUsecase. A non-positive ttl falls back to
// DefaultSessionTTL.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, hasher PasswordHasher, tokens TokenCodec, ttl time.Duration) *AuthUsecase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthUsecase{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		ttl:      ttl,
	}
}

// Register validates the input, creates the user with the default role, and
// issues a session for the new account. The returned raw token is handed to
// the caller exactly once, for transport in the session cookie.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password, confirmPassword string) (string, error) {
	if verr := validateRegister(name, email, password, confirmPassword); verr != nil {
		return "", verr
	}

	email = normalizeEmail(email)

	// Pre-check for a friendlier error; the unique index remains the arbiter
	// under concurrent registration.
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return "", u.storeFailure("register: email lookup failed", err)
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return "", u.storeFailure("register: password hashing failed", err)
	}

	user := &entity.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hashed,
		Role:         entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return "", ErrEmailAlreadyExists
		}
		return "", u.storeFailure("register: user insert failed", err)
	}

	return u.issueSession(ctx, user.ID)
}

// Login authenticates a user and issues a session on success.
// "Email not found" and "incorrect password" remain distinguishable results,
// matching the product's UX; see DESIGN.md for the hardening note.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if verr := validateLogin(email, password); verr != nil {
		return "", verr
	}

	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", &InvalidCredentialsError{Field: "email"}
		}
		return "", u.storeFailure("login: email lookup failed", err)
	}

	if !u.hasher.Verify(password, user.PasswordHash) {
		return "", &InvalidCredentialsError{Field: "password"}
	}

	return u.issueSession(ctx, user.ID)
}

// issueSession is the single path by which sessions come into existence, so
// register and login share one TTL and one token strength.
func (u *AuthUsecase) issueSession(ctx context.Context, userID uint) (string, error) {
	rawToken, err := u.tokens.GenerateToken()
	if err != nil {
		return "", u.storeFailure("session issuance: token generation failed", err)
	}

	now := time.Now()
	session := &entity.Session{
		UserID:    userID,
		TokenHash: u.tokens.DeriveLookupHash(rawToken),
		CreatedAt: now,
		ExpiresAt: now.Add(u.ttl),
	}
	if err := u.sessions.Insert(ctx, session); err != nil {
		return "", u.storeFailure("session issuance: insert failed", err)
	}

	return rawToken, nil
}

// ResolveCurrentUser returns the sanitized view of the user owning the given
// raw token, or nil when the request is unauthenticated. An absent token is
// not an error. Expired and orphaned sessions are deleted lazily on first
// access; there is no background sweep. Internal failures resolve to nil —
// fail-safe, never fail-open.
func (u *AuthUsecase) ResolveCurrentUser(ctx context.Context, rawToken string) (*entity.SafeUser, error) {
	if rawToken == "" {
		return nil, nil
	}

	hash := u.tokens.DeriveLookupHash(rawToken)

	session, err := u.sessions.FindByLookupHash(ctx, hash)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			slog.Error("resolve: session lookup failed", "error", err)
		}
		return nil, nil
	}

	if session.IsExpired(time.Now()) {
		u.dropSession(ctx, hash, "expired")
		return nil, nil
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Orphan session: the owning user is gone.
			u.dropSession(ctx, hash, "orphaned")
		} else {
			slog.Error("resolve: user lookup failed", "error", err)
		}
		return nil, nil
	}

	return user.ToSafeUser(), nil
}

// DestroySession deletes the session for the given raw token. It is a no-op
// when no token is provided and idempotent when the session is already gone.
func (u *AuthUsecase) DestroySession(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	if err := u.sessions.DeleteByLookupHash(ctx, u.tokens.DeriveLookupHash(rawToken)); err != nil {
		return u.storeFailure("logout: session delete failed", err)
	}
	return nil
}

// dropSession removes a stale session record, best effort. Deletion is
// idempotent, so concurrent cleanup of the same record is harmless.
func (u *AuthUsecase) dropSession(ctx context.Context, hash, reason string) {
	if err := u.sessions.DeleteByLookupHash(ctx, hash); err != nil {
		slog.Warn("failed to delete stale session", "reason", reason, "error", err)
	}
}

// storeFailure logs the underlying cause and returns the generic
// ErrStoreUnavailable so internal details never reach the transport layer.
func (u *AuthUsecase) storeFailure(msg string, err error) error {
	slog.Error(msg, "error", err)
	return ErrStoreUnavailable
}
