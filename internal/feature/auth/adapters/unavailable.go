package adapters

import (
	"context"
	"errors"

	"rapideat_backend/internal/feature/auth/domain/entity"
	"rapideat_backend/internal/feature/auth/usecase"
)

// errNoDatabase is returned by the unavailable repositories. The usecase maps
// it to ErrStoreUnavailable like any other store failure.
var errNoDatabase = errors.New("no database configured")

// userUnavailable serves auth requests when the process runs without a
// database: every operation fails, so registration and login surface a store
// error while the rest of the app keeps serving.
type userUnavailable struct{}

// Compile-time check to ensure userUnavailable implements UserRepository.
var _ usecase.UserRepository = (*userUnavailable)(nil)

// NewUserUnavailable creates a UserRepository for database-less operation.
func NewUserUnavailable() *userUnavailable {
	return &userUnavailable{}
}

func (*userUnavailable) Create(ctx context.Context, user *entity.User) error {
	return errNoDatabase
}

func (*userUnavailable) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errNoDatabase
}

func (*userUnavailable) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return nil, errNoDatabase
}

// sessionUnavailable is the session counterpart of userUnavailable.
type sessionUnavailable struct{}

// Compile-time check to ensure sessionUnavailable implements SessionRepository.
var _ usecase.SessionRepository = (*sessionUnavailable)(nil)

// NewSessionUnavailable creates a SessionRepository for database-less operation.
func NewSessionUnavailable() *sessionUnavailable {
	return &sessionUnavailable{}
}

func (*sessionUnavailable) Insert(ctx context.Context, session *entity.Session) error {
	return errNoDatabase
}

func (*sessionUnavailable) FindByLookupHash(ctx context.Context, hash string) (*entity.Session, error) {
	return nil, errNoDatabase
}

func (*sessionUnavailable) DeleteByLookupHash(ctx context.Context, hash string) error {
	return errNoDatabase
}
