package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rapideat_backend/internal/feature/auth/domain/entity"
	"rapideat_backend/internal/feature/auth/usecase"
)

// sessionPostgres is a Postgres implementation of the SessionRepository interface.
// Session rows are immutable: the lifecycle is insert-then-delete only.
type sessionPostgres struct {
	db    *gorm.DB
	table string
}

// Compile-time check to ensure sessionPostgres implements SessionRepository.
var _ usecase.SessionRepository = (*sessionPostgres)(nil)

// NewSessionPostgres creates a new instance of sessionPostgres backed by the
// given table. An empty table name falls back to "sessions".
func NewSessionPostgres(db *gorm.DB, table string) *sessionPostgres {
	if table == "" {
		table = SessionModel{}.TableName()
	}
	return &sessionPostgres{db: db, table: table}
}

// Insert persists a new session to the database.
func (r *sessionPostgres) Insert(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	if err := r.db.WithContext(ctx).Table(r.table).Create(model).Error; err != nil {
		return err
	}
	session.ID = model.ID
	return nil
}

// FindByLookupHash retrieves a session by the keyed hash of its token.
func (r *sessionPostgres) FindByLookupHash(ctx context.Context, hash string) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).Table(r.table).
		Where("token_hash = ?", hash).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// DeleteByLookupHash removes a session by the keyed hash of its token.
// Deleting an absent session is a no-op, so concurrent lazy cleanup of the
// same record cannot fail.
func (r *sessionPostgres) DeleteByLookupHash(ctx context.Context, hash string) error {
	return r.db.WithContext(ctx).Table(r.table).
		Where("token_hash = ?", hash).
		Delete(&SessionModel{}).Error
}
