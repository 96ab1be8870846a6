package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rapideat_backend/internal/feature/auth/domain/entity"
	"rapideat_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError makes unique violations surface as gorm.ErrDuplicatedKey,
// the same way the Postgres driver reports them in production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewUserPostgres(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserPostgres(db, "")

	assert.NotNil(t, repo, "repository is nil")
	assert.Equal(t, "users", repo.table, "default table name not applied")
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db, "")

		user := &entity.User{
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "hashed_password",
			Role:         entity.RoleUser,
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db, "")

		first := &entity.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash", Role: entity.RoleUser}
		require.NoError(t, repo.Create(context.Background(), first))

		second := &entity.User{Name: "Impostor", Email: "alice@example.com", PasswordHash: "hash2", Role: entity.RoleUser}
		err := repo.Create(context.Background(), second)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)

		// At most one row per email ever exists.
		var count int64
		require.NoError(t, db.Model(&entity.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db, "")

		seeded := &entity.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash", Role: entity.RoleUser}
		require.NoError(t, repo.Create(context.Background(), seeded))

		found, err := repo.FindByEmail(context.Background(), "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, seeded.ID, found.ID)
		assert.Equal(t, "Alice", found.Name)
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db, "")

		seeded := &entity.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash", Role: entity.RoleUser}
		require.NoError(t, repo.Create(context.Background(), seeded))

		found, err := repo.FindByEmail(context.Background(), "ALICE@Example.COM")

		require.NoError(t, err)
		assert.Equal(t, seeded.ID, found.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db, "")

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db, "")

		seeded := &entity.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash", Role: entity.RoleUser}
		require.NoError(t, repo.Create(context.Background(), seeded))

		found, err := repo.FindByID(context.Background(), seeded.ID)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", found.Email)
	})

	t.Run("missing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db, "")

		_, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
