// Package db manages the process-wide database connection.
package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "rapideat_backend/internal/feature/auth/adapters"
	authentity "rapideat_backend/internal/feature/auth/domain/entity"
	restentity "rapideat_backend/internal/feature/restaurants/domain/entity"
)

// retryInterval is the pause between connection attempts.
const retryInterval = 3 * time.Second

// Opener opens a gorm DB for a DSN. Injected so retry behavior is testable
// without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// OpenDB connects to Postgres with the given DSN, retrying for up to a minute,
// and runs migrations when RUN_MIGRATIONS=true. It exits the process on
// unrecoverable failure, matching the startup-or-die model of the server.
// usersTable and sessionsTable are the configured table names; the adapters
// read and write the same names, so migrations must build exactly these.
func OpenDB(dsn, usersTable, sessionsTable string) *gorm.DB {
	db, err := ConnectWithRetry(dsn, 60*time.Second, openPostgres)
	if err != nil {
		log.Fatalf("DB connect failed after 60s: %v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(db, usersTable, sessionsTable); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate builds the schema. The auth tables are migrated under their
// configured names rather than the entities' defaults.
func Migrate(db *gorm.DB, usersTable, sessionsTable string) error {
	if usersTable == "" {
		usersTable = "users"
	}
	if sessionsTable == "" {
		sessionsTable = "sessions"
	}

	if err := db.Table(usersTable).AutoMigrate(&authentity.User{}); err != nil {
		return err
	}
	if err := db.Table(sessionsTable).AutoMigrate(&authadapters.SessionModel{}); err != nil {
		return err
	}
	return db.AutoMigrate(&restentity.Restaurant{})
}

// ConnectWithRetry keeps calling opener until it succeeds or the timeout
// elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect timed out: %w", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

func openPostgres(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN is not configured")
	}
	// TranslateError maps driver unique violations onto gorm.ErrDuplicatedKey.
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}
