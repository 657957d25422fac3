package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	authentity "mf_backend/internal/feature/auth/domain/entity"
	savedfundadapters "mf_backend/internal/feature/savedfunds/adapters"
)

//go:embed migrations/*.sql
var migrations embed.FS

// gooseUp is a seam for tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Migrate brings the schema up to date. PostgreSQL runs the embedded goose
// migrations, which also declare the foreign key from saved_funds to users.
// SQLite (local runs and tests) uses AutoMigrate on the GORM models.
func Migrate(db *gorm.DB, driver string) error {
	switch driver {
	case DriverPostgres:
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("db handle: %w", err)
		}
		goose.SetBaseFS(migrations)
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("goose dialect: %w", err)
		}
		if err := gooseUp(context.Background(), sqlDB, "migrations"); err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
	case DriverSQLite:
		if err := AutoMigrate(db); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	slog.Info("migrations applied", "driver", driver)
	return nil
}

// AutoMigrate creates the users and saved_funds tables from the GORM models.
// The models declare no relations, so saved_funds.user_id carries no foreign key here.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&savedfundadapters.SavedFundModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
