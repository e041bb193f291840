// Package migrate applies the embedded goose migrations at startup.
package migrate

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/mirirosen/chilik-rosenberg/migrations"
)

// Up applies all pending migrations.
func Up(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrate: set dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migrate: up: %w", err)
	}

	return nil
}
