package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// MigrateClient applies the agent's local sqlite schema.
func MigrateClient(db *sql.DB) error {
	return migrate(db, "sqlite3", "client")
}

// MigrateServer applies the backend schema. The dialect is "pgx" or "sqlite3"
// depending on which driver opened the connection.
func MigrateServer(db *sql.DB, dialect string) error {
	return migrate(db, dialect, "server")
}

func migrate(db *sql.DB, dialect string, dir string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
