package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/migrations"
)

// DB wraps the backend database connection together with the SQL dialect it
// was opened with, a squirrel builder configured for that dialect's
// placeholder format, and an error classifier (nil for sqlite).
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.MigrateServer(db.DB, db.dialect)
}

// retryable reports whether err is classified as transient by the configured
// error classifier.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.Classify(err) == Retryable
}
