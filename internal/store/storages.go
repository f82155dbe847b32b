package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/babynumtime/babynumtime/internal/config"
	"github.com/babynumtime/babynumtime/internal/logger"
)

// Storages groups the backend repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	Records RecordRepository
}

// NewStorages initialises the backend storage layer. A postgres:// DSN opens
// a PostgreSQL connection via pgx; anything else is treated as a sqlite file
// path. Pending schema migrations run before any repository is handed out.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Records: NewRecordRepository(db, logger),
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
