package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/migrations"
	"github.com/babynumtime/babynumtime/models"
)

// Stable storage keys. Renaming any of these orphans previously written data,
// so they are frozen.
const (
	collectionFeedings        = "babyCareFeedings"
	collectionDiapers         = "babyCareDiapers"
	collectionCryAnalyses     = "babyCareCryAnalyses"
	collectionPumpingSessions = "motherPumpingSessions"

	settingConfig      = "babynumtime-config"
	settingLastSync    = "babynumtime-last-sync"
	settingPendingSync = "babynumtime-pending-sync"
)

type localRecordStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLocalRecordStore opens (creating if needed) the agent's sqlite database
// at the given path and applies pending schema migrations.
func NewLocalRecordStore(dsn string, log *logger.Logger) (LocalRecordStore, error) {
	if dir := filepath.Dir(dsn); dir != "." && dsn != ":memory:" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create local record store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open local record store: %w", err)
	}
	// a second pooled connection to an in-memory DSN would see its own empty
	// database, and the store is single-user anyway
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping local record store: %w", err)
	}
	if err = migrations.MigrateClient(db); err != nil {
		return nil, fmt.Errorf("migrate local record store: %w", err)
	}

	return &localRecordStore{db: db, logger: log}, nil
}

func (s *localRecordStore) GetFeedings(ctx context.Context) ([]models.Feeding, error) {
	return loadCollection[models.Feeding](ctx, s, collectionFeedings)
}

func (s *localRecordStore) SaveFeedings(ctx context.Context, feedings []models.Feeding) error {
	return saveCollection(ctx, s, collectionFeedings, feedings)
}

func (s *localRecordStore) GetDiapers(ctx context.Context) ([]models.DiaperChange, error) {
	return loadCollection[models.DiaperChange](ctx, s, collectionDiapers)
}

func (s *localRecordStore) SaveDiapers(ctx context.Context, diapers []models.DiaperChange) error {
	return saveCollection(ctx, s, collectionDiapers, diapers)
}

func (s *localRecordStore) GetCryAnalyses(ctx context.Context) ([]models.CryAnalysis, error) {
	return loadCollection[models.CryAnalysis](ctx, s, collectionCryAnalyses)
}

func (s *localRecordStore) SaveCryAnalyses(ctx context.Context, analyses []models.CryAnalysis) error {
	return saveCollection(ctx, s, collectionCryAnalyses, analyses)
}

func (s *localRecordStore) GetPumpingSessions(ctx context.Context) ([]models.PumpingSession, error) {
	return loadCollection[models.PumpingSession](ctx, s, collectionPumpingSessions)
}

func (s *localRecordStore) SavePumpingSessions(ctx context.Context, sessions []models.PumpingSession) error {
	return saveCollection(ctx, s, collectionPumpingSessions, sessions)
}

func (s *localRecordStore) Snapshot(ctx context.Context) (models.DataSnapshot, error) {
	var (
		snapshot models.DataSnapshot
		err      error
	)
	if snapshot.Feedings, err = s.GetFeedings(ctx); err != nil {
		return models.DataSnapshot{}, err
	}
	if snapshot.Diapers, err = s.GetDiapers(ctx); err != nil {
		return models.DataSnapshot{}, err
	}
	if snapshot.CryAnalyses, err = s.GetCryAnalyses(ctx); err != nil {
		return models.DataSnapshot{}, err
	}
	if snapshot.PumpingSessions, err = s.GetPumpingSessions(ctx); err != nil {
		return models.DataSnapshot{}, err
	}

	return snapshot, nil
}

func (s *localRecordStore) ReplaceAll(ctx context.Context, snapshot models.DataSnapshot) error {
	snapshot.Normalize()

	if err := s.SaveFeedings(ctx, snapshot.Feedings); err != nil {
		return err
	}
	if err := s.SaveDiapers(ctx, snapshot.Diapers); err != nil {
		return err
	}
	if err := s.SaveCryAnalyses(ctx, snapshot.CryAnalyses); err != nil {
		return err
	}

	return s.SavePumpingSessions(ctx, snapshot.PumpingSessions)
}

func (s *localRecordStore) ClearCollections(ctx context.Context) error {
	return s.ReplaceAll(ctx, models.DataSnapshot{})
}

func (s *localRecordStore) GetConfig(ctx context.Context) (*models.BabyInfo, error) {
	raw, found, err := s.getSetting(ctx, settingConfig)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var info models.BabyInfo
	if err = json.Unmarshal([]byte(raw), &info); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt baby config payload, treating as unset")
		return nil, nil
	}

	return &info, nil
}

func (s *localRecordStore) SetConfig(ctx context.Context, info models.BabyInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal baby config: %w", err)
	}

	return s.setSetting(ctx, settingConfig, string(raw))
}

func (s *localRecordStore) ClearConfig(ctx context.Context) error {
	return s.deleteSetting(ctx, settingConfig)
}

func (s *localRecordStore) GetLastSync(ctx context.Context) (*time.Time, error) {
	raw, found, err := s.getSetting(ctx, settingLastSync)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("corrupt last-sync timestamp, treating as never synced")
		return nil, nil
	}

	return &t, nil
}

func (s *localRecordStore) SetLastSync(ctx context.Context, t time.Time) error {
	return s.setSetting(ctx, settingLastSync, t.Format(time.RFC3339Nano))
}

func (s *localRecordStore) ClearLastSync(ctx context.Context) error {
	return s.deleteSetting(ctx, settingLastSync)
}

func (s *localRecordStore) HasPendingSync(ctx context.Context) (bool, error) {
	raw, found, err := s.getSetting(ctx, settingPendingSync)
	if err != nil {
		return false, err
	}

	return found && raw == "true", nil
}

func (s *localRecordStore) MarkPendingSync(ctx context.Context) error {
	return s.setSetting(ctx, settingPendingSync, "true")
}

func (s *localRecordStore) ClearPendingSync(ctx context.Context) error {
	return s.deleteSetting(ctx, settingPendingSync)
}

func (s *localRecordStore) Close() error {
	return s.db.Close()
}

func loadCollection[T any](ctx context.Context, s *localRecordStore, name string) ([]T, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = ?`, name,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", name, err)
	}

	var items []T
	if err = json.Unmarshal([]byte(payload), &items); err != nil {
		s.logger.Warn().Err(err).Str("collection", name).
			Msg("corrupt collection payload, loading as empty")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func saveCollection[T any](ctx context.Context, s *localRecordStore, name string, items []T) error {
	if items == nil {
		items = []T{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", name, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (name, payload) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		name, string(payload),
	)
	if err != nil {
		return fmt.Errorf("save collection %s: %w", name, err)
	}

	return nil
}

func (s *localRecordStore) getSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}

	return value, true, nil
}

func (s *localRecordStore) setSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}

	return nil
}

func (s *localRecordStore) deleteSetting(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}

	return nil
}
