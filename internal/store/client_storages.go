package store

import (
	"fmt"

	"github.com/babynumtime/babynumtime/internal/config"
	"github.com/babynumtime/babynumtime/internal/logger"
)

// ClientStorages groups the agent-side storage into a single value that can
// be passed around the service layer. Currently it holds only
// [LocalRecordStore]; additional stores can be added here as the feature set
// grows.
type ClientStorages struct {
	// RecordStore is the sqlite-backed store for records and settings kept
	// locally on the device.
	RecordStore LocalRecordStore
}

// NewClientStorages initialises the agent storage layer: it opens (creating
// if needed) the sqlite database at cfg.DB.DSN, runs pending schema
// migrations, and wires a fresh [LocalRecordStore].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	recordStore, err := NewLocalRecordStore(cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("local record store error: %w", err)
	}

	return &ClientStorages{
		RecordStore: recordStore,
	}, nil
}
