package service

import (
	"context"
	"fmt"
	"time"

	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
	"github.com/babynumtime/babynumtime/models"
)

type portabilityService struct {
	localStore store.LocalRecordStore
	logger     *logger.Logger
}

func NewPortabilityService(localStore store.LocalRecordStore, log *logger.Logger) PortabilityService {
	return &portabilityService{
		localStore: localStore,
		logger:     log,
	}
}

func (s *portabilityService) Export(ctx context.Context) (models.ExportDocument, error) {
	cfg, err := s.localStore.GetConfig(ctx)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("read config for export: %w", err)
	}
	if cfg == nil {
		return models.ExportDocument{}, ErrNoActiveBaby
	}

	snapshot, err := s.localStore.Snapshot(ctx)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("read collections for export: %w", err)
	}

	return models.ExportDocument{
		Version:    models.ExportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Config:     cfg,
		Data:       snapshot,
	}, nil
}

func (s *portabilityService) Import(ctx context.Context, doc models.ExportDocument) error {
	// all validation happens before any storage mutation
	if doc.Version != models.ExportVersion {
		return fmt.Errorf("%w: %d", ErrUnknownExportVersion, doc.Version)
	}
	if doc.Config == nil {
		return ErrExportMissingConfig
	}

	// imported configs are always offline: a cloud baby ID must never cross
	// devices through a file, or two families could silently share a backend
	// record set
	cfg := *doc.Config
	cfg.StorageMode = models.StorageOffline
	cfg.BabyID = ""

	if err := s.localStore.ReplaceAll(ctx, doc.Data); err != nil {
		return fmt.Errorf("overwrite local collections: %w", err)
	}
	if err := s.localStore.SetConfig(ctx, cfg); err != nil {
		return fmt.Errorf("store imported config: %w", err)
	}
	if err := s.localStore.ClearPendingSync(ctx); err != nil {
		return fmt.Errorf("clear pending flag: %w", err)
	}
	if err := s.localStore.ClearLastSync(ctx); err != nil {
		return fmt.Errorf("clear last sync: %w", err)
	}

	s.logger.Info().Int("records", doc.Data.Count()).Msg("import finished, storage mode forced offline")
	return nil
}
