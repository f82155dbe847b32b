package service

import (
	"context"
	"fmt"
	"time"

	"github.com/babynumtime/babynumtime/internal/adapter"
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
	"github.com/babynumtime/babynumtime/internal/utils"
	"github.com/babynumtime/babynumtime/internal/validators"
	"github.com/babynumtime/babynumtime/models"
)

type profileService struct {
	localStore  store.LocalRecordStore
	gateway     adapter.CloudGateway
	coordinator SyncCoordinator
	validator   validators.Validator
	logger      *logger.Logger
}

func NewProfileService(localStore store.LocalRecordStore, gateway adapter.CloudGateway, coordinator SyncCoordinator, log *logger.Logger) ProfileService {
	return &profileService{
		localStore:  localStore,
		gateway:     gateway,
		coordinator: coordinator,
		validator:   validators.NewRecordValidator(),
		logger:      log,
	}
}

func (s *profileService) CreateBaby(ctx context.Context, birthDate, babyName string) (models.BabyInfo, error) {
	if err := s.validator.Validate(ctx, models.BabyProfile{BirthDate: birthDate}); err != nil {
		return models.BabyInfo{}, err
	}

	baby, err := s.gateway.CreateBaby(ctx, birthDate, babyName)
	if err != nil {
		return models.BabyInfo{}, fmt.Errorf("create baby on backend: %w", err)
	}

	info := models.BabyInfo{
		BabyID:      baby.BabyID,
		BirthDate:   baby.BirthDate,
		BabyName:    baby.BabyName,
		StorageMode: models.StorageCloud,
	}
	if err = s.localStore.SetConfig(ctx, info); err != nil {
		return models.BabyInfo{}, fmt.Errorf("store cloud config: %w", err)
	}

	// seed the backend with whatever was logged before onboarding
	if err = s.coordinator.PushNow(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("initial push after create failed, marked pending")
	}

	return info, nil
}

func (s *profileService) JoinBaby(ctx context.Context, babyID string) (models.BabyInfo, error) {
	if !utils.IsValidBabyID(babyID) {
		return models.BabyInfo{}, fmt.Errorf("%w: malformed baby ID %q", adapter.ErrBabyNotFound, babyID)
	}

	baby, err := s.gateway.GetBaby(ctx, babyID)
	if err != nil {
		return models.BabyInfo{}, err
	}

	info := models.BabyInfo{
		BabyID:      baby.BabyID,
		BirthDate:   baby.BirthDate,
		BabyName:    baby.BabyName,
		StorageMode: models.StorageCloud,
	}
	if err = s.localStore.SetConfig(ctx, info); err != nil {
		return models.BabyInfo{}, fmt.Errorf("store cloud config: %w", err)
	}

	// adopt the backend state wholesale on join
	snapshot, err := s.gateway.GetData(ctx, babyID)
	if err != nil {
		return models.BabyInfo{}, fmt.Errorf("initial pull after join: %w", err)
	}
	if err = s.localStore.ReplaceAll(ctx, snapshot); err != nil {
		return models.BabyInfo{}, fmt.Errorf("overwrite local collections: %w", err)
	}
	if err = s.localStore.SetLastSync(ctx, time.Now()); err != nil {
		return models.BabyInfo{}, fmt.Errorf("record last sync: %w", err)
	}

	return info, nil
}

func (s *profileService) UseOffline(ctx context.Context, birthDate, babyName string) (models.BabyInfo, error) {
	if err := s.validator.Validate(ctx, models.BabyProfile{BirthDate: birthDate}); err != nil {
		return models.BabyInfo{}, err
	}

	info := models.BabyInfo{
		BirthDate:   birthDate,
		BabyName:    babyName,
		StorageMode: models.StorageOffline,
	}
	if err := s.localStore.SetConfig(ctx, info); err != nil {
		return models.BabyInfo{}, fmt.Errorf("store offline config: %w", err)
	}

	return info, nil
}

func (s *profileService) ActiveBaby(ctx context.Context) (*models.BabyInfo, error) {
	return s.localStore.GetConfig(ctx)
}

func (s *profileService) Reset(ctx context.Context, deleteRemote bool) error {
	s.coordinator.Stop()

	cfg, err := s.localStore.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("read config before reset: %w", err)
	}

	if deleteRemote && cfg != nil && cfg.IsCloud() {
		if err = s.gateway.DeleteAllData(ctx, cfg.BabyID); err != nil {
			return fmt.Errorf("delete remote data: %w", err)
		}
	}

	if err = s.localStore.ClearCollections(ctx); err != nil {
		return fmt.Errorf("clear local collections: %w", err)
	}
	if err = s.localStore.ClearConfig(ctx); err != nil {
		return fmt.Errorf("clear config: %w", err)
	}
	if err = s.localStore.ClearPendingSync(ctx); err != nil {
		return fmt.Errorf("clear pending flag: %w", err)
	}
	if err = s.localStore.ClearLastSync(ctx); err != nil {
		return fmt.Errorf("clear last sync: %w", err)
	}

	return nil
}
