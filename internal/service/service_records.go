package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
	"github.com/babynumtime/babynumtime/internal/utils"
	"github.com/babynumtime/babynumtime/internal/validators"
	"github.com/babynumtime/babynumtime/models"
)

// maxBabyIDAttempts bounds ID regeneration on insert collisions. With a
// 32^6 keyspace several collisions in a row mean something is wrong with the
// generator or the table, not bad luck.
const maxBabyIDAttempts = 5

type recordsService struct {
	repository store.RecordRepository
	ids        *utils.BabyIDGenerator
	validator  validators.Validator
	logger     *logger.Logger
}

func NewRecordsService(repository store.RecordRepository, log *logger.Logger) RecordsService {
	return &recordsService{
		repository: repository,
		ids:        utils.NewBabyIDGenerator(),
		validator:  validators.NewRecordValidator(),
		logger:     log,
	}
}

func (s *recordsService) CreateBaby(ctx context.Context, birthDate, babyName string) (models.BabyProfile, error) {
	log := logger.FromContext(ctx)

	baby := models.BabyProfile{BirthDate: birthDate, BabyName: babyName}
	if err := s.validator.Validate(ctx, baby); err != nil {
		return models.BabyProfile{}, err
	}

	for attempt := 1; attempt <= maxBabyIDAttempts; attempt++ {
		id, err := s.ids.Generate()
		if err != nil {
			return models.BabyProfile{}, fmt.Errorf("generate baby ID: %w", err)
		}

		baby.BabyID = id
		err = s.repository.CreateBaby(ctx, baby)
		if err == nil {
			return baby, nil
		}
		if !errors.Is(err, store.ErrBabyIDTaken) {
			return models.BabyProfile{}, err
		}

		log.Warn().Str("babyId", id).Int("attempt", attempt).Msg("baby ID collision, regenerating")
	}

	return models.BabyProfile{}, ErrBabyIDExhausted
}

func (s *recordsService) GetBaby(ctx context.Context, babyID string) (models.BabyProfile, error) {
	return s.repository.GetBaby(ctx, babyID)
}

func (s *recordsService) GetData(ctx context.Context, babyID string) (models.DataSnapshot, error) {
	if _, err := s.repository.GetBaby(ctx, babyID); err != nil {
		return models.DataSnapshot{}, err
	}

	return s.repository.GetData(ctx, babyID)
}

func (s *recordsService) SyncData(ctx context.Context, babyID string, data models.DataSnapshot) error {
	if _, err := s.repository.GetBaby(ctx, babyID); err != nil {
		return err
	}

	return s.repository.ReplaceData(ctx, babyID, data)
}

func (s *recordsService) DeleteAllData(ctx context.Context, babyID string) error {
	if _, err := s.repository.GetBaby(ctx, babyID); err != nil {
		return err
	}

	return s.repository.DeleteAll(ctx, babyID)
}
