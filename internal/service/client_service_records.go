package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
	"github.com/babynumtime/babynumtime/internal/utils"
	"github.com/babynumtime/babynumtime/internal/validators"
	"github.com/babynumtime/babynumtime/models"
)

// recordService implements RecordService over the local store. Every mutation
// is written locally first; in cloud mode a push follows, and a failed push
// only marks the pending flag.
type recordService struct {
	localStore  store.LocalRecordStore
	coordinator SyncCoordinator
	validator   validators.Validator
	ids         *utils.UUIDGenerator
	logger      *logger.Logger
}

func NewRecordService(localStore store.LocalRecordStore, coordinator SyncCoordinator, log *logger.Logger) RecordService {
	return &recordService{
		localStore:  localStore,
		coordinator: coordinator,
		validator:   validators.NewRecordValidator(),
		ids:         utils.NewUUIDGenerator(),
		logger:      log,
	}
}

func (s *recordService) AddFeeding(ctx context.Context, feeding models.Feeding) (models.Feeding, error) {
	s.stamp(&feeding.ID, &feeding.Time)
	if err := s.validator.Validate(ctx, feeding); err != nil {
		return models.Feeding{}, fmt.Errorf("invalid feeding record: %w", err)
	}

	feedings, err := s.localStore.GetFeedings(ctx)
	if err != nil {
		return models.Feeding{}, err
	}
	if err = s.localStore.SaveFeedings(ctx, append(feedings, feeding)); err != nil {
		return models.Feeding{}, err
	}

	s.pushAfterMutation(ctx)
	return feeding, nil
}

func (s *recordService) DeleteFeeding(ctx context.Context, id string) error {
	feedings, err := s.localStore.GetFeedings(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Feeding, 0, len(feedings))
	for _, f := range feedings {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(feedings) {
		return fmt.Errorf("%w: feeding %s", ErrRecordNotFound, id)
	}

	if err = s.localStore.SaveFeedings(ctx, kept); err != nil {
		return err
	}

	s.pushAfterMutation(ctx)
	return nil
}

func (s *recordService) ListFeedings(ctx context.Context) ([]models.Feeding, error) {
	feedings, err := s.localStore.GetFeedings(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(feedings, func(i, j int) bool {
		return recordInstant(feedings[i].Time).After(recordInstant(feedings[j].Time))
	})

	return feedings, nil
}

func (s *recordService) AddDiaper(ctx context.Context, diaper models.DiaperChange) (models.DiaperChange, error) {
	s.stamp(&diaper.ID, &diaper.Time)
	if err := s.validator.Validate(ctx, diaper); err != nil {
		return models.DiaperChange{}, fmt.Errorf("invalid diaper record: %w", err)
	}

	diapers, err := s.localStore.GetDiapers(ctx)
	if err != nil {
		return models.DiaperChange{}, err
	}
	if err = s.localStore.SaveDiapers(ctx, append(diapers, diaper)); err != nil {
		return models.DiaperChange{}, err
	}

	s.pushAfterMutation(ctx)
	return diaper, nil
}

func (s *recordService) DeleteDiaper(ctx context.Context, id string) error {
	diapers, err := s.localStore.GetDiapers(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.DiaperChange, 0, len(diapers))
	for _, d := range diapers {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(diapers) {
		return fmt.Errorf("%w: diaper %s", ErrRecordNotFound, id)
	}

	if err = s.localStore.SaveDiapers(ctx, kept); err != nil {
		return err
	}

	s.pushAfterMutation(ctx)
	return nil
}

func (s *recordService) ListDiapers(ctx context.Context) ([]models.DiaperChange, error) {
	diapers, err := s.localStore.GetDiapers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(diapers, func(i, j int) bool {
		return recordInstant(diapers[i].Time).After(recordInstant(diapers[j].Time))
	})

	return diapers, nil
}

func (s *recordService) AddCryAnalysis(ctx context.Context, analysis models.CryAnalysis) (models.CryAnalysis, error) {
	s.stamp(&analysis.ID, &analysis.Time)
	if err := s.validator.Validate(ctx, analysis); err != nil {
		return models.CryAnalysis{}, fmt.Errorf("invalid cry analysis record: %w", err)
	}

	analyses, err := s.localStore.GetCryAnalyses(ctx)
	if err != nil {
		return models.CryAnalysis{}, err
	}
	if err = s.localStore.SaveCryAnalyses(ctx, append(analyses, analysis)); err != nil {
		return models.CryAnalysis{}, err
	}

	s.pushAfterMutation(ctx)
	return analysis, nil
}

func (s *recordService) DeleteCryAnalysis(ctx context.Context, id string) error {
	analyses, err := s.localStore.GetCryAnalyses(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.CryAnalysis, 0, len(analyses))
	for _, a := range analyses {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(analyses) {
		return fmt.Errorf("%w: cry analysis %s", ErrRecordNotFound, id)
	}

	if err = s.localStore.SaveCryAnalyses(ctx, kept); err != nil {
		return err
	}

	s.pushAfterMutation(ctx)
	return nil
}

func (s *recordService) ListCryAnalyses(ctx context.Context) ([]models.CryAnalysis, error) {
	analyses, err := s.localStore.GetCryAnalyses(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(analyses, func(i, j int) bool {
		return recordInstant(analyses[i].Time).After(recordInstant(analyses[j].Time))
	})

	return analyses, nil
}

func (s *recordService) AddPumpingSession(ctx context.Context, session models.PumpingSession) (models.PumpingSession, error) {
	s.stamp(&session.ID, &session.Time)
	if err := s.validator.Validate(ctx, session); err != nil {
		return models.PumpingSession{}, fmt.Errorf("invalid pumping record: %w", err)
	}

	sessions, err := s.localStore.GetPumpingSessions(ctx)
	if err != nil {
		return models.PumpingSession{}, err
	}
	if err = s.localStore.SavePumpingSessions(ctx, append(sessions, session)); err != nil {
		return models.PumpingSession{}, err
	}

	s.pushAfterMutation(ctx)
	return session, nil
}

func (s *recordService) DeletePumpingSession(ctx context.Context, id string) error {
	sessions, err := s.localStore.GetPumpingSessions(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.PumpingSession, 0, len(sessions))
	for _, p := range sessions {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(sessions) {
		return fmt.Errorf("%w: pumping session %s", ErrRecordNotFound, id)
	}

	if err = s.localStore.SavePumpingSessions(ctx, kept); err != nil {
		return err
	}

	s.pushAfterMutation(ctx)
	return nil
}

func (s *recordService) ListPumpingSessions(ctx context.Context) ([]models.PumpingSession, error) {
	sessions, err := s.localStore.GetPumpingSessions(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return recordInstant(sessions[i].Time).After(recordInstant(sessions[j].Time))
	})

	return sessions, nil
}

// stamp fills in a fresh UUID and current timestamp where the caller left
// them empty.
func (s *recordService) stamp(id *string, at *string) {
	if *id == "" {
		*id = s.ids.Generate()
	}
	if *at == "" {
		*at = time.Now().UTC().Format(time.RFC3339)
	}
}

// pushAfterMutation fires an immediate push in cloud mode. Failures are
// logged only: the push itself marks the pending flag, and the local write
// must never roll back because of a sync failure.
func (s *recordService) pushAfterMutation(ctx context.Context) {
	err := s.coordinator.PushNow(ctx)
	if err == nil || errors.Is(err, ErrNotCloudMode) {
		return
	}
	s.logger.Warn().Err(err).Msg("push after mutation failed, marked pending")
}

func recordInstant(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}

	return t
}
