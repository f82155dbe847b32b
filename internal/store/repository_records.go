package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/models"
)

// recordRepository is the SQL-backed implementation of [RecordRepository].
// It stores one profile row per baby plus one row per record, all keyed by
// baby ID, and works over both supported drivers through the dialect-aware
// squirrel builder carried by [DB].
type recordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

func (r *recordRepository) CreateBaby(ctx context.Context, baby models.BabyProfile) error {
	log := logger.FromContext(ctx)

	_, err := r.db.builder.
		Insert("babies").
		Columns("baby_id", "birth_date", "baby_name", "created_at").
		Values(baby.BabyID, baby.BirthDate, baby.BabyName, time.Now().UTC().Format(time.RFC3339)).
		RunWith(r.db.DB).
		ExecContext(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrBabyIDTaken
		}

		log.Err(err).Str("func", "*recordRepository.CreateBaby").
			Bool("retryable", r.db.retryable(err)).Msg("error inserting baby profile")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *recordRepository) GetBaby(ctx context.Context, babyID string) (models.BabyProfile, error) {
	log := logger.FromContext(ctx)

	baby := models.BabyProfile{BabyID: babyID}
	err := r.db.builder.
		Select("birth_date", "baby_name").
		From("babies").
		Where("baby_id = ?", babyID).
		RunWith(r.db.DB).
		QueryRowContext(ctx).
		Scan(&baby.BirthDate, &baby.BabyName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BabyProfile{}, ErrBabyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.GetBaby").
			Bool("retryable", r.db.retryable(err)).Msg("error querying baby profile")
		return models.BabyProfile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return baby, nil
}

func (r *recordRepository) GetData(ctx context.Context, babyID string) (models.DataSnapshot, error) {
	var (
		snapshot models.DataSnapshot
		err      error
	)

	if snapshot.Feedings, err = r.getFeedings(ctx, babyID); err != nil {
		return models.DataSnapshot{}, err
	}
	if snapshot.Diapers, err = r.getDiapers(ctx, babyID); err != nil {
		return models.DataSnapshot{}, err
	}
	if snapshot.CryAnalyses, err = r.getCryAnalyses(ctx, babyID); err != nil {
		return models.DataSnapshot{}, err
	}
	if snapshot.PumpingSessions, err = r.getPumpingSessions(ctx, babyID); err != nil {
		return models.DataSnapshot{}, err
	}

	return snapshot, nil
}

func (r *recordRepository) ReplaceData(ctx context.Context, babyID string, snapshot models.DataSnapshot) error {
	log := logger.FromContext(ctx)
	snapshot.Normalize()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range recordTables {
		if _, err = r.db.builder.Delete(table).Where("baby_id = ?", babyID).
			RunWith(tx).ExecContext(ctx); err != nil {
			log.Err(err).Str("func", "*recordRepository.ReplaceData").Str("table", table).
				Bool("retryable", r.db.retryable(err)).Msg("error clearing records")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = r.insertFeedings(ctx, tx, babyID, snapshot.Feedings); err != nil {
		return err
	}
	if err = r.insertDiapers(ctx, tx, babyID, snapshot.Diapers); err != nil {
		return err
	}
	if err = r.insertCryAnalyses(ctx, tx, babyID, snapshot.CryAnalyses); err != nil {
		return err
	}
	if err = r.insertPumpingSessions(ctx, tx, babyID, snapshot.PumpingSessions); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *recordRepository) DeleteAll(ctx context.Context, babyID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	// records first, profile row last
	for _, table := range []string{"feedings", "diapers", "cry_analyses", "pumping_sessions", "babies"} {
		if _, err = r.db.builder.Delete(table).Where("baby_id = ?", babyID).
			RunWith(tx).ExecContext(ctx); err != nil {
			log.Err(err).Str("func", "*recordRepository.DeleteAll").Str("table", table).
				Bool("retryable", r.db.retryable(err)).Msg("error deleting records")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return tx.Commit()
}

var recordTables = []string{"feedings", "diapers", "cry_analyses", "pumping_sessions"}

func (r *recordRepository) getFeedings(ctx context.Context, babyID string) ([]models.Feeding, error) {
	rows, err := r.db.builder.
		Select("id", "time", "type", "quantity").
		From("feedings").
		Where("baby_id = ?", babyID).
		OrderBy("time").
		RunWith(r.db.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	feedings := []models.Feeding{}
	for rows.Next() {
		var (
			f        models.Feeding
			feedType string
		)
		if err = rows.Scan(&f.ID, &f.Time, &feedType, &f.Quantity); err != nil {
			return nil, err
		}
		f.Type = models.FeedingType(feedType)
		feedings = append(feedings, f)
	}

	return feedings, rows.Err()
}

func (r *recordRepository) insertFeedings(ctx context.Context, tx *sql.Tx, babyID string, feedings []models.Feeding) error {
	if len(feedings) == 0 {
		return nil
	}

	insert := r.db.builder.
		Insert("feedings").
		Columns("baby_id", "id", "time", "type", "quantity")
	for _, f := range feedings {
		insert = insert.Values(babyID, f.ID, f.Time, f.Type, f.Quantity)
	}

	if _, err := insert.RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *recordRepository) getDiapers(ctx context.Context, babyID string) ([]models.DiaperChange, error) {
	rows, err := r.db.builder.
		Select("id", "time", "type", "poop_type", "notes", "image", "ai_analysis").
		From("diapers").
		Where("baby_id = ?", babyID).
		OrderBy("time").
		RunWith(r.db.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	diapers := []models.DiaperChange{}
	for rows.Next() {
		var (
			d          models.DiaperChange
			diaperType string
			poopType   string
			aiAnalysis string
		)
		if err = rows.Scan(&d.ID, &d.Time, &diaperType, &poopType, &d.Notes, &d.Image, &aiAnalysis); err != nil {
			return nil, err
		}
		d.Type = models.DiaperType(diaperType)
		if poopType != "" {
			pt := models.PoopConsistency(poopType)
			d.PoopType = &pt
		}
		if aiAnalysis != "" {
			var analysis models.PoopAIAnalysis
			if err = json.Unmarshal([]byte(aiAnalysis), &analysis); err != nil {
				return nil, fmt.Errorf("unmarshal diaper analysis %s: %w", d.ID, err)
			}
			d.AIAnalysis = &analysis
		}
		diapers = append(diapers, d)
	}

	return diapers, rows.Err()
}

func (r *recordRepository) insertDiapers(ctx context.Context, tx *sql.Tx, babyID string, diapers []models.DiaperChange) error {
	if len(diapers) == 0 {
		return nil
	}

	insert := r.db.builder.
		Insert("diapers").
		Columns("baby_id", "id", "time", "type", "poop_type", "notes", "image", "ai_analysis")
	for _, d := range diapers {
		var poopType string
		if d.PoopType != nil {
			poopType = string(*d.PoopType)
		}

		var aiAnalysis string
		if d.AIAnalysis != nil {
			raw, err := json.Marshal(d.AIAnalysis)
			if err != nil {
				return fmt.Errorf("marshal diaper analysis %s: %w", d.ID, err)
			}
			aiAnalysis = string(raw)
		}

		insert = insert.Values(babyID, d.ID, d.Time, d.Type, poopType, d.Notes, d.Image, aiAnalysis)
	}

	if _, err := insert.RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *recordRepository) getCryAnalyses(ctx context.Context, babyID string) ([]models.CryAnalysis, error) {
	rows, err := r.db.builder.
		Select("id", "time", "result", "detected_sound").
		From("cry_analyses").
		Where("baby_id = ?", babyID).
		OrderBy("time").
		RunWith(r.db.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	analyses := []models.CryAnalysis{}
	for rows.Next() {
		var (
			a      models.CryAnalysis
			result string
		)
		if err = rows.Scan(&a.ID, &a.Time, &result, &a.DetectedSound); err != nil {
			return nil, err
		}
		if err = json.Unmarshal([]byte(result), &a.Result); err != nil {
			return nil, fmt.Errorf("unmarshal cry result %s: %w", a.ID, err)
		}
		analyses = append(analyses, a)
	}

	return analyses, rows.Err()
}

func (r *recordRepository) insertCryAnalyses(ctx context.Context, tx *sql.Tx, babyID string, analyses []models.CryAnalysis) error {
	if len(analyses) == 0 {
		return nil
	}

	insert := r.db.builder.
		Insert("cry_analyses").
		Columns("baby_id", "id", "time", "result", "detected_sound")
	for _, a := range analyses {
		result, err := json.Marshal(a.Result)
		if err != nil {
			return fmt.Errorf("marshal cry result %s: %w", a.ID, err)
		}
		insert = insert.Values(babyID, a.ID, a.Time, string(result), a.DetectedSound)
	}

	if _, err := insert.RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *recordRepository) getPumpingSessions(ctx context.Context, babyID string) ([]models.PumpingSession, error) {
	rows, err := r.db.builder.
		Select("id", "time", "volume", "duration", "side", "notes").
		From("pumping_sessions").
		Where("baby_id = ?", babyID).
		OrderBy("time").
		RunWith(r.db.DB).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	sessions := []models.PumpingSession{}
	for rows.Next() {
		var (
			s        models.PumpingSession
			duration sql.NullInt64
			side     string
		)
		if err = rows.Scan(&s.ID, &s.Time, &s.Volume, &duration, &side, &s.Notes); err != nil {
			return nil, err
		}
		s.Side = models.PumpingSide(side)
		if duration.Valid {
			d := int(duration.Int64)
			s.Duration = &d
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func (r *recordRepository) insertPumpingSessions(ctx context.Context, tx *sql.Tx, babyID string, sessions []models.PumpingSession) error {
	if len(sessions) == 0 {
		return nil
	}

	insert := r.db.builder.
		Insert("pumping_sessions").
		Columns("baby_id", "id", "time", "volume", "duration", "side", "notes")
	for _, s := range sessions {
		var duration sql.NullInt64
		if s.Duration != nil {
			duration = sql.NullInt64{Int64: int64(*s.Duration), Valid: true}
		}
		insert = insert.Values(babyID, s.ID, s.Time, s.Volume, duration, s.Side, s.Notes)
	}

	if _, err := insert.RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
