package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/academicnav/internal/logging"
	"github.com/dmitrijs2005/academicnav/internal/models"
	"github.com/dmitrijs2005/academicnav/internal/storage"
)

// RecordService owns the per-account UserRecord blob and the per-week
// reflection slots.
//
// The reflection slots are authoritative: Save rebuilds the record's
// verifications from them instead of trusting the in-memory map.
type RecordService interface {
	Initialize(ctx context.Context, accountID string) (*models.UserRecord, error)
	Load(ctx context.Context, accountID string) (*models.UserRecord, error)
	Save(ctx context.Context, accountID string, rec *models.UserRecord) error

	Reflection(ctx context.Context, accountID string, week int) (string, bool, error)
	PutReflection(ctx context.Context, accountID string, week int, text string) error
	Reflections(ctx context.Context, accountID string) (map[int]string, error)
}

type recordService struct {
	store  storage.Store
	logger logging.Logger
}

func NewRecordService(store storage.Store, logger logging.Logger) RecordService {
	return &recordService{store: store, logger: logger}
}

// Initialize writes a fresh record: no reflections, default assignments.
func (r *recordService) Initialize(ctx context.Context, accountID string) (*models.UserRecord, error) {
	rec := models.NewUserRecord()
	if err := storage.SetJSON(ctx, r.store, storage.UserDataKey(accountID), rec); err != nil {
		return nil, fmt.Errorf("initialize record: %w", err)
	}
	return rec, nil
}

// Load returns the stored record, initializing it first if it is missing.
func (r *recordService) Load(ctx context.Context, accountID string) (*models.UserRecord, error) {
	var rec models.UserRecord
	ok, err := storage.GetJSON(ctx, r.store, storage.UserDataKey(accountID), &rec)
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	if !ok {
		r.logger.Warn(ctx, "record missing, initializing", "account_id", accountID)
		return r.Initialize(ctx, accountID)
	}

	if rec.Verifications == nil {
		rec.Verifications = map[string]string{}
	}
	if rec.Assignments == nil {
		rec.Assignments = models.DefaultAssignments()
	}
	return &rec, nil
}

// Save overwrites the stored record. Verifications are re-gathered from the
// reflection slots and written back into rec as well.
func (r *recordService) Save(ctx context.Context, accountID string, rec *models.UserRecord) error {
	texts, err := r.Reflections(ctx, accountID)
	if err != nil {
		return err
	}

	verifications := make(map[string]string, len(texts))
	for week, text := range texts {
		verifications[models.WeekLabel(week)] = text
	}

	out := models.UserRecord{Verifications: verifications, Assignments: rec.Assignments}
	if err := storage.SetJSON(ctx, r.store, storage.UserDataKey(accountID), out); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	rec.Verifications = verifications
	return nil
}

// Reflection reads one week slot. Empty text counts as absent.
func (r *recordService) Reflection(ctx context.Context, accountID string, week int) (string, bool, error) {
	text, ok, err := r.store.Get(ctx, storage.ReflectionKey(accountID, week))
	if err != nil {
		return "", false, fmt.Errorf("read reflection: %w", err)
	}
	if !ok || text == "" {
		return "", false, nil
	}
	return text, true, nil
}

func (r *recordService) PutReflection(ctx context.Context, accountID string, week int, text string) error {
	if err := r.store.Set(ctx, storage.ReflectionKey(accountID, week), text); err != nil {
		return fmt.Errorf("write reflection: %w", err)
	}
	return nil
}

// Reflections returns the submitted texts of every week, keyed by week.
func (r *recordService) Reflections(ctx context.Context, accountID string) (map[int]string, error) {
	out := make(map[int]string)
	for week := models.FirstWeek; week <= models.LastWeek; week++ {
		text, ok, err := r.Reflection(ctx, accountID, week)
		if err != nil {
			return nil, err
		}
		if ok {
			out[week] = text
		}
	}
	return out, nil
}
