package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/academicnav/internal/common"
	"github.com/dmitrijs2005/academicnav/internal/logging"
	"github.com/dmitrijs2005/academicnav/internal/models"
	"github.com/dmitrijs2005/academicnav/internal/storage"
	"github.com/dmitrijs2005/academicnav/internal/validation"
)

// TrackerService mutates a loaded UserRecord and persists it.
//
// Every method validates first and writes only after validation passes.
type TrackerService interface {
	SubmitReflection(ctx context.Context, accountID string, rec *models.UserRecord, week int, text string) error
	UpdateStatus(ctx context.Context, accountID string, rec *models.UserRecord, index int, status models.Status) error
}

type trackerService struct {
	store   storage.Store
	records func(s storage.Store) RecordService
	logger  logging.Logger
}

func NewTrackerService(store storage.Store, logger logging.Logger) TrackerService {
	return &trackerService{
		store: store,
		records: func(s storage.Store) RecordService {
			return NewRecordService(s, logger)
		},
		logger: logger,
	}
}

// SubmitReflection stores the trimmed text for week, overwriting an earlier
// submission, and saves the record. The week slot and the record are written
// together; rec is updated only once both are stored.
func (t *trackerService) SubmitReflection(ctx context.Context, accountID string, rec *models.UserRecord, week int, text string) error {
	if accountID == "" || rec == nil {
		return common.ErrNotLoggedIn
	}
	text = strings.TrimSpace(text)
	if err := validation.Check(validation.Reflection{Week: week, Text: text}); err != nil {
		return err
	}

	staged := models.UserRecord{Assignments: rec.Assignments}
	err := storage.Atomically(ctx, t.store, func(ctx context.Context, tx storage.Store) error {
		records := t.records(tx)
		if err := records.PutReflection(ctx, accountID, week, text); err != nil {
			return err
		}
		return records.Save(ctx, accountID, &staged)
	})
	if err != nil {
		return err
	}
	rec.Verifications = staged.Verifications

	t.logger.Info(ctx, "reflection submitted", "account_id", accountID, "week", week)
	return nil
}

// UpdateStatus sets the status of the assignment at index. Unknown non-empty
// statuses are accepted and logged. If the save fails the in-memory status
// is restored.
func (t *trackerService) UpdateStatus(ctx context.Context, accountID string, rec *models.UserRecord, index int, status models.Status) error {
	if accountID == "" || rec == nil {
		return common.ErrNotLoggedIn
	}
	if index < 0 || index >= len(rec.Assignments) {
		return fmt.Errorf("%w: %d of %d", common.ErrIndexOutOfRange, index, len(rec.Assignments))
	}
	if err := validation.Check(validation.StatusUpdate{Status: string(status)}); err != nil {
		return err
	}
	if !status.Known() {
		t.logger.Warn(ctx, "unrecognized assignment status", "account_id", accountID, "status", string(status))
	}

	prev := rec.Assignments[index].Status
	rec.Assignments[index].Status = status
	if err := t.records(t.store).Save(ctx, accountID, rec); err != nil {
		rec.Assignments[index].Status = prev
		return err
	}

	t.logger.Info(ctx, "assignment status updated", "account_id", accountID,
		"assignment", rec.Assignments[index].Name, "status", string(status))
	return nil
}
