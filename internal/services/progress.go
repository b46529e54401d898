package services

import (
	"context"
	"math"

	"github.com/dmitrijs2005/academicnav/internal/common"
	"github.com/dmitrijs2005/academicnav/internal/models"
)

// ProgressService computes dashboard metrics. Reflection completion is read
// from the persisted week slots, never from a cached record.
type ProgressService interface {
	Compute(ctx context.Context, accountID string, assignments []models.Assignment) (*models.ProgressReport, error)
}

type progressService struct {
	records RecordService
}

func NewProgressService(records RecordService) ProgressService {
	return &progressService{records: records}
}

func (p *progressService) Compute(ctx context.Context, accountID string, assignments []models.Assignment) (*models.ProgressReport, error) {
	if accountID == "" {
		return nil, common.ErrNotLoggedIn
	}

	done := make(map[int]bool, models.TotalReflectionWeeks)
	for week := models.FirstWeek; week <= models.LastWeek; week++ {
		_, ok, err := p.records.Reflection(ctx, accountID, week)
		if err != nil {
			return nil, err
		}
		done[week] = ok
	}

	report := BuildReport(done, assignments)
	return &report, nil
}

// BuildReport is the pure part of the calculation. The denominators are the
// fixed TotalReflectionWeeks and TotalAssignments regardless of how many
// assignments are passed.
func BuildReport(done map[int]bool, assignments []models.Assignment) models.ProgressReport {
	report := models.ProgressReport{
		TotalReflections: models.TotalReflectionWeeks,
		TotalAssignments: models.TotalAssignments,
		Weeks:            make([]models.WeekProgress, 0, models.TotalReflectionWeeks),
	}

	for week := models.FirstWeek; week <= models.LastWeek; week++ {
		wp := models.WeekProgress{Week: week}
		if done[week] {
			wp.Percent = 100
			report.CompletedReflections++
		}
		report.Weeks = append(report.Weeks, wp)
	}

	for _, a := range assignments {
		if a.Status == models.StatusCompleted {
			report.CompletedAssignments++
		}
	}

	completed := report.CompletedReflections + report.CompletedAssignments
	total := report.TotalReflections + report.TotalAssignments
	report.Overall = int(math.Round(100 * float64(completed) / float64(total)))
	report.Band = models.BandFor(report.Overall)
	return report
}
