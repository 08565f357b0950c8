package load

import (
	"fmt"

	"message-summary-etl/internal/database/models"
	apperrors "message-summary-etl/internal/errors"
	"message-summary-etl/internal/logger"
	"message-summary-etl/internal/repository"

	"github.com/go-playground/validator/v10"
)

// Loader persists aggregated summaries into the sink table
type Loader struct {
	repo      repository.SummaryRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewLoader creates a new loader
func NewLoader(repo repository.SummaryRepositoryInterface, validator *validator.Validate, log *logger.Logger) *Loader {
	return &Loader{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

// Load upserts every summary row. A row failure does not stop the batch:
// every row is attempted, then the failures are returned together as a
// *errors.SinkWriteError. Returns nil only if all rows landed.
func (l *Loader) Load(summaries []models.MonthlySummary) error {
	var failures []apperrors.RowFailure

	for i := range summaries {
		row := &summaries[i]
		if err := l.load(row); err != nil {
			l.log.WithFields(map[string]interface{}{
				"organization_id": row.OrganizationID,
				"name_user":       row.NameUser,
				"month":           row.Month,
			}).WithError(err).Error("failed to persist summary row")
			failures = append(failures, apperrors.RowFailure{
				OrganizationID: row.OrganizationID,
				NameUser:       row.NameUser,
				Month:          row.Month,
				Err:            err,
			})
		}
	}

	l.log.WithFields(map[string]interface{}{
		"rows":   len(summaries),
		"failed": len(failures),
	}).Info("sink load complete")

	if len(failures) > 0 {
		return &apperrors.SinkWriteError{Failures: failures}
	}
	return nil
}

func (l *Loader) load(row *models.MonthlySummary) error {
	if err := l.validator.Struct(row); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := l.repo.Upsert(row); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}
