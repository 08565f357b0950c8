package repository

import (
	"message-summary-etl/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryRepository handles database operations for monthly summaries
type SummaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// Upsert inserts the summary or, when a row with the same
// (organization_id, name_user, month) already exists, updates its name and
// message_count in place. Reruns therefore never duplicate rows.
func (r *SummaryRepository) Upsert(summary *models.MonthlySummary) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "organization_id"},
			{Name: "name_user"},
			{Name: "month"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"message_count",
		}),
	}).Create(summary).Error
}

// GetByNaturalKey retrieves a summary by its natural key
func (r *SummaryRepository) GetByNaturalKey(organizationID int, nameUser, month string) (*models.MonthlySummary, error) {
	var summary models.MonthlySummary
	err := r.db.First(&summary, "organization_id = ? AND name_user = ? AND month = ?",
		organizationID, nameUser, month).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetAll retrieves every summary ordered by the natural key
func (r *SummaryRepository) GetAll() ([]models.MonthlySummary, error) {
	var summaries []models.MonthlySummary
	err := r.db.Order("organization_id, name_user, month").Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// CountAll returns the number of summary rows
func (r *SummaryRepository) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.MonthlySummary{}).Count(&total).Error
	return total, err
}

// DeleteAll removes every summary row
func (r *SummaryRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.MonthlySummary{}).Error
}
