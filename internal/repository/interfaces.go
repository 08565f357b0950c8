package repository

import (
	"message-summary-etl/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SummaryRepositoryInterface defines the interface for summary persistence
type SummaryRepositoryInterface interface {
	Upsert(summary *models.MonthlySummary) error
	GetByNaturalKey(organizationID int, nameUser, month string) (*models.MonthlySummary, error)
	GetAll() ([]models.MonthlySummary, error)
	CountAll() (int64, error)
	DeleteAll() error
}
