package testutils

import (
	"database/sql"
	"time"

	"message-summary-etl/internal/database/models"
	"message-summary-etl/internal/extract"
)

// SummaryFactory provides methods to create test MonthlySummary data
type SummaryFactory struct{}

// NewSummaryFactory creates a new SummaryFactory
func NewSummaryFactory() *SummaryFactory {
	return &SummaryFactory{}
}

// Create creates a test MonthlySummary with default values
func (f *SummaryFactory) Create() *models.MonthlySummary {
	return &models.MonthlySummary{
		OrganizationID: 1,
		Name:           "Test Organization",
		NameUser:       "Test Division",
		Month:          "2024-03",
		MessageCount:   3,
	}
}

// WithKey sets a custom natural key for the summary
func (f *SummaryFactory) WithKey(organizationID int, nameUser, month string) *models.MonthlySummary {
	s := f.Create()
	s.OrganizationID = organizationID
	s.NameUser = nameUser
	s.Month = month
	return s
}

// WithCount sets a custom message count for the summary
func (f *SummaryFactory) WithCount(count int) *models.MonthlySummary {
	s := f.Create()
	s.MessageCount = count
	return s
}

// RecordFactory provides methods to create test MessageRecord data
type RecordFactory struct {
	nextID int64
}

// NewRecordFactory creates a new RecordFactory
func NewRecordFactory() *RecordFactory {
	return &RecordFactory{}
}

// Create creates a test MessageRecord created at the given time
func (f *RecordFactory) Create(orgID, userID int, orgName, userName string, createdAt time.Time) extract.MessageRecord {
	f.nextID++
	return extract.MessageRecord{
		ID:               f.nextID,
		OrganizationID:   orgID,
		UserID:           userID,
		Status:           "delivered",
		CreatedAt:        sql.NullTime{Time: createdAt, Valid: true},
		OrganizationName: orgName,
		UserName:         userName,
	}
}

// CreateWithoutTimestamp creates a record whose created_at is NULL
func (f *RecordFactory) CreateWithoutTimestamp(orgID, userID int, orgName, userName string) extract.MessageRecord {
	r := f.Create(orgID, userID, orgName, userName, time.Time{})
	r.CreatedAt = sql.NullTime{}
	return r
}

// FactorySet bundles the factories used by the test suites
type FactorySet struct {
	Summary *SummaryFactory
	Record  *RecordFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Summary: NewSummaryFactory(),
		Record:  NewRecordFactory(),
	}
}
