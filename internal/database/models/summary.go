package models

// MonthlySummary is one aggregated row: messages counted per organization,
// user and calendar month. (organization_id, name_user, month) behaves as the
// natural key for upserts; reruns update message_count in place.
type MonthlySummary struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	OrganizationID int    `json:"organization_id" gorm:"not null;uniqueIndex:idx_monthly_summaries_natural_key" validate:"required"`
	Name           string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	NameUser       string `json:"name_user" gorm:"size:100;not null;uniqueIndex:idx_monthly_summaries_natural_key" validate:"required,max=100"`
	Month          string `json:"month" gorm:"size:10;not null;uniqueIndex:idx_monthly_summaries_natural_key" validate:"required,datetime=2006-01"`
	MessageCount   int    `json:"message_count" gorm:"not null" validate:"min=0"`
}

// TableName returns the table name for MonthlySummary
func (MonthlySummary) TableName() string {
	return "monthly_summaries"
}
