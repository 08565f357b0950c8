package transform

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"message-summary-etl/internal/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id int64, orgID, userID int, orgName, userName string, createdAt time.Time) extract.MessageRecord {
	return extract.MessageRecord{
		ID:               id,
		OrganizationID:   orgID,
		UserID:           userID,
		Status:           "delivered",
		CreatedAt:        sql.NullTime{Time: createdAt, Valid: true},
		OrganizationName: orgName,
		UserName:         userName,
	}
}

func TestAggregateCountsPerOrgUserMonth(t *testing.T) {
	march := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	records := []extract.MessageRecord{
		record(1, 1, 10, "A", "U", march),
		record(2, 1, 10, "A", "U", march.Add(24*time.Hour)),
		record(3, 1, 10, "A", "U", march.Add(48*time.Hour)),
		record(4, 2, 20, "B", "V", march),
	}

	summaries, skipped := Aggregate(records)

	require.Empty(t, skipped)
	require.Len(t, summaries, 2)

	assert.Equal(t, 1, summaries[0].OrganizationID)
	assert.Equal(t, "A", summaries[0].Name)
	assert.Equal(t, "U", summaries[0].NameUser)
	assert.Equal(t, "2024-03", summaries[0].Month)
	assert.Equal(t, 3, summaries[0].MessageCount)

	assert.Equal(t, 2, summaries[1].OrganizationID)
	assert.Equal(t, "B", summaries[1].Name)
	assert.Equal(t, "V", summaries[1].NameUser)
	assert.Equal(t, "2024-03", summaries[1].Month)
	assert.Equal(t, 1, summaries[1].MessageCount)
}

func TestAggregateSplitsMonthsOnCalendarBoundary(t *testing.T) {
	records := []extract.MessageRecord{
		record(1, 1, 10, "A", "U", time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)),
		record(2, 1, 10, "A", "U", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	summaries, skipped := Aggregate(records)

	require.Empty(t, skipped)
	require.Len(t, summaries, 2)
	assert.Equal(t, "2024-03", summaries[0].Month)
	assert.Equal(t, "2024-04", summaries[1].Month)
	assert.Equal(t, 1, summaries[0].MessageCount)
	assert.Equal(t, 1, summaries[1].MessageCount)
}

func TestAggregateConservationOfCount(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var records []extract.MessageRecord
	for i := 0; i < 100; i++ {
		records = append(records, record(int64(i), i%5, i%7, "org", "user", base.AddDate(0, i%12, 0)))
	}

	summaries, skipped := Aggregate(records)

	require.Empty(t, skipped)
	total := 0
	for _, s := range summaries {
		total += s.MessageCount
	}
	assert.Equal(t, len(records), total)
}

func TestAggregateExcludesNullTimestamps(t *testing.T) {
	march := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records := []extract.MessageRecord{
		record(1, 1, 10, "A", "U", march),
		{ID: 99, OrganizationID: 1, UserID: 10, OrganizationName: "A", UserName: "U"},
		record(3, 1, 10, "A", "U", march),
	}

	summaries, skipped := Aggregate(records)

	require.Len(t, skipped, 1)
	assert.Equal(t, int64(99), skipped[0].RecordID)
	assert.Equal(t, "created_at", skipped[0].Field)

	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].MessageCount)
}

func TestAggregateDeterministicOrdering(t *testing.T) {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	// Deliberately unsorted input
	records := []extract.MessageRecord{
		record(1, 3, 1, "C", "X", march),
		record(2, 1, 2, "A", "Y", march),
		record(3, 1, 1, "A", "X", march.AddDate(0, 1, 0)),
		record(4, 1, 1, "A", "X", march),
		record(5, 2, 5, "B", "Z", march),
	}

	first, _ := Aggregate(records)
	second, _ := Aggregate(records)

	assert.Equal(t, first, second)

	require.Len(t, first, 5)
	assert.Equal(t, []string{"2024-03", "2024-04", "2024-03", "2024-03", "2024-03"}, []string{
		first[0].Month, first[1].Month, first[2].Month, first[3].Month, first[4].Month,
	})
	assert.Equal(t, 1, first[0].OrganizationID)
	assert.Equal(t, "X", first[0].NameUser)
	assert.Equal(t, 1, first[1].OrganizationID)
	assert.Equal(t, "X", first[1].NameUser)
	assert.Equal(t, "Y", first[2].NameUser)
	assert.Equal(t, 2, first[3].OrganizationID)
	assert.Equal(t, 3, first[4].OrganizationID)
}

func TestAggregateMonthLabelFormat(t *testing.T) {
	monthPattern := regexp.MustCompile(`^\d{4}-\d{2}$`)
	records := []extract.MessageRecord{
		record(1, 1, 1, "A", "U", time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)),
		record(2, 1, 1, "A", "U", time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)),
		record(3, 1, 1, "A", "U", time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)),
	}

	summaries, _ := Aggregate(records)

	for _, s := range summaries {
		assert.Regexp(t, monthPattern, s.Month)
		assert.GreaterOrEqual(t, s.MessageCount, 0)
	}
	assert.Equal(t, "2023-12", summaries[0].Month)
	assert.Equal(t, "2024-09", summaries[2].Month)
}

func TestAggregateKeepsUsersWithSameNameSeparate(t *testing.T) {
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []extract.MessageRecord{
		record(1, 1, 10, "A", "Budi", march),
		record(2, 1, 11, "A", "Budi", march),
	}

	summaries, _ := Aggregate(records)

	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].MessageCount)
	assert.Equal(t, 1, summaries[1].MessageCount)
}

func TestAggregateEmptyInput(t *testing.T) {
	summaries, skipped := Aggregate(nil)

	assert.Empty(t, summaries)
	assert.Empty(t, skipped)
}
