package transform

import (
	"sort"

	"message-summary-etl/internal/database/models"
	apperrors "message-summary-etl/internal/errors"
	"message-summary-etl/internal/extract"
)

// groupKey identifies one (organization, user, month) bucket. User id stays
// in the key even though the sink row only carries the user name: two users
// sharing a display name must not be merged.
type groupKey struct {
	organizationID int
	userID         int
	month          string
}

type group struct {
	organizationName string
	userName         string
	count            int
}

// Aggregate groups message records by (organization, user, calendar month)
// and counts each bucket. Every record with a valid created_at contributes
// exactly one unit to exactly one summary. Records without one are excluded
// and returned as data-quality errors, never silently dropped.
//
// Output is sorted ascending by (organization id, user id, month) so repeated
// runs over the same input produce the same sequence.
func Aggregate(records []extract.MessageRecord) ([]models.MonthlySummary, []*apperrors.DataQualityError) {
	groups := make(map[groupKey]*group)
	var skipped []*apperrors.DataQualityError

	for _, r := range records {
		if !r.CreatedAt.Valid {
			skipped = append(skipped, &apperrors.DataQualityError{
				RecordID: r.ID,
				Field:    "created_at",
				Reason:   "is null",
			})
			continue
		}

		key := groupKey{
			organizationID: r.OrganizationID,
			userID:         r.UserID,
			month:          r.CreatedAt.Time.Format("2006-01"),
		}
		g, ok := groups[key]
		if !ok {
			g = &group{organizationName: r.OrganizationName, userName: r.UserName}
			groups[key] = g
		}
		g.count++
	}

	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.organizationID != b.organizationID {
			return a.organizationID < b.organizationID
		}
		if a.userID != b.userID {
			return a.userID < b.userID
		}
		return a.month < b.month
	})

	summaries := make([]models.MonthlySummary, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		summaries = append(summaries, models.MonthlySummary{
			OrganizationID: key.organizationID,
			Name:           g.organizationName,
			NameUser:       g.userName,
			Month:          key.month,
			MessageCount:   g.count,
		})
	}

	return summaries, skipped
}
