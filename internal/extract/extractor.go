package extract

import (
	"context"
	"database/sql"
	"strings"
	"time"

	apperrors "message-summary-etl/internal/errors"
	"message-summary-etl/internal/logger"
)

// MessageRecord is one denormalized source row: the raw message fields plus
// the organization and user display names from the joined reference tables.
type MessageRecord struct {
	ID               int64
	OrganizationID   int
	UserID           int
	Status           string
	CreatedAt        sql.NullTime
	OrganizationName string
	UserName         string
}

// Window bounds the extraction by created_at. A nil bound is unbounded on
// that side.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// Extractor reads message-delivery records from the source database
type Extractor struct {
	db  *sql.DB
	log *logger.Logger
}

// NewExtractor creates a new extractor over the source connection
func NewExtractor(db *sql.DB, log *logger.Logger) *Extractor {
	return &Extractor{db: db, log: log}
}

// Extract returns every message record whose status is in statuses, joined
// with its organization and user names. A NULL created_at is not an error
// here; the aggregator excludes such records and reports them.
func (e *Extractor) Extract(ctx context.Context, window Window, statuses []string) ([]MessageRecord, error) {
	query, args := buildQuery(window, statuses)
	e.log.WithField("statuses", strings.Join(statuses, ",")).Debug("extracting message records")

	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &apperrors.SourceError{Op: "query messages", Err: err}
	}
	defer rows.Close()

	var records []MessageRecord
	for rows.Next() {
		var r MessageRecord
		if err := rows.Scan(&r.ID, &r.OrganizationID, &r.UserID, &r.Status, &r.CreatedAt, &r.OrganizationName, &r.UserName); err != nil {
			return nil, &apperrors.SourceError{Op: "scan message row", Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.SourceError{Op: "iterate message rows", Err: err}
	}

	e.log.WithField("records", len(records)).Info("extraction complete")
	return records, nil
}

// buildQuery assembles the joined select with the status filter and optional
// window bounds. Ordered by message id for a stable snapshot order.
func buildQuery(window Window, statuses []string) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(`
		SELECT m.id, m.organization_id, m.user_id, m.status, m.created_at, o.name, u.name
		FROM messages m
		JOIN organizations o ON o.id = m.organization_id
		JOIN users u ON u.id = m.user_id
		WHERE m.status IN (`)

	args := make([]interface{}, 0, len(statuses)+2)
	for i, s := range statuses {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("?")
		args = append(args, s)
	}
	b.WriteString(")")

	if window.Start != nil {
		b.WriteString(" AND m.created_at >= ?")
		args = append(args, *window.Start)
	}
	if window.End != nil {
		b.WriteString(" AND m.created_at < ?")
		args = append(args, *window.End)
	}

	b.WriteString(" ORDER BY m.id")
	return b.String(), args
}
