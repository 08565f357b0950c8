package errors

import (
	"fmt"
	"strings"
)

// SourceError represents a source connection or query failure.
// It is fatal: aggregation needs a consistent snapshot, so no partial
// extraction is acceptable.
type SourceError struct {
	Op  string
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source unavailable: %s: %v", e.Op, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() comparison for SourceError
func (e *SourceError) Is(target error) bool {
	_, ok := target.(*SourceError)
	return ok
}

// ErrSourceUnavailable is the comparison target for errors.Is checks
var ErrSourceUnavailable = &SourceError{}

// DataQualityError represents a single record excluded from aggregation.
// It is recovered locally and never aborts the run.
type DataQualityError struct {
	RecordID int64
	Field    string
	Reason   string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("data quality: record %d: %s %s", e.RecordID, e.Field, e.Reason)
}

// Is enables errors.Is() comparison for DataQualityError
func (e *DataQualityError) Is(target error) bool {
	_, ok := target.(*DataQualityError)
	return ok
}

// RowFailure identifies one summary row that failed to persist
type RowFailure struct {
	OrganizationID int
	NameUser       string
	Month          string
	Err            error
}

func (f RowFailure) String() string {
	return fmt.Sprintf("(%d, %q, %s): %v", f.OrganizationID, f.NameUser, f.Month, f.Err)
}

// SinkWriteError aggregates per-row sink failures. The loader attempts every
// row before returning it (fail-at-end, not fail-fast).
type SinkWriteError struct {
	Failures []RowFailure
}

func (e *SinkWriteError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.String()
	}
	return fmt.Sprintf("sink write failed for %d row(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

// Is enables errors.Is() comparison for SinkWriteError
func (e *SinkWriteError) Is(target error) bool {
	_, ok := target.(*SinkWriteError)
	return ok
}

// FileFailure identifies one report file that failed to write
type FileFailure struct {
	Organization string
	Month        string
	Path         string
	Err          error
}

func (f FileFailure) String() string {
	return fmt.Sprintf("%s/%s (%s): %v", f.Month, f.Organization, f.Path, f.Err)
}

// ReportWriteError aggregates per-file report failures. One organization's
// failure does not stop the remaining files from being written.
type ReportWriteError struct {
	Failures []FileFailure
}

func (e *ReportWriteError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.String()
	}
	return fmt.Sprintf("report write failed for %d file(s): %s", len(e.Failures), strings.Join(parts, "; "))
}

// Is enables errors.Is() comparison for ReportWriteError
func (e *ReportWriteError) Is(target error) bool {
	_, ok := target.(*ReportWriteError)
	return ok
}
