package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"message-summary-etl/internal/database/models"
	apperrors "message-summary-etl/internal/errors"
	"message-summary-etl/internal/logger"
)

// Header labels match the report format the finance side already consumes.
var header = []string{"Nama Perusahaan", "Nama Divisi", "Periode", "Jumlah Pesan Terkirim"}

// Emitter writes per-organization CSV reports under a month-stamped directory
type Emitter struct {
	root string
	log  *logger.Logger
}

// NewEmitter creates a new emitter rooted at the output directory
func NewEmitter(root string, log *logger.Logger) *Emitter {
	return &Emitter{root: root, log: log}
}

type partitionKey struct {
	month        string
	organization string
}

// Emit partitions the summaries by (organization, month) and writes one CSV
// file per partition at <root>/<month>/<organization>.csv. A partition's
// failure is recorded and the remaining files still write; failures come back
// together as a *errors.ReportWriteError.
func (e *Emitter) Emit(summaries []models.MonthlySummary) error {
	partitions := make(map[partitionKey][]models.MonthlySummary)
	for _, s := range summaries {
		key := partitionKey{month: s.Month, organization: s.Name}
		partitions[key] = append(partitions[key], s)
	}

	keys := make([]partitionKey, 0, len(partitions))
	for key := range partitions {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].month != keys[j].month {
			return keys[i].month < keys[j].month
		}
		return keys[i].organization < keys[j].organization
	})

	var failures []apperrors.FileFailure
	for _, key := range keys {
		path := filepath.Join(e.root, key.month, key.organization+".csv")
		if err := e.writeFile(path, partitions[key]); err != nil {
			e.log.WithFields(map[string]interface{}{
				"organization": key.organization,
				"month":        key.month,
			}).WithError(err).Error("failed to write report file")
			failures = append(failures, apperrors.FileFailure{
				Organization: key.organization,
				Month:        key.month,
				Path:         path,
				Err:          err,
			})
			continue
		}
		e.log.WithField("path", path).Debug("report file written")
	}

	e.log.WithFields(map[string]interface{}{
		"files":  len(keys),
		"failed": len(failures),
	}).Info("report emission complete")

	if len(failures) > 0 {
		return &apperrors.ReportWriteError{Failures: failures}
	}
	return nil
}

func (e *Emitter) writeFile(path string, rows []models.MonthlySummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		record := []string{row.Name, row.NameUser, row.Month, strconv.Itoa(row.MessageCount)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return f.Close()
}
