package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"message-summary-etl/internal/database/models"
	apperrors "message-summary-etl/internal/errors"
	"message-summary-etl/internal/extract"
	"message-summary-etl/internal/logger"
	"message-summary-etl/internal/transform"

	"github.com/google/uuid"
)

// Extractor reads message records from the source
type Extractor interface {
	Extract(ctx context.Context, window extract.Window, statuses []string) ([]extract.MessageRecord, error)
}

// Loader persists aggregated summaries to the sink
type Loader interface {
	Load(summaries []models.MonthlySummary) error
}

// Emitter writes the per-organization report files
type Emitter interface {
	Emit(summaries []models.MonthlySummary) error
}

// RunSummary reports what one pipeline run did, success or not
type RunSummary struct {
	RunID             string
	RecordsExtracted  int
	RecordsSkipped    int
	SummariesProduced int
	SinkRowsFailed    int
	ReportFilesFailed int
	Duration          time.Duration
}

// Pipeline runs the extract → aggregate → persist sequence once
type Pipeline struct {
	extractor Extractor
	loader    Loader
	emitter   Emitter
	window    extract.Window
	statuses  []string
	runID     string
	log       *logger.Logger
}

// New creates a pipeline for a single run
func New(extractor Extractor, loader Loader, emitter Emitter, window extract.Window, statuses []string) *Pipeline {
	runID := uuid.NewString()
	return &Pipeline{
		extractor: extractor,
		loader:    loader,
		emitter:   emitter,
		window:    window,
		statuses:  statuses,
		runID:     runID,
		log:       logger.WithRun(runID),
	}
}

// Run executes the pipeline once. A source failure is fatal and returns
// immediately. Data-quality skips are logged per record and never fail the
// run. Sink and report failures accumulate: both stages run to completion
// (concurrently, over the same immutable slice) and the run fails afterwards
// if either reported anything.
func (p *Pipeline) Run(ctx context.Context) (*RunSummary, error) {
	start := time.Now()
	summary := &RunSummary{RunID: p.runID}
	p.log.Info("pipeline run started")

	records, err := p.extractor.Extract(ctx, p.window, p.statuses)
	if err != nil {
		p.log.WithError(err).Error("extraction failed, aborting run")
		summary.Duration = time.Since(start)
		return summary, err
	}
	summary.RecordsExtracted = len(records)

	aggregated, skipped := transform.Aggregate(records)
	summary.SummariesProduced = len(aggregated)
	summary.RecordsSkipped = len(skipped)
	for _, dq := range skipped {
		p.log.WithField("record_id", dq.RecordID).Warn(dq.Error())
	}

	// Sink and report consume the same immutable aggregate independently.
	// Each stage owns its error slot; both must surface in the run result.
	var wg sync.WaitGroup
	var sinkErr, reportErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		sinkErr = p.loader.Load(aggregated)
	}()
	go func() {
		defer wg.Done()
		reportErr = p.emitter.Emit(aggregated)
	}()
	wg.Wait()

	var sinkWrite *apperrors.SinkWriteError
	if errors.As(sinkErr, &sinkWrite) {
		summary.SinkRowsFailed = len(sinkWrite.Failures)
	}
	var reportWrite *apperrors.ReportWriteError
	if errors.As(reportErr, &reportWrite) {
		summary.ReportFilesFailed = len(reportWrite.Failures)
	}

	summary.Duration = time.Since(start)
	p.log.WithFields(map[string]interface{}{
		"records_extracted":   summary.RecordsExtracted,
		"records_skipped":     summary.RecordsSkipped,
		"summaries_produced":  summary.SummariesProduced,
		"sink_rows_failed":    summary.SinkRowsFailed,
		"report_files_failed": summary.ReportFilesFailed,
		"duration":            summary.Duration.String(),
	}).Info("pipeline run finished")

	return summary, errors.Join(sinkErr, reportErr)
}
