package main

import (
	"context"
	"log"
	"os"

	"message-summary-etl/internal/config"
	"message-summary-etl/internal/database"
	"message-summary-etl/internal/extract"
	"message-summary-etl/internal/load"
	"message-summary-etl/internal/logger"
	"message-summary-etl/internal/pipeline"
	"message-summary-etl/internal/report"
	"message-summary-etl/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Open the source database
	sourceDB, err := database.OpenSource(cfg.SourceDSN())
	if err != nil {
		logrus.Fatal("Failed to open source database:", err)
	}
	defer sourceDB.Close()

	// Open the sink database
	sinkDB, err := database.OpenSink(cfg.SinkURL, nil)
	if err != nil {
		logrus.Fatal("Failed to open sink database:", err)
	}
	defer func() {
		if sqlDB, err := sinkDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	start, end, err := cfg.Window()
	if err != nil {
		logrus.Fatal("Invalid extraction window:", err)
	}

	lg := logger.New()
	p := pipeline.New(
		extract.NewExtractor(sourceDB, lg),
		load.NewLoader(repository.NewSummaryRepository(sinkDB), validator.New(), lg),
		report.NewEmitter(cfg.OutputDir, lg),
		extract.Window{Start: start, End: end},
		cfg.Statuses,
	)

	summary, err := p.Run(context.Background())
	if err != nil {
		logrus.WithField("run_id", summary.RunID).Error("Pipeline run failed: ", err)
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":             summary.RunID,
		"records_extracted":  summary.RecordsExtracted,
		"records_skipped":    summary.RecordsSkipped,
		"summaries_produced": summary.SummariesProduced,
		"duration":           summary.Duration.String(),
	}).Info("Pipeline run succeeded")
}
