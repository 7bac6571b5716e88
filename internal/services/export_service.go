package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ore/internal/amqp"
	"ore/internal/export"
	"ore/internal/store"
)

// ExportService orchestrates export generation, delivery, and the
// optional completed-event publish.
type ExportService struct {
	store      *store.Store
	delivery   export.Delivery
	amqpClient *amqp.Client
	delay      time.Duration
	now        func() time.Time
}

// NewExportService wires the service. amqpClient may be nil; delay is an
// artificial pause before delivery (zero to disable); now may be nil for
// time.Now.
func NewExportService(st *store.Store, delivery export.Delivery, amqpClient *amqp.Client, delay time.Duration, now func() time.Time) *ExportService {
	if now == nil {
		now = time.Now
	}
	return &ExportService{
		store:      st,
		delivery:   delivery,
		amqpClient: amqpClient,
		delay:      delay,
		now:        now,
	}
}

// Result describes a completed export.
type Result struct {
	File    export.File
	Note    string
	Summary export.Summary
}

// Export snapshots the store, generates the file, delivers it, and
// publishes the completed event. Delivery failures surface as errors;
// a failed event publish is logged and does not fail the export.
func (s *ExportService) Export(ctx context.Context, format export.Format) (Result, error) {
	wage, manual := s.store.Snapshot()

	file, err := export.Generate(wage, manual, format, s.now())
	if err != nil {
		return Result{}, err
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	note, err := s.delivery.Deliver(ctx, file)
	if err != nil {
		slog.ErrorContext(ctx, "Export delivery failed",
			"error", err,
			"format", string(format),
			"filename", file.Filename)
		return Result{}, fmt.Errorf("deliver export: %w", err)
	}

	if s.amqpClient != nil {
		msg := amqp.NewExportCompletedMessage(string(format), file.Filename, len(wage), len(manual))
		if err := s.amqpClient.PublishExportCompleted(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "Failed to publish export completed message",
				"error", err,
				"filename", file.Filename)
			// Export already succeeded locally.
		}
	}

	slog.InfoContext(ctx, "Export completed",
		"format", string(format),
		"filename", file.Filename,
		"wage_records", len(wage),
		"manual_records", len(manual))

	return Result{
		File: file,
		Note: note,
		Summary: export.Summary{
			TotalCalculationRecords: len(wage),
			TotalManualRecords:      len(manual),
			TotalRecords:            len(wage) + len(manual),
		},
	}, nil
}

// Close releases the AMQP connection if one was configured.
func (s *ExportService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp client: %w", err)
		}
	}
	return nil
}
