package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ore/internal/core"
	"ore/internal/export"
	"ore/internal/store"
)

type captureDelivery struct {
	file export.File
	err  error
}

func (d *captureDelivery) Deliver(_ context.Context, f export.File) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.file = f
	return "captured", nil
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
}

func seededStore() *store.Store {
	st := store.New()
	st.AddWage(core.WageRecord{ID: "w1", Name: "Shift A", Time: "2h 0m", Wage: "$15.00/hr", Total: "$30.00"})
	st.AddManual(core.ManualTimeRecord{ID: "m1", Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00", Project: "Client A"})
	return st
}

func TestExportDeliversGeneratedFile(t *testing.T) {
	delivery := &captureDelivery{}
	svc := NewExportService(seededStore(), delivery, nil, 0, fixedNow)

	result, err := svc.Export(context.Background(), export.CSV)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if result.File.Filename != "time-tracking-export-2025-03-15.csv" {
		t.Errorf("filename = %q", result.File.Filename)
	}
	if result.Note != "captured" {
		t.Errorf("note = %q", result.Note)
	}
	if result.Summary.TotalRecords != 2 {
		t.Errorf("summary = %+v", result.Summary)
	}
	if delivery.file.Content == "" {
		t.Error("delivery did not receive the generated content")
	}
}

func TestExportEmptyStore(t *testing.T) {
	svc := NewExportService(store.New(), &captureDelivery{}, nil, 0, fixedNow)
	if _, err := svc.Export(context.Background(), export.JSON); !errors.Is(err, export.ErrNoData) {
		t.Fatalf("Export = %v, want ErrNoData", err)
	}
}

func TestExportDeliveryFailure(t *testing.T) {
	delivery := &captureDelivery{err: errors.New("disk full")}
	svc := NewExportService(seededStore(), delivery, nil, 0, fixedNow)

	_, err := svc.Export(context.Background(), export.Text)
	if err == nil || !errors.Is(err, delivery.err) {
		t.Fatalf("Export = %v, want wrapped delivery error", err)
	}
}

func TestExportDelayRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewExportService(seededStore(), &captureDelivery{}, nil, time.Minute, fixedNow)
	if _, err := svc.Export(ctx, export.CSV); !errors.Is(err, context.Canceled) {
		t.Fatalf("Export = %v, want context.Canceled", err)
	}
}
