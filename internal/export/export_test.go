package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"ore/internal/core"
)

var exportTime = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func sampleWage() []core.WageRecord {
	return []core.WageRecord{
		{ID: "w1", Name: "Shift A", Time: "2h 0m (2.00h)", Wage: "$15.00/hr", Total: "$30.00"},
		{ID: "w2", Name: "Shift B", Time: "1h 30m", Wage: "$20.00/hr", Total: "$30.00"},
	}
}

func sampleManual() []core.ManualTimeRecord {
	return []core.ManualTimeRecord{
		{ID: "m1", Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00", BreakTime: "30", TotalHours: "7.5", Project: "Client A"},
	}
}

func TestGenerateNoData(t *testing.T) {
	if _, err := Generate(nil, nil, CSV, exportTime); !errors.Is(err, ErrNoData) {
		t.Fatalf("Generate on empty collections = %v, want ErrNoData", err)
	}
}

func TestGenerateCSV(t *testing.T) {
	f, err := Generate(sampleWage(), sampleManual(), CSV, exportTime)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if f.Filename != "time-tracking-export-2025-03-15.csv" {
		t.Errorf("Filename = %q", f.Filename)
	}
	if f.MIMEType != "text/csv" {
		t.Errorf("MIMEType = %q", f.MIMEType)
	}

	lines := strings.Split(strings.TrimRight(f.Content, "\n"), "\n")
	// Header plus one row per record.
	if len(lines) != 1+2+1 {
		t.Fatalf("line count = %d, content:\n%s", len(lines), f.Content)
	}
	if lines[0] != "Type,Name/Project,Time/Date,Wage,Total" {
		t.Errorf("header = %q", lines[0])
	}
	for _, line := range lines[1:3] {
		if !strings.HasPrefix(line, "Calculation,") {
			t.Errorf("wage row tagged wrong: %q", line)
		}
	}
	if !strings.HasPrefix(lines[3], "Manual,") {
		t.Errorf("manual row tagged wrong: %q", lines[3])
	}
	if lines[3] != `Manual,"Client A","2025-03-10","N/A","7.5h"` {
		t.Errorf("manual row = %q", lines[3])
	}
}

func TestGenerateCSVEscapesQuotes(t *testing.T) {
	wage := []core.WageRecord{{ID: "w1", Name: `Shift "A", late`, Time: "2h 0m", Wage: "$15.00/hr", Total: "$30.00"}}
	f, err := Generate(wage, nil, CSV, exportTime)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(f.Content, `"Shift ""A"", late"`) {
		t.Errorf("embedded quote not escaped:\n%s", f.Content)
	}
}

func TestGenerateJSON(t *testing.T) {
	wage := []core.WageRecord{{ID: "w1", Name: "Shift A", Time: "2h 0m (2.00h)", Wage: "$15.00/hr", Total: "$30.00"}}
	f, err := Generate(wage, sampleManual(), JSON, exportTime)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if f.Filename != "time-tracking-export-2025-03-15.json" {
		t.Errorf("Filename = %q", f.Filename)
	}
	if f.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q", f.MIMEType)
	}

	var doc struct {
		ExportDate         string                  `json:"exportDate"`
		CalculationRecords []core.WageRecord       `json:"calculationRecords"`
		ManualTimeRecords  []core.ManualTimeRecord `json:"manualTimeRecords"`
		Summary            Summary                 `json:"summary"`
	}
	if err := json.Unmarshal([]byte(f.Content), &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if doc.ExportDate != "2025-03-15T10:30:00Z" {
		t.Errorf("exportDate = %q", doc.ExportDate)
	}
	if len(doc.CalculationRecords) != 1 || doc.CalculationRecords[0] != wage[0] {
		t.Errorf("calculationRecords = %+v", doc.CalculationRecords)
	}
	if doc.Summary.TotalCalculationRecords != 1 || doc.Summary.TotalManualRecords != 1 || doc.Summary.TotalRecords != 2 {
		t.Errorf("summary = %+v", doc.Summary)
	}
	if !strings.Contains(f.Content, "\n  ") {
		t.Error("export should be pretty-printed with two-space indentation")
	}
}

func TestGenerateJSONSummaryTotals(t *testing.T) {
	// summary.totalRecords == N + M for any N and M.
	for _, counts := range [][2]int{{0, 1}, {3, 0}, {2, 4}} {
		var wage []core.WageRecord
		for i := 0; i < counts[0]; i++ {
			wage = append(wage, core.WageRecord{ID: "w", Name: "w"})
		}
		var manual []core.ManualTimeRecord
		for i := 0; i < counts[1]; i++ {
			manual = append(manual, core.ManualTimeRecord{ID: "m", Date: "d"})
		}

		f, err := Generate(wage, manual, JSON, exportTime)
		if err != nil {
			t.Fatalf("Generate(%v): %v", counts, err)
		}
		var doc struct {
			Summary Summary `json:"summary"`
		}
		if err := json.Unmarshal([]byte(f.Content), &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if doc.Summary.TotalRecords != counts[0]+counts[1] {
			t.Errorf("totalRecords = %d, want %d", doc.Summary.TotalRecords, counts[0]+counts[1])
		}
	}
}

func TestGenerateText(t *testing.T) {
	f, err := Generate(sampleWage(), sampleManual(), Text, exportTime)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if f.Filename != "time-tracking-export-2025-03-15.txt" {
		t.Errorf("Filename = %q", f.Filename)
	}
	if f.MIMEType != "text/plain" {
		t.Errorf("MIMEType = %q", f.MIMEType)
	}

	for _, want := range []string{
		"TIME TRACKING EXPORT REPORT",
		"Generated: 2025-03-15",
		"- Calculation Records: 2",
		"- Manual Records: 1",
		"- Total Records: 3",
		"CALCULATION RECORDS:",
		"1. Shift A",
		"2. Shift B",
		"MANUAL TIME RECORDS:",
		"1. Client A",
		"   Break: 30m",
		"   Total Hours: 7.5h",
	} {
		if !strings.Contains(f.Content, want) {
			t.Errorf("report missing %q:\n%s", want, f.Content)
		}
	}
}

func TestGenerateTextOmitsEmptySections(t *testing.T) {
	f, err := Generate(sampleWage(), nil, Text, exportTime)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(f.Content, "MANUAL TIME RECORDS:") {
		t.Error("empty manual section should be omitted")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", CSV, false},
		{"JSON", JSON, false},
		{"text", Text, false},
		{"txt", Text, false},
		{"pdf", Text, false}, // historical UI label for the text report
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) err = %v, want ErrUnknownFormat", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
}
