// Package export serializes the record collections into flat-file
// formats. Generation is a pure function of the snapshot and the export
// time; delivery of the result is a separate capability.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ore/internal/core"
)

// Format selects the output serialization.
type Format string

const (
	CSV Format = "csv"
	JSON Format = "json"
	// Text is the human-readable report. "pdf" parses to this format
	// but the output is plain text.
	Text Format = "text"
)

var (
	// ErrNoData is returned when both collections are empty.
	ErrNoData = errors.New("no records to export")
	// ErrUnknownFormat is returned for formats other than csv/json/text.
	ErrUnknownFormat = errors.New("unknown export format")
)

// ParseFormat maps a format name to a Format. "pdf" is accepted as an
// alias for the text report.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "text", "txt", "pdf":
		return Text, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// File is a generated export ready for delivery.
type File struct {
	Content  string
	Filename string
	MIMEType string
}

// Summary mirrors the counts emitted in the JSON export.
type Summary struct {
	TotalCalculationRecords int `json:"totalCalculationRecords"`
	TotalManualRecords      int `json:"totalManualRecords"`
	TotalRecords            int `json:"totalRecords"`
}

type jsonExport struct {
	ExportDate         string                  `json:"exportDate"`
	CalculationRecords []core.WageRecord       `json:"calculationRecords"`
	ManualTimeRecords  []core.ManualTimeRecord `json:"manualTimeRecords"`
	Summary            Summary                 `json:"summary"`
}

// Generate serializes the snapshot in the requested format. The filename
// carries the export date: time-tracking-export-YYYY-MM-DD.{csv,json,txt}.
func Generate(wage []core.WageRecord, manual []core.ManualTimeRecord, format Format, now time.Time) (File, error) {
	if len(wage) == 0 && len(manual) == 0 {
		return File{}, ErrNoData
	}

	stamp := now.Format("2006-01-02")
	switch format {
	case CSV:
		return File{
			Content:  generateCSV(wage, manual),
			Filename: "time-tracking-export-" + stamp + ".csv",
			MIMEType: "text/csv",
		}, nil
	case JSON:
		content, err := generateJSON(wage, manual, now)
		if err != nil {
			return File{}, fmt.Errorf("encode json export: %w", err)
		}
		return File{
			Content:  content,
			Filename: "time-tracking-export-" + stamp + ".json",
			MIMEType: "application/json",
		}, nil
	case Text:
		return File{
			Content:  generateReport(wage, manual, now),
			Filename: "time-tracking-export-" + stamp + ".txt",
			MIMEType: "text/plain",
		}, nil
	}
	return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func generateCSV(wage []core.WageRecord, manual []core.ManualTimeRecord) string {
	var b strings.Builder
	b.WriteString("Type,Name/Project,Time/Date,Wage,Total\n")
	for _, r := range wage {
		fmt.Fprintf(&b, "Calculation,%s,%s,%s,%s\n",
			quote(r.Name), quote(r.Time), quote(r.Wage), quote(r.Total))
	}
	for _, r := range manual {
		fmt.Fprintf(&b, "Manual,%s,%s,%s,%s\n",
			quote(r.Project), quote(r.Date), quote("N/A"), quote(r.TotalHours+"h"))
	}
	return b.String()
}

// quote wraps a field in double quotes, doubling embedded quotes so that
// values containing quotes or commas stay well-formed.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func generateJSON(wage []core.WageRecord, manual []core.ManualTimeRecord, now time.Time) (string, error) {
	if wage == nil {
		wage = []core.WageRecord{}
	}
	if manual == nil {
		manual = []core.ManualTimeRecord{}
	}
	doc := jsonExport{
		ExportDate:         now.UTC().Format(time.RFC3339),
		CalculationRecords: wage,
		ManualTimeRecords:  manual,
		Summary: Summary{
			TotalCalculationRecords: len(wage),
			TotalManualRecords:      len(manual),
			TotalRecords:            len(wage) + len(manual),
		},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func generateReport(wage []core.WageRecord, manual []core.ManualTimeRecord, now time.Time) string {
	var b strings.Builder
	divider := strings.Repeat("=", 50)

	b.WriteString("TIME TRACKING EXPORT REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02"))
	b.WriteString("SUMMARY:\n")
	fmt.Fprintf(&b, "- Calculation Records: %d\n", len(wage))
	fmt.Fprintf(&b, "- Manual Records: %d\n", len(manual))
	fmt.Fprintf(&b, "- Total Records: %d\n\n", len(wage)+len(manual))

	if len(wage) > 0 {
		b.WriteString("CALCULATION RECORDS:\n")
		b.WriteString(divider + "\n")
		for i, r := range wage {
			fmt.Fprintf(&b, "%d. %s\n", i+1, r.Name)
			fmt.Fprintf(&b, "   Time: %s\n", r.Time)
			fmt.Fprintf(&b, "   Wage: %s\n", r.Wage)
			fmt.Fprintf(&b, "   Total: %s\n\n", r.Total)
		}
	}

	if len(manual) > 0 {
		b.WriteString("MANUAL TIME RECORDS:\n")
		b.WriteString(divider + "\n")
		for i, r := range manual {
			fmt.Fprintf(&b, "%d. %s\n", i+1, r.Project)
			fmt.Fprintf(&b, "   Date: %s\n", r.Date)
			fmt.Fprintf(&b, "   Start: %s\n", r.StartTime)
			fmt.Fprintf(&b, "   End: %s\n", r.EndTime)
			fmt.Fprintf(&b, "   Break: %sm\n", r.BreakTime)
			fmt.Fprintf(&b, "   Total Hours: %sh\n\n", r.TotalHours)
		}
	}

	return b.String()
}
