package core

import (
	"errors"
	"strings"
)

// DefaultProject is assigned to manual records saved without a project label.
const DefaultProject = "Other"

type (
	// WageRecord is one computed-pay entry produced by the calculator.
	// All fields besides ID are display-formatted strings, stored verbatim.
	WageRecord struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Time  string `json:"time"`
		Wage  string `json:"wage"`
		Total string `json:"total"`
	}

	// ManualTimeRecord is one manually entered shift.
	ManualTimeRecord struct {
		ID         string `json:"id"`
		Date       string `json:"date"`
		StartTime  string `json:"startTime"`
		EndTime    string `json:"endTime"`
		BreakTime  string `json:"breakTime"`
		TotalHours string `json:"totalHours"`
		Project    string `json:"project"`
	}

	// WagePatch carries the fields of a partial wage-record update.
	// Nil fields are left untouched on the target record.
	WagePatch struct {
		Name  *string
		Time  *string
		Wage  *string
		Total *string
	}

	// ManualPatch carries the fields of a partial manual-record update.
	ManualPatch struct {
		Date       *string
		StartTime  *string
		EndTime    *string
		BreakTime  *string
		TotalHours *string
		Project    *string
	}
)

var (
	ErrEmptyName    = errors.New("record name is required")
	ErrMissingShift = errors.New("date, start time, and end time are required")
	ErrEmptyID      = errors.New("record id is required")
)

func (r WageRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (r ManualTimeRecord) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(r.Date) == "" ||
		strings.TrimSpace(r.StartTime) == "" ||
		strings.TrimSpace(r.EndTime) == "" {
		return ErrMissingShift
	}
	return nil
}

// Apply merges the patch into the record, leaving nil fields untouched.
func (p WagePatch) Apply(r *WageRecord) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Wage != nil {
		r.Wage = *p.Wage
	}
	if p.Total != nil {
		r.Total = *p.Total
	}
}

// Apply merges the patch into the record, leaving nil fields untouched.
func (p ManualPatch) Apply(r *ManualTimeRecord) {
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.StartTime != nil {
		r.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		r.EndTime = *p.EndTime
	}
	if p.BreakTime != nil {
		r.BreakTime = *p.BreakTime
	}
	if p.TotalHours != nil {
		r.TotalHours = *p.TotalHours
	}
	if p.Project != nil {
		r.Project = *p.Project
	}
}
