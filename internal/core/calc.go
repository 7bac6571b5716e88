// Package core holds the record types and the time/pay calculator.
//
// This file implements the wage calculator: a pure conversion from
// (time value, unit, hourly rate) to a display-formatted duration and a
// monetary total. Records store the formatted strings, never the raw
// numbers, so all formatting decisions live here.
package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is a time unit with a fixed conversion factor to hours.
type Unit string

const (
	Seconds Unit = "seconds"
	Minutes Unit = "minutes"
	Hours   Unit = "hours"
	Days    Unit = "days"
)

// DefaultUnit is the unit the calculator starts with and resets to.
const DefaultUnit = Hours

// ErrNoResult signals that one of the calculator inputs was blank or not
// numeric. Callers keep showing the previous result instead of failing.
var ErrNoResult = errors.New("no result: enter a time value and hourly rate")

// ErrUnknownUnit is returned by ParseUnit for unrecognized unit names.
var ErrUnknownUnit = errors.New("unknown time unit")

// hoursPerUnit returns the multiplier converting the unit to hours.
// A day counts as an 8-hour working day.
func (u Unit) hoursPerUnit() float64 {
	switch u {
	case Seconds:
		return 1.0 / 3600.0
	case Minutes:
		return 1.0 / 60.0
	case Days:
		return 8
	default:
		return 1
	}
}

// Label returns the capitalized display label ("Seconds", "Hours", ...).
func (u Unit) Label() string {
	s := string(u)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseUnit maps a unit name to a Unit, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case Seconds:
		return Seconds, nil
	case Minutes:
		return Minutes, nil
	case Hours:
		return Hours, nil
	case Days:
		return Days, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Calculation is the result of one calculator run.
type Calculation struct {
	// Time is the display string, e.g. "2h 30m" or "3 days (24h)".
	Time string `json:"time"`
	// Pay is the formatted total, e.g. "$41.25".
	Pay string `json:"pay"`
	// Hours is the raw computed duration in hours.
	Hours float64 `json:"hours"`
}

// Calculate converts the free-text inputs into a Calculation.
// Blank or non-numeric inputs yield ErrNoResult.
func Calculate(timeValue string, unit Unit, hourlyRate string) (Calculation, error) {
	tv := strings.TrimSpace(timeValue)
	hr := strings.TrimSpace(hourlyRate)
	if tv == "" || hr == "" {
		return Calculation{}, ErrNoResult
	}
	value, err := strconv.ParseFloat(tv, 64)
	if err != nil {
		return Calculation{}, ErrNoResult
	}
	rate, err := strconv.ParseFloat(hr, 64)
	if err != nil {
		return Calculation{}, ErrNoResult
	}

	hours := value * unit.hoursPerUnit()
	pay := hours * rate

	return Calculation{
		Time:  formatTime(tv, value, unit, hours),
		Pay:   fmt.Sprintf("$%.2f", pay),
		Hours: hours,
	}, nil
}

// formatTime renders the duration the way each unit displays it.
func formatTime(raw string, value float64, unit Unit, hours float64) string {
	switch unit {
	case Hours:
		whole := math.Floor(hours)
		minutes := math.Round((hours - whole) * 60)
		return fmt.Sprintf("%dh %dm", int64(whole), int64(minutes))
	case Days:
		plural := ""
		if value != 1 {
			plural = "s"
		}
		return fmt.Sprintf("%s day%s (%sh)", raw, plural, strconv.FormatFloat(hours, 'f', -1, 64))
	default:
		return fmt.Sprintf("%s %s (%.2fh)", raw, strings.ToLower(unit.Label()), hours)
	}
}

// WageDisplay renders the entered hourly rate the way records store it.
func WageDisplay(hourlyRate string) string {
	return "$" + strings.TrimSpace(hourlyRate) + "/hr"
}

// ClipboardText is the two-line result string handed to the clipboard.
func (c Calculation) ClipboardText() string {
	return fmt.Sprintf("Time: %s\nPay: %s", c.Time, c.Pay)
}

// CalcForm is the calculator's input buffer plus its last result.
// Calculate keeps the previous result when the inputs are unusable;
// Reset restores the initial state including the default unit.
type CalcForm struct {
	TimeValue  string
	Unit       Unit
	HourlyRate string
	Result     *Calculation
}

// NewCalcForm returns an empty form with the default unit selected.
func NewCalcForm() CalcForm {
	return CalcForm{Unit: DefaultUnit}
}

// Calculate runs the calculator over the form inputs and stores the result.
// On ErrNoResult the previous result is left in place.
func (f *CalcForm) Calculate() error {
	c, err := Calculate(f.TimeValue, f.Unit, f.HourlyRate)
	if err != nil {
		return err
	}
	f.Result = &c
	return nil
}

// Reset clears all inputs and the result and restores the default unit.
func (f *CalcForm) Reset() {
	*f = NewCalcForm()
}
