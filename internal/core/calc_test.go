package core

import (
	"errors"
	"strconv"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		timeValue string
		unit      Unit
		rate      string
		wantTime  string
		wantPay   string
	}{
		{
			name:      "two hours at ten dollars",
			timeValue: "2",
			unit:      Hours,
			rate:      "10",
			wantTime:  "2h 0m",
			wantPay:   "$20.00",
		},
		{
			name:      "fractional hours split into minutes",
			timeValue: "2.5",
			unit:      Hours,
			rate:      "16.50",
			wantTime:  "2h 30m",
			wantPay:   "$41.25",
		},
		{
			name:      "days use the eight hour workday",
			timeValue: "2",
			unit:      Days,
			rate:      "10",
			wantTime:  "2 days (16h)",
			wantPay:   "$160.00",
		},
		{
			name:      "single day stays singular",
			timeValue: "1",
			unit:      Days,
			rate:      "10",
			wantTime:  "1 day (8h)",
			wantPay:   "$80.00",
		},
		{
			name:      "minutes show two decimal hours",
			timeValue: "90",
			unit:      Minutes,
			rate:      "10",
			wantTime:  "90 minutes (1.50h)",
			wantPay:   "$15.00",
		},
		{
			name:      "seconds show two decimal hours",
			timeValue: "1800",
			unit:      Seconds,
			rate:      "12",
			wantTime:  "1800 seconds (0.50h)",
			wantPay:   "$6.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.timeValue, tt.unit, tt.rate)
			if err != nil {
				t.Fatalf("Calculate returned error: %v", err)
			}
			if got.Time != tt.wantTime {
				t.Errorf("Time = %q, want %q", got.Time, tt.wantTime)
			}
			if got.Pay != tt.wantPay {
				t.Errorf("Pay = %q, want %q", got.Pay, tt.wantPay)
			}
		})
	}
}

func TestCalculateNoResult(t *testing.T) {
	tests := []struct {
		name      string
		timeValue string
		rate      string
	}{
		{"blank time value", "", "10"},
		{"blank rate", "2", ""},
		{"non numeric time value", "abc", "10"},
		{"non numeric rate", "2", "ten"},
		{"both blank", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.timeValue, Hours, tt.rate)
			if !errors.Is(err, ErrNoResult) {
				t.Fatalf("expected ErrNoResult, got %v", err)
			}
		})
	}
}

func TestCalculatePayProperty(t *testing.T) {
	// pay == value * multiplier * rate, rounded to two decimals.
	units := map[Unit]float64{
		Seconds: 1.0 / 3600.0,
		Minutes: 1.0 / 60.0,
		Hours:   1,
		Days:    8,
	}
	values := []float64{0.25, 1, 1.5, 7, 40}
	rates := []float64{9.5, 15, 16.5, 22.75}

	for unit, mult := range units {
		for _, v := range values {
			for _, r := range rates {
				got, err := Calculate(
					strconv.FormatFloat(v, 'f', -1, 64),
					unit,
					strconv.FormatFloat(r, 'f', -1, 64),
				)
				if err != nil {
					t.Fatalf("Calculate(%v %s at %v): %v", v, unit, r, err)
				}
				want := "$" + strconv.FormatFloat(v*mult*r, 'f', 2, 64)
				if got.Pay != want {
					t.Errorf("Calculate(%v %s at %v).Pay = %q, want %q", v, unit, r, got.Pay, want)
				}
			}
		}
	}
}

func TestCalcFormKeepsPriorResult(t *testing.T) {
	f := NewCalcForm()
	f.TimeValue = "2"
	f.HourlyRate = "10"
	if err := f.Calculate(); err != nil {
		t.Fatalf("first calculation failed: %v", err)
	}
	prior := f.Result

	f.TimeValue = "not a number"
	if err := f.Calculate(); !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
	if f.Result != prior {
		t.Error("failed calculation should keep the previous result")
	}
}

func TestCalcFormReset(t *testing.T) {
	f := NewCalcForm()
	f.TimeValue = "3"
	f.Unit = Days
	f.HourlyRate = "20"
	if err := f.Calculate(); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	f.Reset()

	if f.TimeValue != "" || f.HourlyRate != "" {
		t.Error("Reset should clear both inputs")
	}
	if f.Result != nil {
		t.Error("Reset should clear the result")
	}
	if f.Unit != Hours {
		t.Errorf("Reset should restore the default unit, got %q", f.Unit)
	}
}

func TestParseUnit(t *testing.T) {
	for _, s := range []string{"hours", "Hours", " HOURS "} {
		u, err := ParseUnit(s)
		if err != nil || u != Hours {
			t.Errorf("ParseUnit(%q) = %v, %v", s, u, err)
		}
	}
	if _, err := ParseUnit("fortnights"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestClipboardText(t *testing.T) {
	c := Calculation{Time: "2h 0m", Pay: "$20.00"}
	want := "Time: 2h 0m\nPay: $20.00"
	if got := c.ClipboardText(); got != want {
		t.Errorf("ClipboardText = %q, want %q", got, want)
	}
}

func TestWageDisplay(t *testing.T) {
	if got := WageDisplay(" 16.50 "); got != "$16.50/hr" {
		t.Errorf("WageDisplay = %q", got)
	}
}
