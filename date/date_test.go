package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() unexpected error = %v", err)
	}
	if d != New(2025, time.July, 1) {
		t.Errorf("Parse() = %s, want 2025-07-01", d)
	}

	if _, err := Parse("first of july"); err == nil {
		t.Error("Parse() expected an error for garbage input")
	}
}

func TestStartOf(t *testing.T) {
	// 2025-08-20 is a Wednesday.
	d := New(2025, time.August, 20)

	tests := []struct {
		period Period
		want   Date
	}{
		{Daily, New(2025, time.August, 20)},
		{Weekly, New(2025, time.August, 18)},
		{Monthly, New(2025, time.August, 1)},
		{Quarterly, New(2025, time.July, 1)},
		{Yearly, New(2025, time.January, 1)},
	}
	for _, tt := range tests {
		if got := d.StartOf(tt.period); got != tt.want {
			t.Errorf("StartOf(%s) = %s, want %s", tt.period, got, tt.want)
		}
	}
}

func TestEndOf(t *testing.T) {
	d := New(2025, time.August, 20)

	tests := []struct {
		period Period
		want   Date
	}{
		{Daily, New(2025, time.August, 20)},
		{Weekly, New(2025, time.August, 24)},
		{Monthly, New(2025, time.August, 31)},
		{Quarterly, New(2025, time.September, 30)},
		{Yearly, New(2025, time.December, 31)},
	}
	for _, tt := range tests {
		if got := d.EndOf(tt.period); got != tt.want {
			t.Errorf("EndOf(%s) = %s, want %s", tt.period, got, tt.want)
		}
	}
}

func TestDayInterval(t *testing.T) {
	d := New(2025, time.February, 28)
	if got := d.End().Sub(d.Start()); got != 24*time.Hour {
		t.Errorf("day interval = %v, want 24h", got)
	}
	// End of the month day rolls into March.
	if FromTime(d.End()) != New(2025, time.March, 1) {
		t.Errorf("End() of feb 28 = %v, want march 1st", d.End())
	}
}
