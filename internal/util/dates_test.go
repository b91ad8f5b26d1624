package util

import (
	"testing"
	"time"
)

func TestCivilDateKeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC-10", -10*3600)
	late := time.Date(2025, 6, 1, 23, 30, 0, 0, loc)
	if got := FormatDate(late); got != "2025-06-01" {
		t.Fatalf("FormatDate = %q, want 2025-06-01", got)
	}
	early := time.Date(2025, 6, 1, 0, 15, 0, 0, time.FixedZone("UTC+14", 14*3600))
	if got := FormatDate(early); got != "2025-06-01" {
		t.Fatalf("FormatDate = %q, want 2025-06-01", got)
	}
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  string
	}{
		{"2025-06-01", -125, "2025-01-27"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2025-03-10", -7, "2025-03-03"},
		{"2025-12-31", 1, "2026-01-01"},
	}
	for _, tt := range tests {
		start, err := ParseDate(tt.start)
		if err != nil {
			t.Fatalf("ParseDate(%q) failed: %v", tt.start, err)
		}
		if got := FormatDate(AddDays(start, tt.n)); got != tt.want {
			t.Fatalf("AddDays(%s, %d) = %s, want %s", tt.start, tt.n, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a, _ := ParseDate("2025-01-27")
	b, _ := ParseDate("2025-06-01")
	if got := DaysBetween(a, b); got != 125 {
		t.Fatalf("DaysBetween = %d, want 125", got)
	}
	if got := DaysBetween(b, a); got != -125 {
		t.Fatalf("DaysBetween reversed = %d, want -125", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("06/01/2025"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}
