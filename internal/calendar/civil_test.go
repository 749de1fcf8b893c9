package calendar

import (
	"testing"
	"time"
)

func TestCivilDate_AddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{"same month", "2024-01-15", 1, "2024-01-16"},
		{"month boundary", "2024-01-31", 1, "2024-02-01"},
		{"year boundary", "2023-12-31", 1, "2024-01-01"},
		{"leap day", "2024-02-28", 1, "2024-02-29"},
		{"backwards", "2024-03-01", -1, "2024-02-29"},
		{"exclusive end adjustment", "2024-01-20", -1, "2024-01-19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseCivilDate(tt.date)
			if err != nil {
				t.Fatalf("ParseCivilDate(%q): %v", tt.date, err)
			}
			if got := d.AddDays(tt.n).String(); got != tt.want {
				t.Errorf("%s + %d days = %s, want %s", tt.date, tt.n, got, tt.want)
			}
		})
	}
}

func TestCivilDate_Ordering(t *testing.T) {
	a, _ := ParseCivilDate("2024-01-15")
	b, _ := ParseCivilDate("2024-01-16")

	if !a.Before(b) {
		t.Error("expected 2024-01-15 before 2024-01-16")
	}
	if b.Before(a) {
		t.Error("expected 2024-01-16 not before 2024-01-15")
	}
	if a.Before(a) {
		t.Error("a date is not before itself")
	}
	if !b.After(a) {
		t.Error("expected 2024-01-16 after 2024-01-15")
	}
}

func TestCivilDate_DaysUntil(t *testing.T) {
	a, _ := ParseCivilDate("2024-01-15")
	b, _ := ParseCivilDate("2024-01-20")

	if got := a.DaysUntil(b); got != 5 {
		t.Errorf("DaysUntil = %d, want 5", got)
	}
	if got := b.DaysUntil(a); got != -5 {
		t.Errorf("reverse DaysUntil = %d, want -5", got)
	}
}

func TestCivilDateOf_UsesWallClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	// 23:30 local on the 15th is already the 16th in UTC; the civil date
	// must follow the wall clock, not the instant.
	instant := time.Date(2024, 1, 15, 23, 30, 0, 0, loc)

	if got := CivilDateOf(instant).String(); got != "2024-01-15" {
		t.Errorf("CivilDateOf = %s, want 2024-01-15", got)
	}
}

func TestParseCivilDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "20240115", "yesterday"} {
		if _, err := ParseCivilDate(s); err == nil {
			t.Errorf("ParseCivilDate(%q): expected error", s)
		}
	}
}
