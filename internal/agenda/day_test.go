package agenda

import (
	"fmt"
	"testing"
	"time"

	"github.com/teemow/tabcal/internal/calendar"
)

// makeEvents builds n half-hour events on 2024-01-15, ten minutes apart.
func makeEvents(t *testing.T, n int) []calendar.Event {
	t.Helper()
	events := make([]calendar.Event, 0, n)
	for i := 0; i < n; i++ {
		start := time.Date(2024, 1, 15, 9, 10*i, 0, 0, time.UTC)
		events = append(events, calendar.Event{
			ID:      fmt.Sprintf("ev-%d", i),
			Summary: fmt.Sprintf("Event %d", i),
			Start:   calendar.Timed(start),
			End:     calendar.Timed(start.Add(30 * time.Minute)),
		})
	}
	return events
}

func TestBuildDays_SpanAndEmptyDays(t *testing.T) {
	today := day(t, "2024-01-15")
	events := []calendar.Event{
		timed(t, "Standup", "2024-01-15T10:00:00Z", "2024-01-15T10:30:00Z"),
		allDay(t, "Holiday", "2024-01-19", "2024-01-20"),
	}

	days := BuildDays(events, today, 7, Options{Location: time.UTC})

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Key != "2024-01-15" || days[6].Key != "2024-01-21" {
		t.Errorf("day range = %s..%s, want 2024-01-15..2024-01-21", days[0].Key, days[6].Key)
	}
	if !days[0].HasEvents {
		t.Error("expected events on 2024-01-15")
	}
	if days[1].HasEvents {
		t.Error("expected no events on 2024-01-16")
	}
	if !days[4].HasEvents {
		t.Error("expected events on 2024-01-19")
	}
}

func TestBuildDays_OverflowFiveEvents(t *testing.T) {
	today := day(t, "2024-01-15")
	events := makeEvents(t, 5)

	days := BuildDays(events, today, 1, Options{MaxVisible: 2, Location: time.UTC})

	d := days[0]
	if len(d.Entries) != 2 {
		t.Errorf("shown = %d, want 2", len(d.Entries))
	}
	if d.Overflow != 3 {
		t.Errorf("overflow = %d, want 3", d.Overflow)
	}
	if d.OverflowLabel != "+3 more" {
		t.Errorf("overflow label = %q, want %q", d.OverflowLabel, "+3 more")
	}
}

func TestBuildDays_ExpandAll(t *testing.T) {
	today := day(t, "2024-01-15")
	events := makeEvents(t, 5)

	days := BuildDays(events, today, 1, Options{MaxVisible: 2, ExpandAll: true, Location: time.UTC})

	d := days[0]
	if len(d.Entries) != 5 {
		t.Errorf("shown = %d, want 5", len(d.Entries))
	}
	if d.Overflow != 0 || d.OverflowLabel != "" {
		t.Errorf("expected no overflow, got %d %q", d.Overflow, d.OverflowLabel)
	}
}

func TestBuildDays_EntryLabels(t *testing.T) {
	today := day(t, "2024-01-15")
	events := []calendar.Event{
		timed(t, "Standup", "2024-01-15T10:00:00Z", "2024-01-15T10:30:00Z"),
	}

	days := BuildDays(events, today, 1, Options{Location: time.UTC})

	if len(days[0].Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(days[0].Entries))
	}
	if got := days[0].Entries[0].TimeLabel; got != "10:00 AM - 10:30 AM" {
		t.Errorf("label = %q, want %q", got, "10:00 AM - 10:30 AM")
	}
}

func TestEmpty(t *testing.T) {
	today := day(t, "2024-01-15")

	if !Empty(BuildDays(nil, today, 7, Options{Location: time.UTC})) {
		t.Error("expected empty pass for no events")
	}

	// Fully past input also yields the empty state, not an error.
	past := []calendar.Event{timed(t, "Old", "2024-01-10T09:00:00Z", "2024-01-10T10:00:00Z")}
	if !Empty(BuildDays(past, today, 7, Options{Location: time.UTC})) {
		t.Error("expected empty pass for fully past events")
	}

	some := []calendar.Event{timed(t, "Standup", "2024-01-15T10:00:00Z", "2024-01-15T10:30:00Z")}
	if Empty(BuildDays(some, today, 7, Options{Location: time.UTC})) {
		t.Error("expected non-empty pass")
	}
}
