package render

import (
	"strings"
	"testing"
	"time"

	"github.com/teemow/tabcal/internal/agenda"
	"github.com/teemow/tabcal/internal/calendar"
)

func buildDays(t *testing.T, events []calendar.Event, today calendar.CivilDate, span int) []agenda.DayRenderState {
	t.Helper()
	return agenda.BuildDays(events, today, span, agenda.Options{
		View:     agenda.ViewAgenda,
		Location: time.UTC,
	})
}

func TestText_Empty(t *testing.T) {
	today := calendar.CivilDate{Year: 2026, Month: time.April, Day: 6}
	days := buildDays(t, nil, today, 7)

	out := Text(days, today)
	if out != "No upcoming events\n" {
		t.Errorf("unexpected empty output %q", out)
	}
}

func TestText_Basic(t *testing.T) {
	today := calendar.CivilDate{Year: 2026, Month: time.April, Day: 6}
	events := []calendar.Event{
		{
			ID:       "a",
			Summary:  "Standup",
			Location: "Room 1",
			Start:    calendar.Timed(time.Date(2026, 4, 6, 9, 30, 0, 0, time.UTC)),
			End:      calendar.Timed(time.Date(2026, 4, 6, 9, 45, 0, 0, time.UTC)),
		},
		{
			ID:      "b",
			Summary: "Holiday",
			Start:   calendar.AllDay(calendar.CivilDate{Year: 2026, Month: time.April, Day: 8}),
			End:     calendar.AllDay(calendar.CivilDate{Year: 2026, Month: time.April, Day: 9}),
		},
	}

	out := Text(buildDays(t, events, today, 7), today)

	if !strings.Contains(out, "Today · Mon, Apr 6") {
		t.Errorf("missing today header in %q", out)
	}
	if !strings.Contains(out, "Wed, Apr 8") {
		t.Errorf("missing future day header in %q", out)
	}
	if !strings.Contains(out, "Standup @ Room 1") {
		t.Errorf("missing timed event line in %q", out)
	}
	if !strings.Contains(out, "9:30 AM - 9:45 AM") {
		t.Errorf("missing time label in %q", out)
	}
	if !strings.Contains(out, "All day") {
		t.Errorf("missing all-day label in %q", out)
	}
	// Empty days between events should not produce headers.
	if strings.Contains(out, "Tue, Apr 7") {
		t.Errorf("empty day rendered in %q", out)
	}
}

func TestText_Overflow(t *testing.T) {
	today := calendar.CivilDate{Year: 2026, Month: time.April, Day: 6}
	var events []calendar.Event
	for _, h := range []int{9, 10, 11, 12} {
		events = append(events, calendar.Event{
			ID:      string(rune('a' + h)),
			Summary: "Meeting",
			Start:   calendar.Timed(time.Date(2026, 4, 6, h, 0, 0, 0, time.UTC)),
			End:     calendar.Timed(time.Date(2026, 4, 6, h, 30, 0, 0, time.UTC)),
		})
	}

	out := Text(buildDays(t, events, today, 7), today)
	if !strings.Contains(out, "+2 more") {
		t.Errorf("missing overflow label in %q", out)
	}
}
