package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/teemow/tabcal/internal/calendar"
	"github.com/teemow/tabcal/internal/settings"
)

func renderPage(t *testing.T, data PageData) string {
	t.Helper()
	r, err := NewHTMLRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, data); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestHTMLRenderer_Grid(t *testing.T) {
	today := calendar.CivilDate{Year: 2026, Month: time.April, Day: 6}
	events := []calendar.Event{
		{
			ID:      "a",
			Summary: "Design review",
			Start:   calendar.Timed(time.Date(2026, 4, 7, 13, 0, 0, 0, time.UTC)),
			End:     calendar.Timed(time.Date(2026, 4, 7, 14, 0, 0, 0, time.UTC)),
		},
	}

	out := renderPage(t, PageData{
		Days:        buildDays(t, events, today, 7),
		Today:       today,
		Settings:    settings.Default(),
		SourceName:  "sample",
		GeneratedAt: time.Date(2026, 4, 6, 8, 0, 0, 0, time.UTC),
	})

	if !strings.Contains(out, `id="d-2026-04-07"`) {
		t.Error("missing day cell for event day")
	}
	if !strings.Contains(out, "Design review") {
		t.Error("missing event summary")
	}
	if !strings.Contains(out, `class="day today"`) {
		t.Error("today cell not highlighted")
	}
	if !strings.Contains(out, `class="grid"`) {
		t.Error("grid layout not selected")
	}
	// All seven days render in grid mode, events or not.
	for i := 6; i <= 12; i++ {
		key := calendar.CivilDate{Year: 2026, Month: time.April, Day: i}.String()
		if !strings.Contains(out, "d-"+key) {
			t.Errorf("missing grid cell for %s", key)
		}
	}
}

func TestHTMLRenderer_AgendaSkipsEmptyDays(t *testing.T) {
	today := calendar.CivilDate{Year: 2026, Month: time.April, Day: 6}
	events := []calendar.Event{
		{
			ID:      "a",
			Summary: "Design review",
			Start:   calendar.Timed(time.Date(2026, 4, 7, 13, 0, 0, 0, time.UTC)),
			End:     calendar.Timed(time.Date(2026, 4, 7, 14, 0, 0, 0, time.UTC)),
		},
	}

	s := settings.Default()
	s.ListView = true

	out := renderPage(t, PageData{
		Days:     buildDays(t, events, today, 7),
		Today:    today,
		Settings: s,
	})

	if !strings.Contains(out, "d-2026-04-07") {
		t.Error("missing day with events")
	}
	if strings.Contains(out, "d-2026-04-08") {
		t.Error("empty day rendered in agenda mode")
	}
}

func TestHTMLRenderer_EmptyState(t *testing.T) {
	today := calendar.CivilDate{Year: 2026, Month: time.April, Day: 6}
	out := renderPage(t, PageData{
		Days:     buildDays(t, nil, today, 7),
		Today:    today,
		Empty:    true,
		Settings: settings.Default(),
	})

	if !strings.Contains(out, "No upcoming events") {
		t.Error("missing empty state message")
	}
	if strings.Contains(out, `class="grid"`) {
		t.Error("day layout rendered in empty state")
	}
}

func TestHTMLRenderer_ErrorState(t *testing.T) {
	today := calendar.CivilDate{Year: 2026, Month: time.April, Day: 6}
	out := renderPage(t, PageData{
		Days:         buildDays(t, nil, today, 7),
		Today:        today,
		ErrorMessage: "calendar fetch failed",
		Settings:     settings.Default(),
	})

	if !strings.Contains(out, "calendar fetch failed") {
		t.Error("missing error message")
	}
	// The error state wins over the empty layout.
	if strings.Contains(out, "No upcoming events") {
		t.Error("empty state rendered alongside error")
	}
}

func TestHTMLRenderer_EscapesSummary(t *testing.T) {
	today := calendar.CivilDate{Year: 2026, Month: time.April, Day: 6}
	events := []calendar.Event{
		{
			ID:      "xss",
			Summary: `<script>alert("x")</script>`,
			Start:   calendar.Timed(time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)),
			End:     calendar.Timed(time.Date(2026, 4, 6, 10, 0, 0, 0, time.UTC)),
		},
	}

	out := renderPage(t, PageData{
		Days:     buildDays(t, events, today, 7),
		Today:    today,
		Settings: settings.Default(),
	})

	if strings.Contains(out, "<script>alert") {
		t.Error("event summary not escaped")
	}
}

func TestHTMLRenderer_SettingsForm(t *testing.T) {
	today := calendar.CivilDate{Year: 2026, Month: time.April, Day: 6}
	s := settings.Default()
	s.DaySpan = 14

	out := renderPage(t, PageData{
		Days:     buildDays(t, nil, today, 7),
		Today:    today,
		Empty:    true,
		Settings: s,
	})

	if !strings.Contains(out, `<option value="14" selected>`) {
		t.Error("configured day span not selected in form")
	}
	for _, span := range settings.DaySpans() {
		if !strings.Contains(out, `<option value="`+strconv.Itoa(span)+`"`) {
			t.Errorf("day span %d missing from form", span)
		}
	}
}
