package agenda

import (
	"time"

	"github.com/teemow/tabcal/internal/calendar"
)

// EntryRenderState is one visible event on one day, with its precomputed
// time label.
type EntryRenderState struct {
	Event     calendar.Event
	TimeLabel string
}

// DayRenderState is the derived per-day view data for one render pass. It is
// recomputed from scratch on every pass and never mutated afterwards.
type DayRenderState struct {
	// Date is the civil day this state renders.
	Date calendar.CivilDate
	// Key is the Date in YYYY-MM-DD form, usable as a map key or DOM id.
	Key string
	// HasEvents reports whether any event touches this day.
	HasEvents bool
	// Entries are the visible events in bucket order.
	Entries []EntryRenderState
	// Overflow is the number of events collapsed out of view; zero renders
	// no indicator.
	Overflow int
	// OverflowLabel is "+N more" when Overflow is non-zero, else empty.
	OverflowLabel string
}

// Options are the settings-provider inputs to a render pass. The core never
// reads settings storage itself; callers thread these through as plain
// values.
type Options struct {
	// View selects the grid or agenda label policy.
	View View
	// MaxVisible caps the events shown per day; values below 1 use
	// DefaultMaxVisible.
	MaxVisible int
	// ExpandAll disables the per-day cap entirely.
	ExpandAll bool
	// Location is the display timezone. Nil means time.Local.
	Location *time.Location
}

// BuildDays runs one full render pass: bucket the events, then produce one
// DayRenderState per day for span consecutive days starting at today. Days
// without events are included with HasEvents false so a grid renderer can
// lay out empty cells.
func BuildDays(events []calendar.Event, today calendar.CivilDate, span int, opts Options) []DayRenderState {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	buckets := Bucket(events, today, loc)

	days := make([]DayRenderState, 0, span)
	for i := 0; i < span; i++ {
		date := today.AddDays(i)
		bucket := buckets[date]

		state := DayRenderState{
			Date:      date,
			Key:       date.String(),
			HasEvents: len(bucket) > 0,
		}

		visible := SelectVisible(bucket, opts.MaxVisible, opts.ExpandAll)
		for i := range visible.Shown {
			ev := visible.Shown[i]
			state.Entries = append(state.Entries, EntryRenderState{
				Event:     ev,
				TimeLabel: TimeLabel(&ev, date, opts.View, loc),
			})
		}
		state.Overflow = visible.Overflow
		state.OverflowLabel = OverflowLabel(visible.Overflow)

		days = append(days, state)
	}

	return days
}

// Empty reports whether no day in the pass has any events. Renderers use it
// to show the dedicated "no upcoming events" state, which is distinct from
// an error.
func Empty(days []DayRenderState) bool {
	for _, d := range days {
		if d.HasEvents {
			return false
		}
	}
	return true
}
