package agenda

import (
	"fmt"
	"time"

	"github.com/teemow/tabcal/internal/calendar"
)

// View selects the label policy for one of the two renderers. The date math
// is identical in both; only the all-day labels for multi-day events differ.
type View int

const (
	// ViewGrid is the compact per-day cell view. All-day events always
	// label as "All day".
	ViewGrid View = iota
	// ViewAgenda is the list view. The first and last day of a multi-day
	// all-day event get "All day (starts)" / "All day (ends)".
	ViewAgenda
)

const (
	labelAllDay       = "All day"
	labelAllDayStarts = "All day (starts)"
	labelAllDayEnds   = "All day (ends)"

	// timeLayout renders local short times like "10:00 AM".
	timeLayout = "3:04 PM"
)

// DefaultMaxVisible is the number of events shown per day before the rest
// collapse into an overflow count.
const DefaultMaxVisible = 2

// TimeLabel returns the display time string for ev on the given day. The
// label depends on whether day is the first and/or last day of the event's
// span:
//
//	timed, first and last:  "10:00 AM - 11:00 AM"
//	timed, first only:      "10:00 AM - ..."
//	timed, last only:       "... - 11:00 AM"
//	timed, neither:         "All day"
//
// A pass-through day of a multi-day timed event deliberately has no
// partial-day label. All-day events label per the View policy.
func TimeLabel(ev *calendar.Event, day calendar.CivilDate, view View, loc *time.Location) string {
	isFirst := day == ev.StartDay(loc)
	isLast := day == ev.EndDay(loc)

	if ev.AllDay() {
		if view == ViewAgenda && !(isFirst && isLast) {
			switch {
			case isFirst:
				return labelAllDayStarts
			case isLast:
				return labelAllDayEnds
			}
		}
		return labelAllDay
	}

	start := ev.Start.Instant.In(loc).Format(timeLayout)
	end := ev.End.Instant.In(loc).Format(timeLayout)

	switch {
	case isFirst && isLast:
		return start + " - " + end
	case isFirst:
		return start + " - ..."
	case isLast:
		return "... - " + end
	default:
		return labelAllDay
	}
}

// Visible is the result of the per-day overflow policy.
type Visible struct {
	Shown    []calendar.Event
	Overflow int
}

// SelectVisible decides which of a day's (already sorted) events are shown.
// With expandAll set, everything is shown. Otherwise the first maxVisible
// events are shown and the rest counted as overflow; maxVisible values
// below 1 fall back to DefaultMaxVisible.
func SelectVisible(events []calendar.Event, maxVisible int, expandAll bool) Visible {
	if expandAll {
		return Visible{Shown: events}
	}
	if maxVisible < 1 {
		maxVisible = DefaultMaxVisible
	}
	if len(events) <= maxVisible {
		return Visible{Shown: events}
	}
	return Visible{Shown: events[:maxVisible], Overflow: len(events) - maxVisible}
}

// OverflowLabel renders the collapsed-events indicator. A zero count has no
// indicator and returns the empty string.
func OverflowLabel(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", n)
}
