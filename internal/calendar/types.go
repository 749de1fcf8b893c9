package calendar

import (
	"time"
)

// EventTimeKind discriminates the two wire representations of an event
// boundary: a timed instant or an all-day civil date.
type EventTimeKind int

const (
	// KindTimed indicates the boundary carries a dateTime instant.
	KindTimed EventTimeKind = iota
	// KindAllDay indicates the boundary carries a civil date only.
	KindAllDay
)

// EventTime is one boundary (start or end) of an event. It is a closed
// two-variant union: for KindTimed, Instant is meaningful; for KindAllDay,
// Date is meaningful. Construct values through Timed or AllDay so the
// invariant holds.
type EventTime struct {
	Kind    EventTimeKind
	Instant time.Time // valid when Kind == KindTimed
	Date    CivilDate // valid when Kind == KindAllDay
}

// Timed returns an EventTime for a timed instant.
func Timed(t time.Time) EventTime {
	return EventTime{Kind: KindTimed, Instant: t}
}

// AllDay returns an EventTime for an all-day civil date.
func AllDay(d CivilDate) EventTime {
	return EventTime{Kind: KindAllDay, Date: d}
}

// Local returns the boundary as a local wall-clock time. All-day dates map
// to local midnight.
func (et EventTime) Local(loc *time.Location) time.Time {
	if et.Kind == KindAllDay {
		return et.Date.Midnight(loc)
	}
	return et.Instant.In(loc)
}

// Event is a single calendar event as consumed by the agenda core. Events
// are immutable inputs; the core never mutates them.
type Event struct {
	// ID is the provider's event identifier, used for stable ordering ties
	// and HTML anchors. May be empty for sample events.
	ID string

	// Summary is the display title. Not validated for emptiness.
	Summary string

	// Location is an optional free-form location string.
	Location string

	// Start and End are the event boundaries. Both sides always share the
	// same kind: Google Calendar never mixes a timed start with an all-day
	// end, and FromAPI rejects events that do.
	Start EventTime
	End   EventTime

	// Source is the name of the event source this event came from.
	Source string
}

// AllDay reports whether the event uses all-day (civil date) boundaries.
func (e *Event) AllDay() bool {
	return e.Start.Kind == KindAllDay
}

// StartDay returns the civil day, in loc, on which the event starts.
func (e *Event) StartDay(loc *time.Location) CivilDate {
	if e.Start.Kind == KindAllDay {
		return e.Start.Date
	}
	return CivilDateOf(e.Start.Instant.In(loc))
}

// EndDay returns the last civil day, in loc, that the event touches. For
// all-day events the wire end date is exclusive per the common calendar-API
// convention, so one day is subtracted here. Some providers emit an end date
// equal to the start date for single-day events; the result is clamped so
// the event still covers its start day.
func (e *Event) EndDay(loc *time.Location) CivilDate {
	if e.End.Kind == KindAllDay {
		d := e.End.Date.AddDays(-1)
		if d.Before(e.Start.Date) {
			return e.Start.Date
		}
		return d
	}
	return CivilDateOf(e.End.Instant.In(loc))
}

// EffectiveStart returns the instant used for intra-day ordering: the timed
// start, or local midnight of the all-day start date.
func (e *Event) EffectiveStart(loc *time.Location) time.Time {
	return e.Start.Local(loc)
}
