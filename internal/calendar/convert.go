package calendar

import (
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// FromAPI converts a Google Calendar event into the internal Event model.
// It fails fast with a MalformedEventError when a boundary carries neither
// or both of the date/dateTime variants, or when start and end disagree on
// the variant. The upstream API never produces such events in practice, but
// rendering an invalid time silently is worse than refusing the pass.
func FromAPI(ev *calendar.Event, source string) (Event, error) {
	if ev == nil {
		return Event{}, &MalformedEventError{Field: "event", Reason: "is nil"}
	}

	start, err := boundaryFromAPI(ev.Start, ev.Summary, "start")
	if err != nil {
		return Event{}, err
	}
	end, err := boundaryFromAPI(ev.End, ev.Summary, "end")
	if err != nil {
		return Event{}, err
	}
	if start.Kind != end.Kind {
		return Event{}, &MalformedEventError{
			Summary: ev.Summary,
			Field:   "end",
			Reason:  "does not match the start variant",
		}
	}

	return Event{
		ID:       ev.Id,
		Summary:  ev.Summary,
		Location: ev.Location,
		Start:    start,
		End:      end,
		Source:   source,
	}, nil
}

// FromAPIList converts a slice of Google Calendar events. The first
// malformed event aborts the conversion.
func FromAPIList(items []*calendar.Event, source string) ([]Event, error) {
	events := make([]Event, 0, len(items))
	for _, item := range items {
		ev, err := FromAPI(item, source)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func boundaryFromAPI(edt *calendar.EventDateTime, summary, field string) (EventTime, error) {
	if edt == nil {
		return EventTime{}, &MalformedEventError{Summary: summary, Field: field, Reason: "is missing"}
	}

	switch {
	case edt.DateTime != "" && edt.Date != "":
		return EventTime{}, &MalformedEventError{Summary: summary, Field: field, Reason: "has both date and dateTime"}

	case edt.DateTime != "":
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return EventTime{}, &MalformedEventError{
				Summary: summary,
				Field:   field,
				Reason:  fmt.Sprintf("has invalid dateTime %q", edt.DateTime),
			}
		}
		return Timed(t), nil

	case edt.Date != "":
		d, err := ParseCivilDate(edt.Date)
		if err != nil {
			return EventTime{}, &MalformedEventError{
				Summary: summary,
				Field:   field,
				Reason:  fmt.Sprintf("has invalid date %q", edt.Date),
			}
		}
		return AllDay(d), nil

	default:
		return EventTime{}, &MalformedEventError{Summary: summary, Field: field, Reason: "has neither date nor dateTime"}
	}
}
