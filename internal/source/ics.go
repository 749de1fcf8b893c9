package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	ical "github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"github.com/teemow/tabcal/internal/calendar"
)

const (
	icsFetchTimeout = 30 * time.Second

	// maxOccurrences caps recurrence expansion per event so a broken
	// RRULE cannot blow up the agenda.
	maxOccurrences = 1000
)

// ICSSource fetches events from an ICS/iCal feed URL.
type ICSSource struct {
	name     string
	url      string
	username string
	password string
	loc      *time.Location
	client   *http.Client
}

// NewICSSource creates a source for the given feed. Credentials are
// optional; when both are set they are sent as HTTP basic auth. A nil loc
// falls back to time.Local.
func NewICSSource(name, url, username, password string, loc *time.Location) *ICSSource {
	if loc == nil {
		loc = time.Local
	}
	return &ICSSource{
		name:     name,
		url:      url,
		username: username,
		password: password,
		loc:      loc,
		client: &http.Client{
			Timeout: icsFetchTimeout,
		},
	}
}

// Name returns the configured feed name.
func (s *ICSSource) Name() string {
	return s.name
}

// Events fetches the feed and returns events overlapping [from, to),
// with recurring events expanded into concrete occurrences.
func (s *ICSSource) Events(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ICS request: %w", err)
	}
	if s.username != "" && s.password != "" {
		req.SetBasicAuth(s.username, s.password)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ICS feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch ICS feed: status %d", resp.StatusCode)
	}

	return s.parse(resp.Body, from, to)
}

func (s *ICSSource) parse(r io.Reader, from, to time.Time) ([]calendar.Event, error) {
	dec := ical.NewDecoder(r)

	var events []calendar.Event
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode ICS feed: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			parsed, err := s.parseEvent(comp, from, to)
			if err != nil {
				return nil, err
			}
			events = append(events, parsed...)
		}
	}

	return events, nil
}

// parseEvent converts a VEVENT into internal events, expanding recurrence
// within [from, to). Returns nil when the event falls outside the window.
func (s *ICSSource) parseEvent(comp *ical.Component, from, to time.Time) ([]calendar.Event, error) {
	var uid, summary, location string
	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		uid = prop.Value
	}
	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		summary = prop.Value
	}
	if prop := comp.Props.Get(ical.PropLocation); prop != nil {
		location = prop.Value
	}

	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return nil, &calendar.MalformedEventError{
			Summary: summary,
			Field:   "start",
			Reason:  "missing DTSTART",
		}
	}
	allDay := startProp.ValueType() == ical.ValueDate

	start, err := startProp.DateTime(s.loc)
	if err != nil {
		return nil, &calendar.MalformedEventError{
			Summary: summary,
			Field:   "start",
			Reason:  err.Error(),
		}
	}

	end, err := s.parseEnd(comp, summary, start, allDay)
	if err != nil {
		return nil, err
	}
	duration := end.Sub(start)

	set, err := comp.RecurrenceSet(s.loc)
	if err != nil {
		return nil, &calendar.MalformedEventError{
			Summary: summary,
			Field:   "recurrence",
			Reason:  err.Error(),
		}
	}

	if set == nil {
		if !end.After(from) || !start.Before(to) {
			return nil, nil
		}
		return []calendar.Event{s.buildEvent(uid, summary, location, allDay, start, end)}, nil
	}

	return s.expand(set, uid, summary, location, allDay, duration, from, to), nil
}

// parseEnd resolves DTEND, defaulting a missing end to one day for all-day
// events and one hour for timed events.
func (s *ICSSource) parseEnd(comp *ical.Component, summary string, start time.Time, allDay bool) (time.Time, error) {
	prop := comp.Props.Get(ical.PropDateTimeEnd)
	if prop == nil {
		if allDay {
			return start.AddDate(0, 0, 1), nil
		}
		return start.Add(time.Hour), nil
	}

	end, err := prop.DateTime(s.loc)
	if err != nil {
		return time.Time{}, &calendar.MalformedEventError{
			Summary: summary,
			Field:   "end",
			Reason:  err.Error(),
		}
	}
	if end.Before(start) {
		return time.Time{}, &calendar.MalformedEventError{
			Summary: summary,
			Field:   "end",
			Reason:  "end precedes start",
		}
	}
	return end, nil
}

// expand materializes occurrences of a recurring event within [from, to).
// The window is widened backwards by one duration so running occurrences
// that started before the window are kept.
func (s *ICSSource) expand(set *rrule.Set, uid, summary, location string, allDay bool, duration time.Duration, from, to time.Time) []calendar.Event {
	occurrences := set.Between(from.Add(-duration), to, true)
	if len(occurrences) > maxOccurrences {
		occurrences = occurrences[:maxOccurrences]
	}

	var events []calendar.Event
	for _, occ := range occurrences {
		start := occ.In(s.loc)
		end := start.Add(duration)
		if !end.After(from) || !start.Before(to) {
			continue
		}
		id := fmt.Sprintf("%s_%d", uid, occ.Unix())
		events = append(events, s.buildEvent(id, summary, location, allDay, start, end))
	}
	return events
}

func (s *ICSSource) buildEvent(id, summary, location string, allDay bool, start, end time.Time) calendar.Event {
	ev := calendar.Event{
		ID:       id,
		Summary:  summary,
		Location: location,
		Source:   s.name,
	}
	if allDay {
		startDate := calendar.CivilDateOf(start.In(s.loc))
		endDate := calendar.CivilDateOf(end.In(s.loc))
		if !endDate.After(startDate) {
			// DTEND is exclusive; a degenerate range still covers one day.
			endDate = startDate.AddDays(1)
		}
		ev.Start = calendar.AllDay(startDate)
		ev.End = calendar.AllDay(endDate)
	} else {
		ev.Start = calendar.Timed(start.In(s.loc))
		ev.End = calendar.Timed(end.In(s.loc))
	}
	return ev
}
