package source

import (
	"context"
	"time"

	"github.com/teemow/tabcal/internal/calendar"
)

// SampleSource generates a deterministic set of events relative to the
// start of the requested window. It needs no credentials and always
// produces the same shape of week, which makes it useful for demos and
// for developing the page renderer.
type SampleSource struct {
	loc *time.Location
}

// NewSampleSource creates a sample source. A nil loc falls back to
// time.Local.
func NewSampleSource(loc *time.Location) *SampleSource {
	if loc == nil {
		loc = time.Local
	}
	return &SampleSource{loc: loc}
}

// Name returns the provider name for logs and metrics.
func (s *SampleSource) Name() string {
	return "sample"
}

// Events generates events for [from, to). Day 0 is the civil date of from
// and carries enough events to exercise the overflow label.
func (s *SampleSource) Events(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	day0 := calendar.CivilDateOf(from.In(s.loc))

	timed := func(id, summary string, dayOffset, hour, min, durMin int) calendar.Event {
		start := day0.AddDays(dayOffset).Midnight(s.loc).Add(
			time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
		return calendar.Event{
			ID:      id,
			Summary: summary,
			Start:   calendar.Timed(start),
			End:     calendar.Timed(start.Add(time.Duration(durMin) * time.Minute)),
			Source:  s.Name(),
		}
	}
	allDay := func(id, summary string, dayOffset, days int) calendar.Event {
		start := day0.AddDays(dayOffset)
		return calendar.Event{
			ID:      id,
			Summary: summary,
			Start:   calendar.AllDay(start),
			End:     calendar.AllDay(start.AddDays(days)),
			Source:  s.Name(),
		}
	}

	candidates := []calendar.Event{
		timed("sample-standup-0", "Daily standup", 0, 9, 30, 15),
		timed("sample-1on1", "1:1 with Dana", 0, 11, 0, 30),
		timed("sample-lunch", "Team lunch", 0, 12, 30, 60),
		timed("sample-review", "Design review", 0, 15, 0, 45),
		timed("sample-standup-1", "Daily standup", 1, 9, 30, 15),
		timed("sample-planning", "Sprint planning", 1, 13, 0, 90),
		allDay("sample-freeze", "Release freeze", 2, 1),
		allDay("sample-offsite", "Team offsite", 3, 3),
		timed("sample-retro", "Retrospective", 6, 10, 0, 60),
	}

	var events []calendar.Event
	for _, ev := range candidates {
		start := ev.Start.Local(s.loc)
		end := ev.End.Local(s.loc)
		if end.After(from) && start.Before(to) {
			events = append(events, ev)
		}
	}
	return events, nil
}
