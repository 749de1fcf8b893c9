package source

import (
	"context"
	"time"

	"github.com/teemow/tabcal/internal/calendar"
)

// Source is a provider of calendar events.
type Source interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// Events returns all events overlapping the half-open instant range
	// [from, to). Order is unspecified.
	Events(ctx context.Context, from, to time.Time) ([]calendar.Event, error)
}

// Window converts a civil day range into the half-open instant range
// [today 00:00, today+daySpan 00:00) in loc.
func Window(today calendar.CivilDate, daySpan int, loc *time.Location) (from, to time.Time) {
	from = today.Midnight(loc)
	to = today.AddDays(daySpan).Midnight(loc)
	return from, to
}
