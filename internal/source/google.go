package source

import (
	"context"
	"time"

	"github.com/teemow/tabcal/internal/calendar"
)

// GoogleSource reads events from a single Google calendar through an
// authenticated calendar.Client.
type GoogleSource struct {
	client     *calendar.Client
	calendarID string
}

// NewGoogleSource creates a source for the given calendar ID. An empty
// calendarID selects the primary calendar.
func NewGoogleSource(client *calendar.Client, calendarID string) *GoogleSource {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleSource{
		client:     client,
		calendarID: calendarID,
	}
}

// Name returns the provider name for logs and metrics.
func (s *GoogleSource) Name() string {
	return "google"
}

// CalendarID returns the calendar this source reads from.
func (s *GoogleSource) CalendarID() string {
	return s.calendarID
}

// Events fetches single-instance events overlapping [from, to). Recurring
// events are already expanded server-side by the Calendar API.
func (s *GoogleSource) Events(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	return s.client.ListEvents(ctx, s.calendarID, from, to)
}
