// Package calendar provides the calendar event model and a client for the
// Google Calendar API.
//
// Events carry a two-variant start/end representation: a timed instant or an
// all-day civil date. Exactly one variant is present per side; conversion
// from the wire format enforces this and rejects malformed events instead of
// letting invalid times leak into rendering.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClientForAccount(ctx, "default")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List the next week of events from the primary calendar
//	events, err := client.ListEvents(ctx, "primary", time.Now(), time.Now().AddDate(0, 0, 7))
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
