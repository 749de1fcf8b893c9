package calendar

import "fmt"

// MalformedEventError indicates an event whose start or end carries neither
// (or both) of the date/dateTime variants. Such an event is fatal to the
// render pass that received it; callers surface a single error state rather
// than a partially rendered calendar.
type MalformedEventError struct {
	// Summary of the offending event, for the error message only.
	Summary string
	// Field is "start" or "end".
	Field string
	// Reason describes what was wrong with the field.
	Reason string
}

func (e *MalformedEventError) Error() string {
	if e.Summary == "" {
		return fmt.Sprintf("malformed event: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed event %q: %s %s", e.Summary, e.Field, e.Reason)
}
