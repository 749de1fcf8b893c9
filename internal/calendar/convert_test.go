package calendar

import (
	"errors"
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

func TestFromAPI_Timed(t *testing.T) {
	ev := &calendar.Event{
		Id:      "abc123",
		Summary: "Standup",
		Start:   &calendar.EventDateTime{DateTime: "2024-01-15T10:00:00Z"},
		End:     &calendar.EventDateTime{DateTime: "2024-01-15T10:30:00Z"},
	}

	got, err := FromAPI(ev, "primary")
	if err != nil {
		t.Fatalf("FromAPI returned error: %v", err)
	}
	if got.AllDay() {
		t.Error("expected timed event, got all-day")
	}
	if got.Summary != "Standup" {
		t.Errorf("expected summary 'Standup', got %q", got.Summary)
	}
	want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	if !got.Start.Instant.Equal(want) {
		t.Errorf("expected start %v, got %v", want, got.Start.Instant)
	}
	if got.Source != "primary" {
		t.Errorf("expected source 'primary', got %q", got.Source)
	}
}

func TestFromAPI_AllDay(t *testing.T) {
	ev := &calendar.Event{
		Summary: "Holiday",
		Start:   &calendar.EventDateTime{Date: "2024-01-19"},
		End:     &calendar.EventDateTime{Date: "2024-01-20"},
	}

	got, err := FromAPI(ev, "primary")
	if err != nil {
		t.Fatalf("FromAPI returned error: %v", err)
	}
	if !got.AllDay() {
		t.Error("expected all-day event")
	}
	if got.Start.Date.String() != "2024-01-19" {
		t.Errorf("expected start date 2024-01-19, got %s", got.Start.Date)
	}
	// Wire end is exclusive; EndDay undoes that.
	if got.EndDay(time.UTC).String() != "2024-01-19" {
		t.Errorf("expected effective end day 2024-01-19, got %s", got.EndDay(time.UTC))
	}
}

func TestFromAPI_Malformed(t *testing.T) {
	tests := []struct {
		name string
		ev   *calendar.Event
	}{
		{
			name: "nil event",
			ev:   nil,
		},
		{
			name: "missing start",
			ev: &calendar.Event{
				Summary: "Broken",
				End:     &calendar.EventDateTime{Date: "2024-01-20"},
			},
		},
		{
			name: "empty start",
			ev: &calendar.Event{
				Summary: "Broken",
				Start:   &calendar.EventDateTime{},
				End:     &calendar.EventDateTime{Date: "2024-01-20"},
			},
		},
		{
			name: "both variants on start",
			ev: &calendar.Event{
				Summary: "Broken",
				Start:   &calendar.EventDateTime{Date: "2024-01-19", DateTime: "2024-01-19T09:00:00Z"},
				End:     &calendar.EventDateTime{Date: "2024-01-20"},
			},
		},
		{
			name: "mixed variants across boundaries",
			ev: &calendar.Event{
				Summary: "Broken",
				Start:   &calendar.EventDateTime{DateTime: "2024-01-19T09:00:00Z"},
				End:     &calendar.EventDateTime{Date: "2024-01-20"},
			},
		},
		{
			name: "unparseable dateTime",
			ev: &calendar.Event{
				Summary: "Broken",
				Start:   &calendar.EventDateTime{DateTime: "not-a-time"},
				End:     &calendar.EventDateTime{DateTime: "2024-01-19T10:00:00Z"},
			},
		},
		{
			name: "unparseable date",
			ev: &calendar.Event{
				Summary: "Broken",
				Start:   &calendar.EventDateTime{Date: "01/19/2024"},
				End:     &calendar.EventDateTime{Date: "2024-01-20"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromAPI(tt.ev, "primary")
			if err == nil {
				t.Fatal("expected error for malformed event")
			}
			var malformed *MalformedEventError
			if !errors.As(err, &malformed) {
				t.Errorf("expected MalformedEventError, got %T: %v", err, err)
			}
		})
	}
}

func TestFromAPIList_AbortsOnFirstMalformed(t *testing.T) {
	items := []*calendar.Event{
		{
			Summary: "Good",
			Start:   &calendar.EventDateTime{Date: "2024-01-19"},
			End:     &calendar.EventDateTime{Date: "2024-01-20"},
		},
		{
			Summary: "Bad",
			Start:   &calendar.EventDateTime{},
			End:     &calendar.EventDateTime{Date: "2024-01-20"},
		},
	}

	events, err := FromAPIList(items, "primary")
	if err == nil {
		t.Fatal("expected error")
	}
	if events != nil {
		t.Errorf("expected nil events on error, got %d", len(events))
	}
}
