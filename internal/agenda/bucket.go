package agenda

import (
	"sort"
	"time"

	"github.com/teemow/tabcal/internal/calendar"
)

// Bucket maps every event onto each civil day it touches, dropping days
// strictly before today. Multi-day events appear in every day of their span;
// an event entirely in the past contributes nothing. The returned map is
// freshly allocated on every call and each bucket is sorted ascending by
// effective start instant (ties broken by summary, then ID, for stable
// output).
//
// All-day events arrive with the provider's exclusive end date; the
// adjustment to the inclusive last day happens in Event.EndDay, not here.
func Bucket(events []calendar.Event, today calendar.CivilDate, loc *time.Location) map[calendar.CivilDate][]calendar.Event {
	buckets := make(map[calendar.CivilDate][]calendar.Event)

	for _, ev := range events {
		first := ev.StartDay(loc)
		last := ev.EndDay(loc)

		day := first
		if day.Before(today) {
			day = today
		}
		for ; !day.After(last); day = day.AddDays(1) {
			buckets[day] = append(buckets[day], ev)
		}
	}

	for day := range buckets {
		sortBucket(buckets[day], loc)
	}

	return buckets
}

func sortBucket(events []calendar.Event, loc *time.Location) {
	sort.SliceStable(events, func(i, j int) bool {
		a := events[i].EffectiveStart(loc)
		b := events[j].EffectiveStart(loc)
		if !a.Equal(b) {
			return a.Before(b)
		}
		if events[i].Summary != events[j].Summary {
			return events[i].Summary < events[j].Summary
		}
		return events[i].ID < events[j].ID
	})
}
