package server

import (
	"context"
	"sync"
	"time"

	"github.com/teemow/tabcal/internal/calendar"
	"github.com/teemow/tabcal/internal/settings"
)

// DefaultCacheTTL is how long a fetched event set is served before the next
// page load triggers a refetch. The background refresh usually beats this.
const DefaultCacheTTL = 5 * time.Minute

type fetchFunc func(ctx context.Context) ([]calendar.Event, error)

type cacheEntry struct {
	events    []calendar.Event
	fetchedAt time.Time

	// settings the entry was fetched under; a mismatch invalidates it
	span       int
	account    string
	calendarID string
}

// eventCache holds the last fetched event set so opening a new tab does not
// hit the source every time. A failed fetch is never cached: the next call
// retries.
type eventCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	entry *cacheEntry
}

func newEventCache(ttl time.Duration) *eventCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &eventCache{ttl: ttl}
}

func (c *eventCache) matches(cfg settings.Settings) bool {
	return c.entry != nil &&
		c.entry.span == cfg.DaySpan &&
		c.entry.account == cfg.Account &&
		c.entry.calendarID == cfg.CalendarID
}

// get returns the cached events when fresh and fetched under the same
// settings, otherwise fetches and stores a new entry.
func (c *eventCache) get(ctx context.Context, now time.Time, cfg settings.Settings, fetch fetchFunc) ([]calendar.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.matches(cfg) && now.Sub(c.entry.fetchedAt) < c.ttl {
		return c.entry.events, nil
	}

	events, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.entry = &cacheEntry{
		events:     events,
		fetchedAt:  now,
		span:       cfg.DaySpan,
		account:    cfg.Account,
		calendarID: cfg.CalendarID,
	}
	return events, nil
}

// invalidate drops the cached entry so the next get fetches fresh data.
func (c *eventCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
}
