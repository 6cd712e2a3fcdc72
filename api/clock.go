package api

import (
	"sync"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// monotonicClock never hands out a time earlier than one it already returned,
// even when the wall clock steps backwards.
type monotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newMonotonicClock(now func() time.Time) *monotonicClock {
	return &monotonicClock{now: now}
}

func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now().UTC()
	if t.Before(c.last) {
		return c.last
	}
	c.last = t
	return t
}
