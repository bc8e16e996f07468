package activity

import (
	"sync"
	"time"
)

// Clock hands out event timestamps that never go backwards within the
// process, even if the wall clock is stepped back. Timestamps are UTC and
// truncated to the storage precision (microseconds).
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

// NewClock creates a Clock over the given time source.
func NewClock(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the current timestamp, never earlier than the previous one.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if t.Before(c.last) {
		t = c.last
	}
	c.last = t
	return t
}
