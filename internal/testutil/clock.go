package testutil

import (
	"sync"
	"time"
)

// FakeClock is a manually advanced time source. The session engine accepts a
// plain func() time.Time, so FakeClock.Now injects directly and tests can
// advance the clock between starting and finishing a run.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewFakeClock starts a fake clock at the given instant.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

// Now reports the current fake instant.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}
