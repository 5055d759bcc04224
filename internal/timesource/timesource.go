// Package timesource provides the clock capability injected into the timer
// engine. Production code uses System; tests use Fake to drive the engine
// deterministically without sleeping.
package timesource

import (
	"sync"
	"time"
)

// Source provides wall-clock access. Values returned by Now carry Go's
// monotonic reading, so Since is drift-free across wall-clock adjustments.
type Source interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// System reads the real clock.
type System struct{}

func NewSystem() System { return System{} }

func (System) Now() time.Time                  { return time.Now() }
func (System) Since(t time.Time) time.Duration { return time.Since(t) }

// Fake is a manually advanced clock for tests. Safe for concurrent use.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake creates a fake clock starting at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) Since(t time.Time) time.Duration {
	return f.Now().Sub(t)
}

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
