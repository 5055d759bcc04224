// Package engine implements the timing state machine behind the display:
// mode (clock, countdown, stopwatch), pause/resume bookkeeping, and one-shot
// countdown expiry. The engine never reads the process clock directly; a
// timesource.Source is injected so tests can drive it deterministically.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bigtick/bigtick/internal/timesource"
)

// ErrInvalidTarget is returned when entering countdown mode without a
// positive target duration.
var ErrInvalidTarget = errors.New("countdown target must be positive")

// Mode selects what the engine tracks.
type Mode int

const (
	ModeClock Mode = iota
	ModeCountdown
	ModeStopwatch
)

func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeCountdown:
		return "countdown"
	case ModeStopwatch:
		return "stopwatch"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a mode name from configuration to its Mode value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "clock":
		return ModeClock, nil
	case "countdown":
		return ModeCountdown, nil
	case "stopwatch":
		return ModeStopwatch, nil
	default:
		return ModeClock, fmt.Errorf("unknown mode %q", s)
	}
}

// AlarmEvent is the fire-once token emitted when a countdown expires.
// ID is unique per expiry so the dispatcher can dedupe by identity.
type AlarmEvent struct {
	ID      string
	Message string
	Sound   string
}

// DisplayValue is an immutable snapshot derived from engine state each tick.
// Countdown values clamp at zero, never negative.
type DisplayValue struct {
	Hours   int
	Minutes int
	Seconds int
	Expired bool
}

// Engine owns the timer state. It is mutated only from the event loop
// goroutine; snapshots handed out (DisplayValue, AlarmEvent) are immutable.
type Engine struct {
	clock timesource.Source

	mode        Mode
	running     bool
	startedAt   time.Time // monotonic reference, valid only while running
	accumulated time.Duration
	target      time.Duration // countdown only
	expired     bool
}

// New creates an engine in the given mode. Countdown and stopwatch start
// running immediately; clock mode mirrors wall time and has no run state.
func New(clock timesource.Source, mode Mode, target time.Duration) (*Engine, error) {
	e := &Engine{clock: clock}
	if err := e.SwitchMode(mode, target); err != nil {
		return nil, err
	}
	return e, nil
}

// Tick folds the interval since the last running reference into accumulated
// time. It is a no-op while paused and in clock mode. On the first crossing
// of the countdown target it returns exactly one AlarmEvent; every later
// call returns nil.
func (e *Engine) Tick() *AlarmEvent {
	if e.mode == ModeClock || !e.running {
		return nil
	}

	now := e.clock.Now()
	e.accumulated += now.Sub(e.startedAt)
	e.startedAt = now

	if e.mode == ModeCountdown && !e.expired && e.accumulated >= e.target {
		e.expired = true
		ev := &AlarmEvent{
			ID:      uuid.NewString(),
			Message: fmt.Sprintf("Countdown finished (%s)", formatDuration(e.target)),
			Sound:   "alarm",
		}
		logrus.Debugf("countdown expired after %s, alarm event %s", e.target, ev.ID)
		return ev
	}
	return nil
}

// TogglePause flips between running and paused. Resuming records a fresh
// monotonic reference so paused time never counts toward accumulated.
// Clock mode ignores the toggle: wall time cannot be paused.
func (e *Engine) TogglePause() {
	if e.mode == ModeClock {
		return
	}
	if e.running {
		now := e.clock.Now()
		e.accumulated += now.Sub(e.startedAt)
		e.running = false
		logrus.Debugf("%s paused at %s", e.mode, e.accumulated)
		return
	}
	e.startedAt = e.clock.Now()
	e.running = true
}

// Reset returns the engine to the mode's initial state: nothing accumulated,
// not expired, paused.
func (e *Engine) Reset() {
	e.accumulated = 0
	e.expired = false
	e.running = false
	e.startedAt = time.Time{}
}

// SwitchMode resets and installs a new mode. Countdown requires a positive
// target; other modes ignore it.
func (e *Engine) SwitchMode(mode Mode, target time.Duration) error {
	if mode == ModeCountdown && target <= 0 {
		return fmt.Errorf("switch to countdown: %w", ErrInvalidTarget)
	}
	e.Reset()
	e.mode = mode
	e.target = 0
	if mode == ModeCountdown {
		e.target = target
	}
	if mode != ModeClock {
		e.running = true
		e.startedAt = e.clock.Now()
	}
	return nil
}

// DisplayValue projects the current state into hours/minutes/seconds.
// Pure with respect to engine state: callable any number of times.
func (e *Engine) DisplayValue() DisplayValue {
	switch e.mode {
	case ModeClock:
		h, m, s := e.clock.Now().Clock()
		return DisplayValue{Hours: h, Minutes: m, Seconds: s}
	case ModeCountdown:
		remaining := e.target - e.live()
		if remaining < 0 {
			remaining = 0
		}
		dv := splitDuration(remaining)
		dv.Expired = e.expired
		return dv
	default:
		return splitDuration(e.live())
	}
}

// live is accumulated plus the currently running interval, without mutating.
func (e *Engine) live() time.Duration {
	if !e.running {
		return e.accumulated
	}
	return e.accumulated + e.clock.Since(e.startedAt)
}

// Elapsed reports total accumulated running time.
func (e *Engine) Elapsed() time.Duration { return e.live() }

// Progress reports countdown completion in [0, 1]; zero for other modes.
func (e *Engine) Progress() float64 {
	if e.mode != ModeCountdown || e.target <= 0 {
		return 0
	}
	p := float64(e.live()) / float64(e.target)
	if p > 1 {
		p = 1
	}
	return p
}

func (e *Engine) Mode() Mode            { return e.mode }
func (e *Engine) Running() bool         { return e.running }
func (e *Engine) Expired() bool         { return e.expired }
func (e *Engine) Target() time.Duration { return e.target }

func splitDuration(d time.Duration) DisplayValue {
	secs := int(d / time.Second)
	return DisplayValue{
		Hours:   secs / 3600,
		Minutes: (secs / 60) % 60,
		Seconds: secs % 60,
	}
}

func formatDuration(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
