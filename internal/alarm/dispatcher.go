// Package alarm delivers the countdown expiry to the notification and sound
// transports. Delivery is at-most-once per alarm event and fire-and-forget:
// a slow or missing transport can never stall the render loop.
package alarm

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/bigtick/bigtick/internal/engine"
)

// ErrUnavailable marks a transport that is missing or failed. Callers treat
// it as a no-op, never as a fatal condition.
var ErrUnavailable = errors.New("transport unavailable")

// Notifier sends a desktop notification.
type Notifier interface {
	Notify(message string) error
}

// Sounder plays the named alarm sound.
type Sounder interface {
	Play(soundID string) error
}

// Dispatcher fans an AlarmEvent out to both transports, deduplicating by
// event identity so repeated Fire calls for the same event are harmless.
type Dispatcher struct {
	notifier Notifier
	sounder  Sounder

	mu    sync.Mutex
	fired map[string]struct{}
	wg    sync.WaitGroup
}

// NewDispatcher wires the dispatcher to its transports. Pass the no-op
// implementations for disabled capabilities.
func NewDispatcher(n Notifier, s Sounder) *Dispatcher {
	return &Dispatcher{
		notifier: n,
		sounder:  s,
		fired:    make(map[string]struct{}),
	}
}

// Fire delivers ev to both transports in the background, at most once per
// event ID. Transport failures are logged and swallowed.
func (d *Dispatcher) Fire(ev *engine.AlarmEvent) {
	if ev == nil {
		return
	}

	d.mu.Lock()
	if _, dup := d.fired[ev.ID]; dup {
		d.mu.Unlock()
		return
	}
	d.fired[ev.ID] = struct{}{}
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.notifier.Notify(ev.Message); err != nil {
			logrus.Debugf("alarm notification failed: %v", err)
		}
		if err := d.sounder.Play(ev.Sound); err != nil {
			logrus.Debugf("alarm sound failed: %v", err)
		}
	}()
}

// Close waits for in-flight deliveries and releases transport resources.
func (d *Dispatcher) Close() {
	d.wg.Wait()
	if c, ok := d.sounder.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			logrus.Debugf("closing sound transport: %v", err)
		}
	}
}

// wait blocks until all in-flight deliveries finish. Test hook.
func (d *Dispatcher) wait() { d.wg.Wait() }
