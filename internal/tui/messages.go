package tui

import "time"

// Message types for the Bubble Tea update loop.

// tickMsg fires on every refresh interval and drives the timer engine.
type tickMsg time.Time

// clearStatusMsg removes a transient status line after its display window.
type clearStatusMsg struct{}
