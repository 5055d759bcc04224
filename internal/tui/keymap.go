package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the global key bindings.
type keyMap struct {
	Quit      key.Binding
	Pause     key.Binding
	Reset     key.Binding
	Clock     key.Binding
	Countdown key.Binding
	Stopwatch key.Binding
	Help      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause/resume"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Clock: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clock"),
		),
		Countdown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "countdown"),
		),
		Stopwatch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stopwatch"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
	}
}
