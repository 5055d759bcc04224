package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bigtick/bigtick/internal/engine"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model contract
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tickMsg:
		m.frame++
		if ev := m.engine.Tick(); ev != nil {
			// Hand off and keep rendering; the dispatcher never blocks us.
			m.dispatcher.Fire(ev)
			m.highlightUntil = m.clock.Now().Add(m.cfg.HighlightFor.Std())
		}
		return m, m.tick()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

// handleKey dispatches input events to engine operations.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.engine.TogglePause()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.highlightUntil = m.clock.Now()
		return m, nil

	case key.Matches(msg, m.keys.Clock):
		return m.switchMode(engine.ModeClock)

	case key.Matches(msg, m.keys.Countdown):
		return m.switchMode(engine.ModeCountdown)

	case key.Matches(msg, m.keys.Stopwatch):
		return m.switchMode(engine.ModeStopwatch)

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		return m, nil
	}

	return m, nil
}

// switchMode installs a new mode, surfacing invalid-target errors as a
// transient status line instead of ending the loop.
func (m Model) switchMode(mode engine.Mode) (Model, tea.Cmd) {
	if err := m.engine.SwitchMode(mode, m.cfg.Target.Std()); err != nil {
		if errors.Is(err, engine.ErrInvalidTarget) {
			m.status = "countdown needs a target: set one in the config file or start with 'bigtick down 5m'"
		} else {
			m.status = err.Error()
		}
		return m, m.clearStatusLater()
	}
	m.highlightUntil = m.clock.Now()
	return m, nil
}
