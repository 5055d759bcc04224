package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/bigtick/bigtick/internal/alarm"
	"github.com/bigtick/bigtick/internal/config"
	"github.com/bigtick/bigtick/internal/engine"
	"github.com/bigtick/bigtick/internal/timesource"
)

// Run starts the full-screen clock program and blocks until quit. It owns
// collaborator setup and teardown: alarm transports are built from the
// config, and the dispatcher is drained after the terminal is restored on
// every exit path.
func Run(cfg config.Config) error {
	mode, err := engine.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	clock := timesource.NewSystem()
	eng, err := engine.New(clock, mode, cfg.Target.Std())
	if err != nil {
		return err
	}

	dispatcher := alarm.NewDispatcher(buildNotifier(cfg), buildSounder(cfg))
	defer dispatcher.Close()

	model := NewModel(cfg, clock, eng, dispatcher)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Silence logs while the TUI owns the terminal to avoid corrupting the
	// view; restore on exit.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal program: %w", err)
	}
	return nil
}

// buildNotifier returns the configured notification transport, or the no-op
// when the capability is disabled.
func buildNotifier(cfg config.Config) alarm.Notifier {
	if !cfg.Notify {
		return alarm.NoopNotifier{}
	}
	return alarm.NewDesktopNotifier("bigtick")
}

// buildSounder returns the beep transport, falling back to the no-op when
// no audio device is available. Absence of audio is a soft failure.
func buildSounder(cfg config.Config) alarm.Sounder {
	if !cfg.Sound {
		return alarm.NoopSounder{}
	}
	s, err := alarm.NewBeepSounder()
	if err != nil {
		if errors.Is(err, alarm.ErrUnavailable) {
			logrus.Debug("audio device unavailable; alarm sound disabled")
		} else {
			logrus.Debugf("audio init failed: %v", err)
		}
		return alarm.NoopSounder{}
	}
	return s
}
