package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bigtick/bigtick/internal/alarm"
	"github.com/bigtick/bigtick/internal/config"
	"github.com/bigtick/bigtick/internal/engine"
	"github.com/bigtick/bigtick/internal/timesource"
)

// Model is the root Bubble Tea model. It is the only driver of engine
// mutation, so the timer state needs no locking.
type Model struct {
	cfg        config.Config
	clock      timesource.Source
	engine     *engine.Engine
	dispatcher *alarm.Dispatcher

	width  int
	height int

	// highlightUntil bounds the post-expiry flash window; frame parity
	// makes the highlight blink between refreshes.
	highlightUntil time.Time
	frame          int

	status      string
	helpVisible bool
	quitting    bool

	gauge progress.Model
	keys  keyMap
}

// NewModel constructs the model around an already validated configuration.
func NewModel(cfg config.Config, clock timesource.Source, eng *engine.Engine, d *alarm.Dispatcher) Model {
	g := progress.New(progress.WithDefaultGradient())
	g.Width = progressWidth
	g.ShowPercentage = false
	return Model{
		cfg:        cfg,
		clock:      clock,
		engine:     eng,
		dispatcher: d,
		gauge:      g,
		keys:       newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// tick schedules the next refresh. The bounded wait between frames lives
// inside bubbletea: input arriving before the tick is delivered first.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval.Std(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// clearStatusLater expires the transient status line.
func (m Model) clearStatusLater() tea.Cmd {
	return tea.Tick(statusLineDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
