package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigtick/bigtick/internal/alarm"
	"github.com/bigtick/bigtick/internal/config"
	"github.com/bigtick/bigtick/internal/engine"
	"github.com/bigtick/bigtick/internal/timesource"
)

// failingTransport always reports the transport as unavailable.
type failingTransport struct{}

func (failingTransport) Notify(string) error { return alarm.ErrUnavailable }
func (failingTransport) Play(string) error   { return alarm.ErrUnavailable }

func newTestModel(t *testing.T, mode string, target time.Duration) (Model, *timesource.Fake) {
	t.Helper()

	cfg := config.Default()
	cfg.Mode = mode
	cfg.Target = config.Duration(target)
	require.NoError(t, cfg.Validate())

	clock := timesource.NewFake(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC))
	m, err := engine.ParseMode(cfg.Mode)
	require.NoError(t, err)
	eng, err := engine.New(clock, m, cfg.Target.Std())
	require.NoError(t, err)

	d := alarm.NewDispatcher(failingTransport{}, failingTransport{})
	return NewModel(cfg, clock, eng, d), clock
}

func deliverTick(m Model) Model {
	next, _ := m.Update(tickMsg(time.Time{}))
	return next.(Model)
}

func TestUpdate_TickSchedulesNextTick(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, "stopwatch", 0)
	next, cmd := m.Update(tickMsg(time.Time{}))
	require.NotNil(t, cmd, "every tick must schedule the next one")
	assert.IsType(t, Model{}, next)
}

func TestUpdate_ResizeBelowFootprintKeepsRendering(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, "clock", 0)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 8})
	m = next.(Model)

	var out string
	require.NotPanics(t, func() { out = m.View() })
	assert.Contains(t, out, ":", "compact rendering still shows the time")

	// Loop continues after the resize.
	_, cmd := m.Update(tickMsg(time.Time{}))
	assert.NotNil(t, cmd)
}

func TestUpdate_ExpiryWithFailingTransports(t *testing.T) {
	t.Parallel()

	m, clock := newTestModel(t, "countdown", 2*time.Second)

	clock.Advance(3 * time.Second)
	m = deliverTick(m)

	// Rendering keeps going even though both transports reported
	// ErrUnavailable for the fired alarm.
	require.NotPanics(t, func() { _ = m.View() })
	clock.Advance(time.Second)
	m = deliverTick(m)
	require.NotPanics(t, func() { _ = m.View() })
}

func TestHandleKey_CountdownWithoutTargetSurfacesError(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, "stopwatch", 0)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = next.(Model)

	assert.NotEmpty(t, m.status, "invalid target is surfaced, not fatal")
	assert.NotNil(t, cmd, "status line schedules its own expiry")
	assert.Contains(t, strings.ToLower(m.status), "target")
}

func TestHandleKey_PauseAndReset(t *testing.T) {
	t.Parallel()

	m, clock := newTestModel(t, "stopwatch", 0)

	clock.Advance(5 * time.Second)
	m = deliverTick(m)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = next.(Model)
	assert.False(t, m.engine.Running())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(Model)
	assert.Equal(t, time.Duration(0), m.engine.Elapsed())
}

func TestHandleKey_QuitSetsQuitting(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, "clock", 0)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_HighlightWindowBlinks(t *testing.T) {
	t.Parallel()

	m, clock := newTestModel(t, "countdown", time.Second)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(Model)

	clock.Advance(2 * time.Second)
	m = deliverTick(m)
	require.True(t, m.engine.Expired())
	assert.True(t, m.highlightActive())

	// After the configured window the highlight goes quiet again.
	clock.Advance(m.cfg.HighlightFor.Std() + time.Second)
	assert.False(t, m.highlightActive())
}
