package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bigtick/bigtick/internal/engine"
	"github.com/bigtick/bigtick/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	dv := m.engine.DisplayValue()

	// Re-derive the drawable area every frame; a resize can land between
	// ticks and the grid must follow immediately.
	vp := render.Viewport{Rows: m.height - chromeLines, Cols: m.width}
	if m.width == 0 {
		vp = render.MinViewport()
	}

	highlight := m.highlightActive() && m.frame%2 == 0
	grid := render.Render(dv, vp, highlight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid(grid, dv))
	b.WriteString("\n")
	if sub := m.renderSubline(); sub != "" {
		b.WriteString(sub)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.helpVisible {
		b.WriteString(m.renderHelp())
		b.WriteString("\n")
	}
	b.WriteString(renderFooter())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

// highlightActive reports whether we are inside the post-expiry flash window.
func (m Model) highlightActive() bool {
	return m.engine.Expired() && m.clock.Now().Before(m.highlightUntil)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	badgeStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderGrid resolves style tags to lipgloss styles and flattens the grid.
// The separator blinks on second parity, like the original hardware-clock
// colon.
func (m Model) renderGrid(g render.Grid, dv engine.DisplayValue) string {
	digit := lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Theme.Digit))
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Theme.Separator))
	hi := lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Theme.Highlight)).Bold(true)

	sepVisible := dv.Seconds%2 == 0

	var b strings.Builder
	for i, row := range g.Cells {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, c := range row {
			switch c.Style {
			case render.StyleHighlight:
				b.WriteString(hi.Render(string(c.Rune)))
			case render.StyleBlink:
				if sepVisible {
					b.WriteString(sep.Render(string(c.Rune)))
				} else {
					b.WriteString(" ")
				}
			default:
				b.WriteString(digit.Render(string(c.Rune)))
			}
		}
	}
	return b.String()
}

func (m Model) renderHeader() string {
	badge := badgeStyle.Foreground(lipgloss.Color("69")).Render(strings.ToUpper(m.engine.Mode().String()))
	if m.engine.Mode() != engine.ModeClock && !m.engine.Running() && !m.engine.Expired() {
		badge += badgeStyle.Foreground(lipgloss.Color("208")).Render("PAUSED")
	}
	if m.engine.Expired() {
		badge += badgeStyle.Foreground(lipgloss.Color("196")).Render("TIME UP")
	}
	return badge
}

// renderSubline draws the line under the digits: the date in clock mode,
// the completion gauge in countdown mode, elapsed detail for the stopwatch.
func (m Model) renderSubline() string {
	switch m.engine.Mode() {
	case engine.ModeClock:
		if !m.cfg.ShowDate {
			return ""
		}
		date := lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Theme.Date))
		return date.Render(m.clock.Now().Format(dateFormat))
	case engine.ModeCountdown:
		return m.gauge.ViewAs(m.engine.Progress())
	default:
		return faintStyle.Render(fmt.Sprintf("elapsed %s", m.engine.Elapsed().Truncate(10*time.Millisecond)))
	}
}

func (m Model) renderHelp() string {
	border := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Foreground(lipgloss.Color("69"))
	content := []string{
		"Help",
		"",
		"space/p: pause or resume",
		"r: reset",
		"c/d/s: clock, countdown, stopwatch",
		"q/esc/ctrl+c: quit",
	}
	return border.Render(strings.Join(content, "\n"))
}

func renderFooter() string {
	return faintStyle.Render("q: quit • space: pause • r: reset • c/d/s: mode • h/?: help")
}
