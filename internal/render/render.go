// Package render turns a DisplayValue into a styled glyph grid. Render is a
// pure function: the grid is fully regenerated each frame and identical
// inputs yield identical grids, so the event loop can call it on every tick
// without bookkeeping.
package render

import (
	"fmt"

	"github.com/bigtick/bigtick/internal/engine"
)

// Style tags carried by cells. The event loop resolves them to concrete
// terminal colors; the renderer itself knows nothing about lipgloss.
type Style int

const (
	StyleNormal Style = iota
	StyleBlink        // separator cells, toggled on second parity by the view
	StyleHighlight
)

// Cell is one character of the grid plus its style tag.
type Cell struct {
	Rune  rune
	Style Style
}

// Viewport is the drawable area reported by the terminal.
type Viewport struct {
	Rows int
	Cols int
}

// Grid is the rendered matrix of cells. Truncated marks a degraded
// rendering produced when the viewport is smaller than the full glyph
// footprint; it is a recovered state, not an error.
type Grid struct {
	Cells     [][]Cell
	Truncated bool
}

const glyphGap = 2 // blank columns between glyphs

// Render projects dv into a glyph grid for the given viewport. When the
// viewport cannot hold the full-size digits it falls back to a single-row
// plain text rendering marked Truncated. highlight switches every digit
// cell to the alarm-highlight style.
func Render(dv engine.DisplayValue, vp Viewport, highlight bool) Grid {
	text := fmt.Sprintf("%02d:%02d:%02d", dv.Hours, dv.Minutes, dv.Seconds)

	width := 0
	for _, r := range text {
		width += glyphWidth(r) + glyphGap
	}
	width -= glyphGap

	if vp.Cols < width || vp.Rows < glyphRows {
		return compactGrid(text, vp, highlight)
	}

	cells := make([][]Cell, glyphRows)
	for row := range cells {
		cells[row] = make([]Cell, 0, width)
		for i, r := range text {
			if i > 0 {
				for g := 0; g < glyphGap; g++ {
					cells[row] = append(cells[row], Cell{Rune: ' ', Style: StyleNormal})
				}
			}
			style := styleFor(r, highlight)
			for _, pr := range glyphs[r][row] {
				c := Cell{Rune: pr, Style: style}
				if pr == ' ' {
					c.Style = StyleNormal
				}
				cells[row] = append(cells[row], c)
			}
		}
	}
	return Grid{Cells: cells}
}

// compactGrid renders dv as one row of plain characters, clipped to the
// viewport width. Always succeeds, even on a degenerate viewport.
func compactGrid(text string, vp Viewport, highlight bool) Grid {
	runes := []rune(text)
	if vp.Cols > 0 && len(runes) > vp.Cols {
		runes = runes[:vp.Cols]
	}
	row := make([]Cell, 0, len(runes))
	for _, r := range runes {
		row = append(row, Cell{Rune: r, Style: styleFor(r, highlight)})
	}
	return Grid{Cells: [][]Cell{row}, Truncated: true}
}

func styleFor(r rune, highlight bool) Style {
	if highlight {
		return StyleHighlight
	}
	if r == ':' {
		return StyleBlink
	}
	return StyleNormal
}

// MinViewport reports the smallest viewport that fits the full-size glyphs
// for an HH:MM:SS value.
func MinViewport() Viewport {
	width := 0
	for _, r := range "00:00:00" {
		width += glyphWidth(r) + glyphGap
	}
	return Viewport{Rows: glyphRows, Cols: width - glyphGap}
}
