package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigtick/bigtick/internal/engine"
)

func TestRender_Pure(t *testing.T) {
	t.Parallel()

	dv := engine.DisplayValue{Hours: 12, Minutes: 34, Seconds: 56}
	vp := Viewport{Rows: 24, Cols: 80}

	a := Render(dv, vp, false)
	b := Render(dv, vp, false)
	assert.Equal(t, a, b, "identical inputs must yield structurally equal grids")
}

func TestRender_FullGlyphFootprint(t *testing.T) {
	t.Parallel()

	min := MinViewport()
	g := Render(engine.DisplayValue{}, min, false)

	require.False(t, g.Truncated)
	require.Len(t, g.Cells, min.Rows)
	for _, row := range g.Cells {
		assert.Len(t, row, min.Cols)
	}
}

func TestRender_TruncatesBelowMinimum(t *testing.T) {
	t.Parallel()

	min := MinViewport()
	dv := engine.DisplayValue{Hours: 1, Minutes: 2, Seconds: 3}

	for _, vp := range []Viewport{
		{Rows: min.Rows - 1, Cols: 200},
		{Rows: 24, Cols: min.Cols - 1},
		{Rows: 2, Cols: 5},
	} {
		g := Render(dv, vp, false)
		require.True(t, g.Truncated, "viewport %+v", vp)
		require.Len(t, g.Cells, 1)
		if vp.Cols > 0 {
			assert.LessOrEqual(t, len(g.Cells[0]), vp.Cols)
		}
	}
}

func TestRender_CompactKeepsReadableText(t *testing.T) {
	t.Parallel()

	g := Render(engine.DisplayValue{Hours: 1, Minutes: 2, Seconds: 3}, Viewport{Rows: 1, Cols: 80}, false)
	require.True(t, g.Truncated)

	var text []rune
	for _, c := range g.Cells[0] {
		text = append(text, c.Rune)
	}
	assert.Equal(t, "01:02:03", string(text))
}

func TestRender_HighlightStylesDigitCells(t *testing.T) {
	t.Parallel()

	g := Render(engine.DisplayValue{Expired: true}, Viewport{Rows: 24, Cols: 80}, true)
	require.False(t, g.Truncated)

	for _, row := range g.Cells {
		for _, c := range row {
			if c.Rune != ' ' {
				assert.Equal(t, StyleHighlight, c.Style)
			}
		}
	}
}

func TestRender_SeparatorCellsBlink(t *testing.T) {
	t.Parallel()

	g := Render(engine.DisplayValue{}, Viewport{Rows: 24, Cols: 80}, false)
	require.False(t, g.Truncated)

	blink := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c.Style == StyleBlink {
				blink++
			}
		}
	}
	assert.Positive(t, blink, "colon separators carry the blink style")
}

func TestGlyphTable_ConsistentDimensions(t *testing.T) {
	t.Parallel()

	for r, g := range glyphs {
		w := glyphWidth(r)
		require.Positive(t, w, "glyph %q", r)
		for _, row := range g {
			assert.Len(t, []rune(row), w, "glyph %q has ragged rows", r)
		}
	}
}
