package render

// Block glyphs for the oversized digits, five rows tall. Patterns use '#'
// for a filled cell and ' ' for an empty one; each '#' renders as a full
// block rune. Pure data, no state.

const glyphRows = 5

var glyphs = map[rune][glyphRows]string{
	'0': {
		"██████",
		"██  ██",
		"██  ██",
		"██  ██",
		"██████",
	},
	'1': {
		"    ██",
		"    ██",
		"    ██",
		"    ██",
		"    ██",
	},
	'2': {
		"██████",
		"    ██",
		"██████",
		"██    ",
		"██████",
	},
	'3': {
		"██████",
		"    ██",
		"██████",
		"    ██",
		"██████",
	},
	'4': {
		"██  ██",
		"██  ██",
		"██████",
		"    ██",
		"    ██",
	},
	'5': {
		"██████",
		"██    ",
		"██████",
		"    ██",
		"██████",
	},
	'6': {
		"██████",
		"██    ",
		"██████",
		"██  ██",
		"██████",
	},
	'7': {
		"██████",
		"    ██",
		"    ██",
		"    ██",
		"    ██",
	},
	'8': {
		"██████",
		"██  ██",
		"██████",
		"██  ██",
		"██████",
	},
	'9': {
		"██████",
		"██  ██",
		"██████",
		"    ██",
		"██████",
	},
	':': {
		"  ",
		"██",
		"  ",
		"██",
		"  ",
	},
}

// glyphWidth reports the cell width of the glyph for r, in runes.
func glyphWidth(r rune) int {
	g, ok := glyphs[r]
	if !ok {
		return 0
	}
	return len([]rune(g[0]))
}
