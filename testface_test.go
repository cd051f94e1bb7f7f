package panel

import "github.com/gopanel/panel/text"

// newTestFace returns the deterministic measuring face used across the
// layout tests: line height 16, letters and digits 6px, space and basic
// punctuation 3px.
func newTestFace() text.Face {
	glyphs := make(map[rune]text.Glyph)
	add := func(r rune, width int) {
		glyphs[r] = text.Glyph{Width: width, Height: 16, Cells: make([]bool, width*16)}
	}
	for r := 'a'; r <= 'z'; r++ {
		add(r, 6)
	}
	for r := 'A'; r <= 'Z'; r++ {
		add(r, 6)
	}
	for r := '0'; r <= '9'; r++ {
		add(r, 6)
	}
	for _, r := range " ,.:;!?'\"-" {
		add(r, 3)
	}
	return text.NewFixedFace(16, glyphs)
}

// newPixelFace returns a tiny face for pixel-level compositor
// assertions: line height 2, glyph 'x' 3px wide with only its leftmost
// column set, 1px blank space.
func newPixelFace() text.Face {
	xCells := []bool{
		true, false, false,
		true, false, false,
	}
	glyphs := map[rune]text.Glyph{
		'x': {Width: 3, Height: 2, Cells: xCells},
		' ': {Width: 1, Height: 2, Cells: make([]bool, 2)},
	}
	return text.NewFixedFace(2, glyphs)
}
