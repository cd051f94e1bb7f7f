package text

// Face is a font face with a fixed line height, shared read-only by many
// elements. Implementations are never mutated by the frame pipeline.
type Face interface {
	// Advance returns the total pixel width of s. Runes without a glyph
	// contribute zero width.
	Advance(s string) int

	// Glyph returns the bitmap for r, reporting whether the face has one.
	Glyph(r rune) (Glyph, bool)

	// Height returns the fixed line height in pixels.
	Height() int
}

// Glyph is a rectangular grid of on/off cells with its own pixel width.
type Glyph struct {
	Width  int
	Height int
	Cells  []bool // row-major, len == Width*Height
}

// On reports whether the cell at (x, y) is set. Coordinates outside the
// glyph bounds are off.
func (g Glyph) On(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}
	return g.Cells[y*g.Width+x]
}

// FixedFace is a Face backed by an in-memory glyph table, for
// hand-drawn bitmap panel fonts.
type FixedFace struct {
	height int
	glyphs map[rune]Glyph
}

// NewFixedFace creates a face with the given line height. The glyph map
// is retained, not copied; it must not be mutated afterwards.
func NewFixedFace(height int, glyphs map[rune]Glyph) *FixedFace {
	return &FixedFace{height: height, glyphs: glyphs}
}

// Advance implements Face.Advance.
func (f *FixedFace) Advance(s string) int {
	total := 0
	for _, r := range s {
		if g, ok := f.glyphs[r]; ok {
			total += g.Width
		}
	}
	return total
}

// Glyph implements Face.Glyph.
func (f *FixedFace) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Height implements Face.Height.
func (f *FixedFace) Height() int { return f.height }
