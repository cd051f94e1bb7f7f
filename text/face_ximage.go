package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FromFontFace adapts a golang.org/x/image/font Face into a Face. The
// adapter rounds advances up to whole pixels and samples each glyph's
// coverage mask into on/off cells at a 50% threshold, which is what a
// fixed-cell panel font amounts to.
//
// Sampled glyphs are cached per rune. The adapter is not safe for
// concurrent use; share it the way the frame pipeline shares faces, from
// a single goroutine.
func FromFontFace(f font.Face) (Face, error) {
	if f == nil {
		return nil, ErrNilFace
	}
	m := f.Metrics()
	return &imageFace{
		face:   f,
		height: (m.Ascent + m.Descent).Ceil(),
		ascent: m.Ascent.Ceil(),
		cache:  make(map[rune]Glyph),
	}, nil
}

type imageFace struct {
	face   font.Face
	height int
	ascent int
	cache  map[rune]Glyph
}

// Height implements Face.Height.
func (f *imageFace) Height() int { return f.height }

// Advance implements Face.Advance. The total is the sum of per-rune
// advances, matching how Glyph widths accumulate during wrapping.
func (f *imageFace) Advance(s string) int {
	total := 0
	for _, r := range s {
		if adv, ok := f.face.GlyphAdvance(r); ok {
			total += adv.Ceil()
		}
	}
	return total
}

// Glyph implements Face.Glyph.
func (f *imageFace) Glyph(r rune) (Glyph, bool) {
	if g, ok := f.cache[r]; ok {
		return g, true
	}
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		return Glyph{}, false
	}
	width := adv.Ceil()
	g := Glyph{Width: width, Height: f.height, Cells: make([]bool, width*f.height)}

	dot := fixed.P(0, f.ascent)
	dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
	if !ok {
		return Glyph{}, false
	}
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		if y < 0 || y >= f.height {
			continue
		}
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if x < 0 || x >= width {
				continue
			}
			mp := maskp.Add(image.Pt(x-dr.Min.X, y-dr.Min.Y))
			if alphaAt(mask, mp) >= 0x80 {
				g.Cells[y*width+x] = true
			}
		}
	}

	f.cache[r] = g
	return g, true
}

// alphaAt reads the coverage value at p from a glyph mask.
func alphaAt(m image.Image, p image.Point) uint8 {
	if a, ok := m.(*image.Alpha); ok {
		return a.AlphaAt(p.X, p.Y).A
	}
	_, _, _, a := m.At(p.X, p.Y).RGBA()
	return uint8(a >> 8)
}
