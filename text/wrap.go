package text

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// WrappedText is a string plus a strictly increasing sequence of byte
// offsets ("breakpoints") partitioning it into display lines. The final
// breakpoint always equals the string length. Re-wrapping recomputes the
// breakpoints in place without touching the underlying string, so line
// iteration is always a read of byte-slice spans.
type WrappedText struct {
	text   string
	breaks []int
}

// NewWrapped creates a WrappedText wrapped to maxWidth against face.
// A maxWidth <= 0 means no pixel budget: only hard newlines break.
func NewWrapped(text string, maxWidth int, face Face) *WrappedText {
	w := &WrappedText{text: text}
	w.Rewrap(maxWidth, face)
	return w
}

// Text returns the underlying string.
func (w *WrappedText) Text() string { return w.text }

// SetText replaces the underlying string and invalidates the
// breakpoints. Rewrap must run before the next line iteration; the
// layout bake pass does this on every frame.
func (w *WrappedText) SetText(text string) {
	w.text = text
	w.breaks = w.breaks[:0]
}

// Rewrap recomputes the breakpoints for the current text against the
// pixel width budget. A maxWidth <= 0 only inserts breaks on explicit
// newlines. Wrapping to the same budget twice yields identical
// breakpoints.
//
// The scan is greedy: a glyph that would overflow the budget breaks the
// line at the most recent whitespace since the last break, moving the
// pending word onto the new line; with no whitespace available the token
// is hard-split mid-word.
func (w *WrappedText) Rewrap(maxWidth int, face Face) {
	w.breaks = w.breaks[:0]

	scrapWidth := 0 // pixel width of the line under construction
	wordWidth := 0  // pixel width of the pending whitespace-delimited word
	lastWS := -1    // byte offset of the most recent whitespace since the last break

	for i, r := range w.text {
		if r == '\n' {
			w.breaks = append(w.breaks, i)
			scrapWidth, wordWidth = 0, 0
			lastWS = -1
			continue
		}

		var cw int
		if g, ok := face.Glyph(r); ok {
			cw = g.Width
		}

		if maxWidth > 0 && scrapWidth+cw > maxWidth {
			if lastWS >= 0 {
				w.breaks = append(w.breaks, lastWS)
				scrapWidth = wordWidth
			} else {
				w.breaks = append(w.breaks, i)
				scrapWidth, wordWidth = 0, 0
			}
			lastWS = -1
		}

		scrapWidth += cw
		if unicode.IsSpace(r) {
			lastWS = i
			wordWidth = 0
		} else {
			wordWidth += cw
		}
	}

	w.breaks = append(w.breaks, len(w.text))
}

// Lines returns a lazy, restartable iterator over the display lines, one
// per segment between consecutive breakpoints. Exactly one leading
// whitespace character is stripped per line if present; it is the
// separator consumed by the break.
func (w *WrappedText) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for _, end := range w.breaks {
			line := w.text[start:end]
			if r, size := utf8.DecodeRuneInString(line); size > 0 && unicode.IsSpace(r) {
				line = line[size:]
			}
			if !yield(line) {
				return
			}
			start = end
		}
	}
}

// LineCount returns the number of display lines.
func (w *WrappedText) LineCount() int { return len(w.breaks) }

// MaxLineWidth returns the widest measured display line in pixels.
func (w *WrappedText) MaxLineWidth(face Face) int {
	widest := 0
	for line := range w.Lines() {
		widest = max(widest, face.Advance(line))
	}
	return widest
}
