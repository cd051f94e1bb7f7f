package text

import (
	"slices"
	"strings"
	"testing"
)

// collectLines drains the Lines iterator.
func collectLines(w *WrappedText) []string {
	var lines []string
	for line := range w.Lines() {
		lines = append(lines, line)
	}
	return lines
}

// TestWrapMinimal tests the basic word-wrap scenarios.
func TestWrapMinimal(t *testing.T) {
	face := newTestFace()
	const input = "hello dear\nworld"

	// Wide enough: only the hard newline breaks.
	wide := NewWrapped(input, 200, face)
	if got, want := collectLines(wide), []string{"hello dear", "world"}; !slices.Equal(got, want) {
		t.Errorf("lines at width 200 = %q, want %q", got, want)
	}

	// Narrow: "hello dear" is 57px, over the 50px budget.
	narrow := NewWrapped(input, 50, face)
	if got, want := collectLines(narrow), []string{"hello", "dear", "world"}; !slices.Equal(got, want) {
		t.Errorf("lines at width 50 = %q, want %q", got, want)
	}
}

// TestWrapNoBudget tests that without a pixel budget only explicit
// newlines become breaks.
func TestWrapNoBudget(t *testing.T) {
	face := newTestFace()
	const input = "a very long line that would certainly wrap under any sensible budget\nshort"

	w := NewWrapped(input, 0, face)
	if got, want := collectLines(w), []string{
		"a very long line that would certainly wrap under any sensible budget",
		"short",
	}; !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

// TestWrapShortLines tests that text already narrower than the budget
// keeps its original lines verbatim.
func TestWrapShortLines(t *testing.T) {
	face := newTestFace()
	const input = "This is some text\nwith some lines that\nare quite short."

	w := NewWrapped(input, 400, face)
	if got, want := collectLines(w), strings.Split(input, "\n"); !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

// TestWrapHardSplit tests that a single token wider than the budget is
// split mid-word.
func TestWrapHardSplit(t *testing.T) {
	face := newTestFace()

	// Ten 6px glyphs against a 25px budget: four glyphs per line.
	w := NewWrapped("aaaaaaaaaa", 25, face)
	if got, want := collectLines(w), []string{"aaaa", "aaaa", "aa"}; !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

// TestWrapTrailingNewline tests that a trailing newline yields a
// trailing empty display line.
func TestWrapTrailingNewline(t *testing.T) {
	face := newTestFace()

	w := NewWrapped("hi\n", 100, face)
	if got, want := collectLines(w), []string{"hi", ""}; !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

// TestWrapEmpty tests the empty string.
func TestWrapEmpty(t *testing.T) {
	face := newTestFace()

	w := NewWrapped("", 100, face)
	if got := w.LineCount(); got != 1 {
		t.Fatalf("LineCount() = %d, want 1", got)
	}
	if got := collectLines(w); len(got) != 1 || got[0] != "" {
		t.Errorf("lines = %q, want one empty line", got)
	}
}

// TestWrapIdempotent tests that re-wrapping narrow, wide, then narrow
// again reproduces identical breakpoints.
func TestWrapIdempotent(t *testing.T) {
	face := newTestFace()
	const input = "the quick brown fox jumps over the lazy dog\nand then some"

	w := NewWrapped(input, 80, face)
	first := slices.Clone(w.breaks)

	w.Rewrap(400, face)
	w.Rewrap(80, face)

	if !slices.Equal(w.breaks, first) {
		t.Errorf("breakpoints after round trip = %v, want %v", w.breaks, first)
	}
	if w.Text() != input {
		t.Error("re-wrapping mutated the underlying text")
	}
}

// TestWrapBreakpointInvariants tests the structural breakpoint
// invariants across budgets.
func TestWrapBreakpointInvariants(t *testing.T) {
	face := newTestFace()
	const input = "some words to wrap at a variety of widths\nwith a hard break too"

	for _, width := range []int{0, 10, 25, 50, 100, 1000} {
		w := NewWrapped(input, width, face)

		if last := w.breaks[len(w.breaks)-1]; last != len(input) {
			t.Errorf("width %d: final breakpoint %d, want %d", width, last, len(input))
		}
		for i := 1; i < len(w.breaks); i++ {
			if w.breaks[i] <= w.breaks[i-1] {
				t.Errorf("width %d: breakpoints not strictly increasing: %v", width, w.breaks)
			}
		}
		if got := len(collectLines(w)); got != w.LineCount() {
			t.Errorf("width %d: iterated %d lines, LineCount() = %d", width, got, w.LineCount())
		}
	}
}

// TestWrapReconstruct tests that joining the display lines recovers the
// original text up to whitespace consumed at break points.
func TestWrapReconstruct(t *testing.T) {
	face := newTestFace()
	const input = "or does the error always come first, it was after all grace"

	w := NewWrapped(input, 90, face)
	joined := strings.Join(collectLines(w), " ")
	if joined != input {
		t.Errorf("reconstructed %q, want %q", joined, input)
	}
}

// TestWrapSetText tests that SetText invalidates the breakpoints until
// the next rewrap.
func TestWrapSetText(t *testing.T) {
	face := newTestFace()

	w := NewWrapped("first", 100, face)
	w.SetText("second text")

	if got := w.LineCount(); got != 0 {
		t.Errorf("LineCount() after SetText = %d, want 0", got)
	}
	w.Rewrap(100, face)
	if got, want := collectLines(w), []string{"second text"}; !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

// TestMaxLineWidth tests the widest-line measurement.
func TestMaxLineWidth(t *testing.T) {
	face := newTestFace()

	w := NewWrapped("hello dear\nworld", 50, face)
	// Lines are "hello" (30), "dear" (24), "world" (30).
	if got := w.MaxLineWidth(face); got != 30 {
		t.Errorf("MaxLineWidth() = %d, want 30", got)
	}
}
