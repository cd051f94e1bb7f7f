// Package text provides the font face interface and glyph-level text
// wrapping used by the panel layout engine.
//
// A Face is a fixed line-height glyph source: it measures pixel widths,
// reports the line height, and produces per-rune bitmaps as rectangular
// grids of on/off cells. FixedFace implements it over an in-memory glyph
// table; FromFontFace adapts any golang.org/x/image/font Face.
//
// WrappedText is a string with precomputed display-line breakpoints.
// Re-wrapping to a new pixel width budget recomputes the breakpoints in
// place without touching the underlying string, so resizing a paragraph
// never reallocates its text.
package text
