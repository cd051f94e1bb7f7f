// Package panel provides a retained-mode layout and rasterization engine
// for pixel-buffer UIs.
//
// # Overview
//
// panel builds small bitmap-font interfaces (status displays, text
// readers) as a tree of sizable, paddable, flexible boxes. Each frame the
// tree is updated from application data, laid out with a two-phase bake
// pass, composited into RGBA blocks, and blitted into a caller-owned
// byte buffer. The presentation layer (window, event loop, surface) stays
// entirely outside this package.
//
// # Quick Start
//
//	import (
//	    "github.com/gopanel/panel"
//	    "github.com/gopanel/panel/text"
//	)
//
//	face := loadFace() // any text.Face, e.g. text.FromFontFace(...)
//
//	root := panel.StackOf(face,
//	    panel.TextOf[appData](face, "hello dear world"),
//	)
//	p := panel.NewPanel(root, panel.Black, panel.White, appData{})
//
//	buf := make([]byte, p.Width*p.Height*panel.PixelSize)
//	p.Update()
//	p.Draw(buf)
//
// # Architecture
//
// The library is organized into:
//   - Root package: Block (pixel buffer), Element tree, layout, compositor, Panel
//   - text: font face interface, glyph bitmaps, wrapped text
//   - theme: TOML panel themes (colors, font path, scale)
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. All
// dimensions are whole pixels. Pixels are 4-byte [r, g, b, a] values
// copied verbatim; no alpha blending is performed.
//
// # Concurrency
//
// The frame pipeline is single-threaded and synchronous. A Panel and its
// element tree must be confined to one goroutine; font faces are shared
// read-only handles and are never mutated by the pipeline.
package panel
