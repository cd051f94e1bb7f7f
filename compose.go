package panel

// Block recursively renders the element into a freshly allocated outer
// block sized to OverallSize, with the content composited at fill size
// and padded by (Pad.Left, Pad.Top). Valid only after a bake pass.
func (e *Element[D]) Block() *Block {
	fill := e.FillSize()
	inner := NewBlock(fill.Width, fill.Height, e.Style.Background)

	switch c := e.Content.(type) {
	case Text:
		drawText(inner, c.S, c.Align, e.Style)
	case Paragraph:
		lineHeight := e.Style.Font.Height()
		y := 0
		for line := range c.Text.Lines() {
			lineBlock := NewBlock(fill.Width, lineHeight, e.Style.Background)
			drawText(lineBlock, line, c.Align, e.Style)
			inner.Paint(lineBlock, 0, y)
			y += lineHeight
			if y > fill.Height {
				break
			}
		}
	case Custom:
		if c.Block.Width() != fill.Width || c.Block.Height() != fill.Height {
			panic("panel: custom content dimensions do not match fill size")
		}
		inner.Paint(c.Block, 0, 0)
	case Row[D]:
		composeRow(inner, c.Children)
	case Stack[D]:
		if offset, ok := e.Scroll.Get(); ok {
			e.composeScrolled(inner, c.Children, offset)
		} else {
			composeStack(inner, c.Children)
		}
	}

	overall := e.OverallSize()
	outer := NewBlock(overall.Width, overall.Height, e.Style.Background)
	outer.Paint(inner, e.Pad.Left, e.Pad.Top)
	return outer
}

// drawText rasterizes a single line of text into dst. The glyphs are
// drawn into a scrap block exactly as wide as the measured line, which
// is then copied into dst according to the alignment. A line wider than
// dst is clipped from the left, except for Right alignment which keeps
// the tail.
func drawText(dst *Block, s string, align Alignment, style Style) {
	scrapWidth := style.Font.Advance(s)
	if dst.width == 0 || scrapWidth == 0 {
		Logger().Debug("skipping zero-width text draw",
			"dst_width", dst.width, "text_width", scrapWidth)
		return
	}

	scrap := NewBlock(scrapWidth, dst.height, style.Background)
	x0 := 0
	for _, r := range s {
		g, ok := style.Font.Glyph(r)
		if !ok {
			continue
		}
		for y := 0; y < g.Height && y < scrap.height; y++ {
			row := scrap.row(y)
			for x := 0; x < g.Width; x++ {
				if g.On(x, y) {
					row[x0+x] = style.Foreground
				}
			}
		}
		x0 += g.Width
	}

	rows := min(dst.height, scrap.height)
	switch {
	case align == AlignCenter && scrap.width < dst.width:
		start := (dst.width - scrap.width) / 2
		for y := 0; y < rows; y++ {
			copy(dst.row(y)[start:start+scrap.width], scrap.row(y))
		}
	case align == AlignRight:
		dstStart := max(dst.width-scrap.width, 0)
		scrapStart := max(scrap.width-dst.width, 0)
		for y := 0; y < rows; y++ {
			copy(dst.row(y)[dstStart:], scrap.row(y)[scrapStart:])
		}
	default:
		// Left, and Center when the line overflows its box.
		end := min(dst.width, scrap.width)
		for y := 0; y < rows; y++ {
			copy(dst.row(y)[:end], scrap.row(y)[:end])
		}
	}
}

// flexRoom returns the integer space each flagged edge absorbs.
func flexRoom(leftover, flagged int) int {
	if flagged == 0 || leftover <= 0 {
		return 0
	}
	return leftover / flagged
}

// composeRow paints children left to right into dst, distributing
// horizontal leftover space across flex-flagged left/right edges and
// vertical leftover across flagged top/bottom edges. Children past the
// destination's right edge are clipped away.
func composeRow[D any](dst *Block, children []*Element[D]) {
	totalWidth, maxHeight := 0, 0
	flexHor, flexVer := 0, 0
	for _, child := range children {
		d := child.OverallSize()
		totalWidth += d.Width
		maxHeight = max(maxHeight, d.Height)
		flexHor += countFlags(child.Flex.Left, child.Flex.Right)
		flexVer += countFlags(child.Flex.Top, child.Flex.Bottom)
	}
	roomHor := flexRoom(dst.width-totalWidth, flexHor)
	roomVer := flexRoom(dst.height-maxHeight, flexVer)

	x := 0
	for _, child := range children {
		if child.Flex.Left {
			x += roomHor
		}
		if x >= dst.width {
			break
		}
		y := 0
		if child.Flex.Top {
			y += roomVer
		}
		b := child.Block()
		dst.Paint(b, x, y)
		x += b.Width()
		if child.Flex.Right {
			x += roomHor
		}
	}
}

// composeStack paints children top to bottom into dst, the vertical
// mirror of composeRow. Children past the bottom edge are clipped away.
func composeStack[D any](dst *Block, children []*Element[D]) {
	totalHeight, maxWidth := 0, 0
	flexHor, flexVer := 0, 0
	for _, child := range children {
		d := child.OverallSize()
		totalHeight += d.Height
		maxWidth = max(maxWidth, d.Width)
		flexHor += countFlags(child.Flex.Left, child.Flex.Right)
		flexVer += countFlags(child.Flex.Top, child.Flex.Bottom)
	}
	roomHor := flexRoom(dst.width-maxWidth, flexHor)
	roomVer := flexRoom(dst.height-totalHeight, flexVer)

	y := 0
	for _, child := range children {
		if child.Flex.Top {
			y += roomVer
		}
		if y >= dst.height {
			break
		}
		x := 0
		if child.Flex.Left {
			x += roomHor
		}
		b := child.Block()
		dst.Paint(b, x, y)
		y += b.Height()
		if child.Flex.Bottom {
			y += roomVer
		}
	}
}

// composeScrolled builds the full unclipped stack first, then extracts
// the visible vertical slice starting at offset rows. Scrolling past the
// end yields an empty slice.
func (e *Element[D]) composeScrolled(dst *Block, children []*Element[D], offset int) {
	fullHeight := 0
	for _, child := range children {
		fullHeight += child.OverallSize().Height
	}
	full := NewBlock(dst.width, fullHeight, e.Style.Background)
	composeStack(full, children)

	visible := full.sliceRows(offset, dst.height)
	if visible.height == 0 {
		Logger().Debug("scroll offset past stack end",
			"offset", offset, "stack_height", fullHeight)
		return
	}
	dst.Paint(visible, 0, 0)
}

// countFlags counts set booleans.
func countFlags(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
