package panel

// Update runs the per-frame update pass top-down: the element's own hook
// first, then the children of Row and Stack content. This is the only
// point where content or constraints may be author-mutated per frame.
func (e *Element[D]) Update(data *D) {
	if e.update != nil {
		e.update(e, data)
	}

	switch c := e.Content.(type) {
	case Row[D]:
		for _, child := range c.Children {
			child.Update(data)
		}
	case Stack[D]:
		for _, child := range c.Children {
			child.Update(data)
		}
	}
}

// BakeSize runs the bottom-up bake pass: children first, then this
// element's intrinsic size from content, then the baked size per the
// sizing strategy. The hint carries the nearest ancestor maxwidth down
// for paragraph re-wrapping; an element's own MaxWidth replaces it for
// its descendants.
//
// BakeSize panics when MinWidth > MaxWidth or MinHeight > MaxHeight.
func (e *Element[D]) BakeSize(hint Dim) {
	if mn, ok := e.Size.MinWidth.Get(); ok {
		if mx, ok := e.Size.MaxWidth.Get(); ok && mn > mx {
			panic("panel: minwidth greater than maxwidth")
		}
	}
	if mn, ok := e.Size.MinHeight.Get(); ok {
		if mx, ok := e.Size.MaxHeight.Get(); ok && mn > mx {
			panic("panel: minheight greater than maxheight")
		}
	}

	if e.Size.MaxWidth.IsSet() {
		hint = e.Size.MaxWidth
	}

	var width, height int
	switch c := e.Content.(type) {
	case Text:
		width = e.Style.Font.Advance(c.S)
		height = e.Style.Font.Height()
	case Paragraph:
		c.Text.Rewrap(hint.Or(0), e.Style.Font)
		width = c.Text.MaxLineWidth(e.Style.Font)
		height = e.Style.Font.Height() * c.Text.LineCount()
	case Custom:
		width = c.Block.Width()
		height = c.Block.Height()
	case Row[D]:
		for _, child := range c.Children {
			child.BakeSize(hint)
			d := child.OverallSize()
			width += d.Width
			height = max(height, d.Height)
		}
	case Stack[D]:
		for _, child := range c.Children {
			child.BakeSize(hint)
			d := child.OverallSize()
			width = max(width, d.Width)
			height += d.Height
		}
	}

	switch e.Size.Strategy {
	case Chonker:
		width = max(e.Size.MaxWidth.Or(0), width)
		height = max(e.Size.MaxHeight.Or(0), height)
	case Smollest:
		width = min(e.Size.MinWidth.Or(width), width)
		height = min(e.Size.MinHeight.Or(height), height)
	}

	e.Size.bakedWidth = width
	e.Size.bakedHeight = height
}

// FillSize returns the baked size clamped into the element's min/max
// constraints, excluding padding. Valid only after a bake pass.
func (e *Element[D]) FillSize() Dimensions {
	return Dimensions{
		Width:  clampDim(e.Size.bakedWidth, e.Size.MinWidth, e.Size.MaxWidth),
		Height: clampDim(e.Size.bakedHeight, e.Size.MinHeight, e.Size.MaxHeight),
	}
}

// MinFillSize returns the smallest fill size achievable under the
// element's constraints: the min constraint where set, otherwise the
// current fill size.
func (e *Element[D]) MinFillSize() Dimensions {
	d := e.FillSize()
	if mn, ok := e.Size.MinWidth.Get(); ok {
		d.Width = mn
	}
	if mn, ok := e.Size.MinHeight.Get(); ok {
		d.Height = mn
	}
	return d
}

// MaxFillSize returns the largest fill size achievable under the
// element's constraints: the max constraint where set, otherwise the
// current fill size.
func (e *Element[D]) MaxFillSize() Dimensions {
	d := e.FillSize()
	if mx, ok := e.Size.MaxWidth.Get(); ok {
		d.Width = mx
	}
	if mx, ok := e.Size.MaxHeight.Get(); ok {
		d.Height = mx
	}
	return d
}

// OverallSize returns the fill size plus padding. Valid only after a
// bake pass.
func (e *Element[D]) OverallSize() Dimensions {
	d := e.FillSize()
	return Dimensions{
		Width:  d.Width + e.Pad.Left + e.Pad.Right,
		Height: d.Height + e.Pad.Top + e.Pad.Bottom,
	}
}

// clampDim clamps v into the optional [lo, hi] range. The max bound is
// applied first so a min constraint wins over a smaller max.
func clampDim(v int, lo, hi Dim) int {
	if h, ok := hi.Get(); ok && v > h {
		v = h
	}
	if l, ok := lo.Get(); ok && v < l {
		v = l
	}
	return v
}
