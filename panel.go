package panel

// Panel owns a root element tree and the external data it is updated
// from, and drives the per-frame pipeline: update, bake, composite,
// blit. It is the single entry point used by the presentation layer.
type Panel[D any] struct {
	Width      int
	Height     int
	Foreground Pixel
	Background Pixel

	// Root is the element tree. Its shape may be changed between frames
	// by the driving loop, never by update callbacks on their own node.
	Root *Element[D]

	data D
}

// NewPanel creates a panel around root and computes the first layout;
// the panel's dimensions start at the tree's overall size.
func NewPanel[D any](root *Element[D], foreground, background Pixel, data D) *Panel[D] {
	root.BakeSize(Auto())
	d := root.OverallSize()
	return &Panel[D]{
		Width:      d.Width,
		Height:     d.Height,
		Foreground: foreground,
		Background: background,
		Root:       root,
		data:       data,
	}
}

// Data returns a mutable reference to the panel's data, for the driving
// loop to inject input-derived changes before the next Update.
func (p *Panel[D]) Data() *D {
	return &p.data
}

// Update runs the update pass over all elements with the panel's data,
// then bakes the layout against the panel's current width.
func (p *Panel[D]) Update() {
	p.Root.Update(&p.data)
	p.Root.BakeSize(Px(p.Width))
}

// Frame composites the element tree into a freshly painted block of the
// panel's dimensions.
func (p *Panel[D]) Frame() *Block {
	block := NewBlock(p.Width, p.Height, p.Background)
	block.Paint(p.Root.Block(), 0, 0)
	return block
}

// Draw composites the panel and blits it onto the provided pixel
// buffer, which must hold at least Width*Height*PixelSize bytes of
// row-major RGBA8.
func (p *Panel[D]) Draw(pixels []byte) {
	p.Frame().DrawOnto(pixels)
}

// Resize records new panel dimensions. A bake pass (Update) must run
// before the next composite, or sizes are stale.
func (p *Panel[D]) Resize(width, height int) {
	Logger().Info("panel resize", "width", width, "height", height)
	p.Width = width
	p.Height = height
}
