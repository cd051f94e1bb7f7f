package panel

import (
	"image"
	"image/color"
	"image/png"
	"iter"
	"os"
)

// Block is an owned, row-major rectangular RGBA pixel buffer. It is the
// compositing currency exchanged between layout and the output buffer
// and has no knowledge of the element tree.
//
// Invariant: len(buf) == width * height.
type Block struct {
	width  int
	height int
	buf    []Pixel
}

// NewBlock creates a block of the given dimensions filled with background.
func NewBlock(width, height int, background Pixel) *Block {
	buf := make([]Pixel, width*height)
	for i := range buf {
		buf[i] = background
	}
	return &Block{width: width, height: height, buf: buf}
}

// Width returns the width of the block in pixels.
func (b *Block) Width() int { return b.width }

// Height returns the height of the block in pixels.
func (b *Block) Height() int { return b.height }

// row returns the pixel slice for row y.
func (b *Block) row(y int) []Pixel {
	return b.buf[y*b.width : (y+1)*b.width]
}

// Rows returns an iterator over the rows in this block, yielding the row
// index and the row's pixels. The yielded slices alias the block's buffer.
func (b *Block) Rows() iter.Seq2[int, []Pixel] {
	return func(yield func(int, []Pixel) bool) {
		if b.width == 0 {
			return
		}
		for y := 0; y < b.height; y++ {
			if !yield(y, b.row(y)) {
				return
			}
		}
	}
}

// Paint blits other onto this block row by row, clipped to this block's
// bounds on both axes. If other is wider or taller than the remaining
// space after (startX, startY), only the overlapping region is copied.
//
// Painting with an origin outside the target bounds is a programming
// error: Paint panics when startX > b.Width() or startY > b.Height().
func (b *Block) Paint(other *Block, startX, startY int) {
	if other.width == 0 || b.width == 0 {
		return
	}
	if startX < 0 || startX > b.width {
		panic("panel: paint origin outside target width")
	}
	if startY < 0 || startY > b.height {
		panic("panel: paint origin outside target height")
	}
	dx := min(other.width, b.width-startX)
	dy := min(other.height, b.height-startY)
	for y := 0; y < dy; y++ {
		copy(b.row(startY+y)[startX:startX+dx], other.row(y)[:dx])
	}
}

// DrawOnto flattens the block's row-major RGBA buffer into the provided
// byte slice with no format conversion. The destination must hold at
// least Width*Height*PixelSize bytes; a smaller destination is a
// programming error and panics.
func (b *Block) DrawOnto(pixels []byte) {
	if len(pixels) < len(b.buf)*PixelSize {
		panic("panel: pixel buffer is not large enough")
	}
	for i, px := range b.buf {
		copy(pixels[i*PixelSize:], px[:])
	}
}

// sliceRows returns a new block containing up to height rows of b
// starting at row start. A negative start reads from the top; a start at
// or beyond the block's height yields an empty (zero-height) slice.
func (b *Block) sliceRows(start, height int) *Block {
	start = max(start, 0)
	if start >= b.height || height <= 0 {
		return &Block{width: b.width}
	}
	h := min(b.height-start, height)
	buf := make([]Pixel, h*b.width)
	copy(buf, b.buf[start*b.width:(start+h)*b.width])
	return &Block{width: b.width, height: h, buf: buf}
}

// ToImage converts the block to an image.RGBA.
func (b *Block) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i, px := range b.buf {
		copy(img.Pix[i*4:], px[:])
	}
	return img
}

// SavePNG saves the block to a PNG file.
func (b *Block) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.ToImage())
}

// At implements the image.Image interface.
func (b *Block) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.NRGBA{}
	}
	return b.buf[y*b.width+x].Color()
}

// Bounds implements the image.Image interface.
func (b *Block) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Block) ColorModel() color.Model {
	return color.NRGBAModel
}
