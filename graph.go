package panel

import "math"

// Graph is a fixed-capacity series of samples for sparkline-style
// charts, newest sample first. Rendered with Render, it feeds Custom
// content in status panels.
type Graph struct {
	samples []float32
}

// NewGraph creates a zero-filled graph holding size samples.
func NewGraph(size int) *Graph {
	return &Graph{samples: make([]float32, size)}
}

// GraphOf creates a graph over the given samples. The slice is
// retained, not copied.
func GraphOf(samples []float32) *Graph {
	return &Graph{samples: samples}
}

// Push drops the oldest sample and inserts v at the front.
func (g *Graph) Push(v float32) {
	if len(g.samples) == 0 {
		return
	}
	copy(g.samples[1:], g.samples)
	g.samples[0] = v
}

// Rotate shifts the samples left by n positions, wrapping around.
func (g *Graph) Rotate(n int) {
	size := len(g.samples)
	if size == 0 {
		return
	}
	n %= size
	if n < 0 {
		n += size
	}
	rotated := make([]float32, 0, size)
	rotated = append(rotated, g.samples[n:]...)
	rotated = append(rotated, g.samples[:n]...)
	copy(g.samples, rotated)
}

// Len returns the number of samples.
func (g *Graph) Len() int { return len(g.samples) }

// Samples returns the underlying sample slice, newest first.
func (g *Graph) Samples() []float32 { return g.samples }

// Min returns the smallest sample, or 0 for an empty graph.
func (g *Graph) Min() float32 {
	if len(g.samples) == 0 {
		return 0
	}
	m := float32(math.Inf(1))
	for _, v := range g.samples {
		m = min(m, v)
	}
	return m
}

// Max returns the largest sample, or 0 for an empty graph.
func (g *Graph) Max() float32 {
	if len(g.samples) == 0 {
		return 0
	}
	m := float32(math.Inf(-1))
	for _, v := range g.samples {
		m = max(m, v)
	}
	return m
}

// Render draws the graph into a block one column per sample, scaling
// the samples into the block height and marking each with a single
// foreground pixel. Flat data renders along the bottom row.
func (g *Graph) Render(height int, foreground, background Pixel) *Block {
	width := len(g.samples)
	block := NewBlock(width, height, background)
	if width == 0 || height == 0 {
		return block
	}

	lo, hi := g.Min(), g.Max()
	span := hi - lo
	bottom := height - 1
	for x, v := range g.samples {
		y := bottom
		if span > 0 {
			y = bottom - int(math.Round(float64((v-lo)/span)*float64(bottom)))
		}
		block.row(y)[x] = foreground
	}
	return block
}
