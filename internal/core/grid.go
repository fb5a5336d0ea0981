package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap reduces a coordinate onto [0, n) using true mathematical modulo, so
// negative intermediates land on the far edge: Wrap(-1, n) == n-1. Every
// toroidal access in the module goes through this one function.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// WrapIndex returns the linear index for (x, y) after toroidal wrapping.
func (g *ByteGrid) WrapIndex(x, y int) int {
	return Wrap(y, g.H)*g.W + Wrap(x, g.W)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
