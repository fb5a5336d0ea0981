package core

import "testing"

func TestWrap(t *testing.T) {
	cases := []struct {
		v, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{6, 5, 1},
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
		{0, 1, 0},
		{-1, 1, 0},
		{8, 1, 0},
	}
	for _, tc := range cases {
		if got := Wrap(tc.v, tc.n); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tc.v, tc.n, got, tc.want)
		}
	}
}

func TestWrapIndex(t *testing.T) {
	g := NewByteGrid(4, 4)

	if got := g.WrapIndex(-1, -1); got != g.Index(3, 3) {
		t.Fatalf("(-1,-1) should wrap to the far corner, got index %d", got)
	}
	if got := g.WrapIndex(4, 0); got != g.Index(0, 0) {
		t.Fatalf("(4,0) should wrap to origin, got index %d", got)
	}
	if got := g.WrapIndex(2, 1); got != g.Index(2, 1) {
		t.Fatalf("in-range coordinates must be unchanged, got index %d", got)
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("non-positive dimensions should clamp to 1x1, got %dx%d", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("backing slice should hold one cell, got %d", len(g.Cells()))
	}
}
