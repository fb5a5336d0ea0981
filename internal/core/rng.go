package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBernoulli fills the buffer with 0/1 values where pZero is the
// probability of a 0. pZero of 0 or 1 yields the degenerate all-1/all-0
// fills; the RNG is still advanced once per cell so the stream position
// stays independent of the probability.
func FillBernoulli(r *rand.Rand, buf []uint8, pZero float64) {
	for i := range buf {
		if r.Float64() < pZero {
			buf[i] = 0
		} else {
			buf[i] = 1
		}
	}
}
