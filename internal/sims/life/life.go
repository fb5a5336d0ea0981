package life

import (
	"strconv"

	"golang.org/x/sync/errgroup"

	"torus-life/internal/core"
)

// Cell states stored in the grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// kernel is the cross-correlation kernel for the convolution step: weight 1
// on each of the 8 neighbors, 0 on the center cell.
var kernel = [3][3]uint8{
	{1, 1, 1},
	{1, 0, 1},
	{1, 1, 1},
}

// ruleTable maps (state, neighbor count) to the next state. It tabulates
// "alive survives on 2 or 3 neighbors, dead births on exactly 3", which lets
// the convolution step derive the next grid with plain elementwise lookups
// instead of a conditional per cell. Counts run 0..8.
var ruleTable = [2][9]uint8{
	{0, 0, 0, 1, 0, 0, 0, 0, 0},
	{0, 0, 1, 1, 0, 0, 0, 0, 0},
}

// Life implements Conway's Game of Life on a toroidal square board. It owns
// the current and next generation buffers plus a neighbor-count scratch
// buffer for the convolution step, all reused across steps. The next
// generation is always computed in full from the frozen current buffer
// before the buffers swap.
type Life struct {
	cfg    Config
	cur    *core.ByteGrid
	nxt    *core.ByteGrid
	counts []uint8
	gen    int
}

// New returns a Life simulation with the provided parameters and the
// default algorithm, or an error if they fail validation.
func New(n, maxStep int, seed int64, sparseness float64) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Dim = n
	cfg.MaxStep = maxStep
	cfg.Seed = seed
	cfg.Sparseness = sparseness
	return NewWithConfig(cfg)
}

// NewWithConfig validates the configuration, allocates the board, and
// seeds the initial generation.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Life{
		cfg: cfg,
		cur: core.NewByteGrid(cfg.Dim, cfg.Dim),
		nxt: core.NewByteGrid(cfg.Dim, cfg.Dim),
	}
	if cfg.Algorithm == AlgorithmConvolution {
		l.counts = make([]uint8, cfg.Dim*cfg.Dim)
	}
	l.Reset(cfg.Seed)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Dim, H: l.cfg.Dim} }

// Cells exposes the current grid values. The slice is valid until the next
// call to Step or Reset.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Snapshot returns a copy of the current grid, detached from the buffers
// the simulation mutates.
func (l *Life) Snapshot() []uint8 {
	return append([]uint8(nil), l.cur.Cells()...)
}

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() int { return l.gen }

// Population returns the number of live cells on the board.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		if c == Alive {
			n++
		}
	}
	return n
}

// Reset refills the board with a seeded Bernoulli draw where Sparseness is
// the probability of a dead cell. A seed of 0 reuses the configured seed.
// Identical seed and parameters reproduce a bit-identical board, so runs
// under different algorithms start from the same state.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	rng := core.NewRNG(seed).Source()
	core.FillBernoulli(rng, l.cur.Cells(), l.cfg.Sparseness)
	l.gen = 0
}

// Step advances the simulation by one generation using the configured
// algorithm.
func (l *Life) Step() {
	switch l.cfg.Algorithm {
	case AlgorithmConvolution:
		l.stepConvolution()
	default:
		l.stepReference()
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Run advances the simulation up to MaxStep generations, invoking yield
// with the generation number and cell buffer after each step. A nil yield
// just steps; returning false stops the run early. The loop only
// sequences: it never switches algorithms mid-run.
func (l *Life) Run(yield func(gen int, cells []uint8) bool) {
	for i := 0; i < l.cfg.MaxStep; i++ {
		l.Step()
		if yield != nil && !yield(l.gen, l.cur.Cells()) {
			return
		}
	}
}

// stepReference computes the next generation by explicit per-cell neighbor
// summation over the 8 toroidal neighbors, applying the rule with plain
// branches. It is the slow path, kept as the correctness oracle for the
// convolution step.
func (l *Life) stepReference() {
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	l.forEachRowBand(func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < l.cfg.Dim; x++ {
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						neighbors += int(cur[l.cur.WrapIndex(x+dx, y+dy)])
					}
				}
				idx := l.cur.Index(x, y)
				alive := cur[idx] == Alive
				if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
					nxt[idx] = Alive
				} else {
					nxt[idx] = Dead
				}
			}
		}
	})
}

// stepConvolution computes the same transition in two bulk passes: a 3x3
// cross-correlation of the board into the counts buffer, then an
// elementwise rule-table combine with no per-cell branching. Both passes
// wrap through the same core.Wrap helper as the reference step, so the
// counts match it exactly, degenerate board sizes included.
func (l *Life) stepConvolution() {
	l.convolve()
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	l.forEachRowBand(func(y0, y1 int) {
		for i := y0 * l.cfg.Dim; i < y1*l.cfg.Dim; i++ {
			nxt[i] = ruleTable[cur[i]][l.counts[i]]
		}
	})
}

// convolve cross-correlates the board with the neighbor kernel under
// toroidal boundary handling, writing per-cell live-neighbor counts.
func (l *Life) convolve() {
	if len(l.counts) != l.cfg.Dim*l.cfg.Dim {
		l.counts = make([]uint8, l.cfg.Dim*l.cfg.Dim)
	}
	cur := l.cur.Cells()
	l.forEachRowBand(func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < l.cfg.Dim; x++ {
				var sum uint8
				for ky := 0; ky < 3; ky++ {
					for kx := 0; kx < 3; kx++ {
						sum += kernel[ky][kx] * cur[l.cur.WrapIndex(x+kx-1, y+ky-1)]
					}
				}
				l.counts[l.cur.Index(x, y)] = sum
			}
		}
	})
}

// forEachRowBand invokes fn over row ranges covering the whole board. With
// Workers above 1 the bands run concurrently; every band reads only the
// frozen current buffer and writes disjoint rows, and the Wait below is the
// barrier before the caller swaps buffers.
func (l *Life) forEachRowBand(fn func(y0, y1 int)) {
	workers := l.cfg.Workers
	if workers <= 1 {
		fn(0, l.cfg.Dim)
		return
	}
	if workers > l.cfg.Dim {
		workers = l.cfg.Dim
	}
	band := (l.cfg.Dim + workers - 1) / workers

	var eg errgroup.Group
	for start := 0; start < l.cfg.Dim; start += band {
		y0, y1 := start, min(start+band, l.cfg.Dim)
		eg.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	// Bands never fail; Wait only serves as the pre-swap barrier.
	_ = eg.Wait()
}

// Parameters exposes the run parameters for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "n", Label: "Board", Value: strconv.Itoa(l.cfg.Dim)},
		{Key: "seed", Label: "Seed", Value: strconv.FormatInt(l.cfg.Seed, 10)},
		{Key: "sparseness", Label: "Sparseness", Value: strconv.FormatFloat(l.cfg.Sparseness, 'f', 2, 64)},
		{Key: "algo", Label: "Algorithm", Value: string(l.cfg.Algorithm)},
		{Key: "workers", Label: "Workers", Value: strconv.Itoa(l.cfg.Workers)},
	}}
}

// SetFloatParameter updates a tunable from the HUD. Sparseness clamps to
// [0, 1] and takes effect on the next reset.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "sparseness":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		l.cfg.Sparseness = value
		return true
	}
	return false
}

// ToggleAlgorithm switches step implementations and restarts the run, so a
// single run never interleaves the two.
func (l *Life) ToggleAlgorithm() {
	if l.cfg.Algorithm == AlgorithmReference {
		l.cfg.Algorithm = AlgorithmConvolution
	} else {
		l.cfg.Algorithm = AlgorithmReference
	}
	l.Reset(0)
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
