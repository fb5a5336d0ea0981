package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	N          int
	Seed       int64
	Sparseness float64
	Algo       string
	Workers    int

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		N:          256,
		Seed:       42,
		Sparseness: 0.8,
		Algo:       "convolution",
		Workers:    1,
		Scale:      3,
		TPS:        30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.N, "n", c.N, "board edge length")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board")
	fs.Float64Var(&c.Sparseness, "sparseness", c.Sparseness, "probability a cell starts dead")
	fs.StringVar(&c.Algo, "algo", c.Algo, "step algorithm: reference or convolution")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per step (1 = single-threaded)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
}

// SimOverrides converts the simulation flags into the key/value form the
// sim registry factories consume.
func (c *Config) SimOverrides() map[string]string {
	return map[string]string{
		"n":          strconv.Itoa(c.N),
		"seed":       strconv.FormatInt(c.Seed, 10),
		"sparseness": strconv.FormatFloat(c.Sparseness, 'f', -1, 64),
		"algo":       c.Algo,
		"workers":    strconv.Itoa(c.Workers),
	}
}
