package life

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Algorithm selects which step implementation a simulation uses. A run
// sticks with one algorithm from construction to completion.
type Algorithm string

const (
	// AlgorithmReference is the per-cell neighbor-counting step.
	AlgorithmReference Algorithm = "reference"
	// AlgorithmConvolution is the kernel-pass, branch-free step.
	AlgorithmConvolution Algorithm = "convolution"
)

// Validation errors reported by Config.Validate.
var (
	ErrInvalidDimension  = errors.New("life: dimension must be positive")
	ErrInvalidSparseness = errors.New("life: sparseness must be within [0, 1]")
	ErrInvalidAlgorithm  = errors.New("life: unknown step algorithm")
)

// Config holds the parameters for a Game of Life run.
type Config struct {
	// Dim is the edge length of the square board.
	Dim int `json:"dim"`

	// MaxStep bounds the number of generations Run advances.
	MaxStep int `json:"max_step"`

	// Seed drives the Bernoulli fill of the initial board.
	Seed int64 `json:"seed"`

	// Sparseness is the probability that a cell starts dead. The closed
	// boundary values 0 and 1 are accepted and yield the degenerate
	// all-alive / all-dead boards.
	Sparseness float64 `json:"sparseness"`

	// Algorithm names the step implementation used for the whole run.
	Algorithm Algorithm `json:"algorithm"`

	// Workers row-bands each step across this many goroutines. Values
	// below 2 keep the step single-threaded.
	Workers int `json:"workers"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Dim:        256,
		MaxStep:    1000,
		Seed:       42,
		Sparseness: 0.8,
		Algorithm:  AlgorithmConvolution,
		Workers:    1,
	}
}

// Validate reports the first constraint the configuration violates.
func (c Config) Validate() error {
	if c.Dim <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "got %d", c.Dim)
	}
	if c.MaxStep < 0 {
		return errors.Errorf("life: max step must be non-negative, got %d", c.MaxStep)
	}
	// The negated form also rejects NaN.
	if !(c.Sparseness >= 0 && c.Sparseness <= 1) {
		return errors.Wrapf(ErrInvalidSparseness, "got %v", c.Sparseness)
	}
	switch c.Algorithm {
	case AlgorithmReference, AlgorithmConvolution:
	default:
		return errors.Wrapf(ErrInvalidAlgorithm, "got %q", c.Algorithm)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Dim = parsed
		}
	}
	if v, ok := cfg["max_step"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MaxStep = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["sparseness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Sparseness = parsed
		}
	}
	if v, ok := cfg["algo"]; ok {
		c.Algorithm = Algorithm(v)
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}

// LoadConfig reads a JSON configuration file, applying it on top of the
// defaults, and validates the result.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "life: failed to read config %s", path)
	}
	if err = json.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "life: failed to parse config %s", path)
	}
	return c, c.Validate()
}
