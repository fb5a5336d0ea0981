package life

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"zero dimension", func(c *Config) { c.Dim = 0 }, ErrInvalidDimension},
		{"negative dimension", func(c *Config) { c.Dim = -3 }, ErrInvalidDimension},
		{"sparseness below range", func(c *Config) { c.Sparseness = -0.1 }, ErrInvalidSparseness},
		{"sparseness above range", func(c *Config) { c.Sparseness = 1.1 }, ErrInvalidSparseness},
		{"boundary sparseness accepted", func(c *Config) { c.Sparseness = 1 }, nil},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "simd" }, ErrInvalidAlgorithm},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.MaxStep = -1
	if cfg.Validate() == nil {
		t.Fatal("negative max step should be rejected")
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"n":          "64",
		"max_step":   "20",
		"seed":       "7",
		"sparseness": "0.25",
		"algo":       "reference",
		"workers":    "4",
	})

	if cfg.Dim != 64 || cfg.MaxStep != 20 || cfg.Seed != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Sparseness != 0.25 || cfg.Algorithm != AlgorithmReference || cfg.Workers != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should return defaults")
	}
	// Unparseable values fall back to defaults.
	if FromMap(map[string]string{"n": "lots"}).Dim != DefaultConfig().Dim {
		t.Fatal("bad dimension value should keep the default")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	body := []byte(`{"dim": 32, "max_step": 10, "seed": 5, "sparseness": 0.5, "algorithm": "reference"}`)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Dim != 32 || cfg.Algorithm != AlgorithmReference {
		t.Fatalf("unexpected config %+v", cfg)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Workers != DefaultConfig().Workers {
		t.Fatalf("workers should default, got %d", cfg.Workers)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file should error")
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"dim": -1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("invalid dimension in file should surface, got %v", err)
	}
}
