package life

import "testing"

func benchmarkStep(b *testing.B, algo Algorithm, workers int) {
	cfg := DefaultConfig()
	cfg.Dim = 256
	cfg.Sparseness = 0.5
	cfg.Algorithm = algo
	cfg.Workers = workers

	l, err := NewWithConfig(cfg)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Step()
	}
}

func BenchmarkStepReference(b *testing.B)   { benchmarkStep(b, AlgorithmReference, 1) }
func BenchmarkStepConvolution(b *testing.B) { benchmarkStep(b, AlgorithmConvolution, 1) }

func BenchmarkStepReferenceBanded(b *testing.B)   { benchmarkStep(b, AlgorithmReference, 4) }
func BenchmarkStepConvolutionBanded(b *testing.B) { benchmarkStep(b, AlgorithmConvolution, 4) }
