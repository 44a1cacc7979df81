package fibonacci

import (
	"context"
	"testing"
)

// The benchmarks document the asymptotic gap between the strategies:
// iterative is O(n), naive recursion is O(2^n). Run with
//
//	go test -bench=. -benchtime=1x ./internal/fibonacci
//
// and compare ns/op at matching n.

func benchmarkStrategy(b *testing.B, s coreCalculator, n uint64) {
	b.Helper()
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := s.CalculateCore(ctx, nil, n, Options{}); err != nil {
			b.Fatalf("F(%d) failed: %v", n, err)
		}
	}
}

func BenchmarkRecursive10(b *testing.B) { benchmarkStrategy(b, RecursiveStrategy{}, 10) }
func BenchmarkRecursive20(b *testing.B) { benchmarkStrategy(b, RecursiveStrategy{}, 20) }
func BenchmarkRecursive30(b *testing.B) { benchmarkStrategy(b, RecursiveStrategy{}, 30) }

func BenchmarkIterative10(b *testing.B) { benchmarkStrategy(b, IterativeStrategy{}, 10) }
func BenchmarkIterative30(b *testing.B) { benchmarkStrategy(b, IterativeStrategy{}, 30) }

// BenchmarkIterative1M exercises the big.Int accumulator path well past the
// uint64 boundary.
func BenchmarkIterative1M(b *testing.B) { benchmarkStrategy(b, IterativeStrategy{}, 1_000_000) }

// BenchmarkVerifyIterative measures the full verification pass.
func BenchmarkVerifyIterative(b *testing.B) {
	ctx := context.Background()
	calc := NewCalculator(IterativeStrategy{})
	for i := 0; i < b.N; i++ {
		if err := VerifyCalculator(ctx, calc, Options{}); err != nil {
			b.Fatalf("verification failed: %v", err)
		}
	}
}
