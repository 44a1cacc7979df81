package fibonacci

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/agbru/fibbench/internal/progress"
)

// allStrategies returns the two core strategy implementations.
func allStrategies() []coreCalculator {
	return []coreCalculator{
		RecursiveStrategy{},
		IterativeStrategy{},
	}
}

// calcF is a shorthand that computes F(n) with the given strategy.
func calcF(t *testing.T, s coreCalculator, n uint64) *big.Int {
	t.Helper()
	result, err := s.CalculateCore(context.Background(), nil, n, Options{})
	if err != nil {
		t.Fatalf("%s: F(%d) returned error: %v", s.Name(), n, err)
	}
	return result
}

// TestKnownTerms checks the concrete scenarios from the engine contract:
// boundary terms and selected reference values.
func TestKnownTerms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "1"},
		{3, "2"},
		{7, "13"},
		{10, "55"},
		{20, "6765"},
	}

	for _, s := range allStrategies() {
		for _, tt := range tests {
			got := calcF(t, s, tt.n)
			if got.String() != tt.want {
				t.Errorf("%s: F(%d) = %s, want %s", s.Name(), tt.n, got, tt.want)
			}
		}
	}
}

// TestIterative_Uint64Boundary checks the fast-path/big.Int crossover.
func TestIterative_Uint64Boundary(t *testing.T) {
	t.Parallel()
	s := IterativeStrategy{}

	f93 := calcF(t, s, MaxUint64Index)
	if f93.String() != "12200160415121876738" {
		t.Errorf("F(93) = %s, want 12200160415121876738", f93)
	}

	// F(94) exceeds uint64; must come out of the big.Int path and satisfy
	// the recurrence against F(93) and F(92).
	f92 := calcF(t, s, 92)
	f94 := calcF(t, s, 94)
	want := new(big.Int).Add(f92, f93)
	if f94.Cmp(want) != 0 {
		t.Errorf("F(94) = %s, want %s", f94, want)
	}
}

// TestStrategiesAgree verifies recursive and iterative produce identical
// terms across the practical recursive range.
func TestStrategiesAgree(t *testing.T) {
	t.Parallel()
	rec := RecursiveStrategy{}
	iter := IterativeStrategy{}

	for n := uint64(0); n <= 25; n++ {
		r := calcF(t, rec, n)
		i := calcF(t, iter, n)
		if r.Cmp(i) != 0 {
			t.Errorf("F(%d): recursive = %s, iterative = %s", n, r, i)
		}
	}
}

// TestRecursive_Cancellation verifies the recursive strategy observes
// context cancellation mid-calculation.
func TestRecursive_Cancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// F(55) is far beyond what completes in 10ms with naive recursion.
	_, err := RecursiveStrategy{}.CalculateCore(ctx, nil, 55, Options{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

// TestIterative_Cancellation verifies the big.Int path observes
// cancellation.
func TestIterative_Cancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := IterativeStrategy{}.CalculateCore(ctx, nil, 100_000, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// TestFibCalculator_ProgressReporting verifies the public wrapper emits a
// final 1.0 update tagged with the calculator index.
func TestFibCalculator_ProgressReporting(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(IterativeStrategy{})
	progressChan := make(chan progress.ProgressUpdate, 256)

	result, err := calc.Calculate(context.Background(), progressChan, 2, 500, Options{})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	close(progressChan)

	if result.Sign() <= 0 {
		t.Errorf("F(500) should be positive, got %s", result)
	}

	var last progress.ProgressUpdate
	count := 0
	for u := range progressChan {
		if u.CalculatorIndex != 2 {
			t.Errorf("update index = %d, want 2", u.CalculatorIndex)
		}
		last = u
		count++
	}
	if count == 0 {
		t.Fatal("no progress updates received")
	}
	if last.Value != 1.0 {
		t.Errorf("final progress = %v, want 1.0", last.Value)
	}
}

// TestFibCalculator_NilChannel verifies calculation works without a
// progress channel.
func TestFibCalculator_NilChannel(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(RecursiveStrategy{})
	result, err := calc.Calculate(context.Background(), nil, 0, 10, Options{})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if result.String() != "55" {
		t.Errorf("F(10) = %s, want 55", result)
	}
}

// TestDefaultFactory covers registry lookup and listing.
func TestDefaultFactory(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	list := factory.List()
	if len(list) != 2 || list[0] != "iterative" || list[1] != "recursive" {
		t.Errorf("List() = %v, want [iterative recursive]", list)
	}

	for _, name := range list {
		calc, err := factory.Get(name)
		if err != nil {
			t.Errorf("Get(%q) returned error: %v", name, err)
		}
		if calc == nil {
			t.Errorf("Get(%q) returned nil calculator", name)
		}
	}

	if _, err := factory.Get("matrix"); err == nil {
		t.Error("Get of unknown algorithm should fail")
	}

	if len(factory.GetAll()) != 2 {
		t.Errorf("GetAll() size = %d, want 2", len(factory.GetAll()))
	}
}

// TestFibUint64 pins the uint64 fast path against selected known values.
func TestFibUint64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{50, 12586269025},
		{93, 12200160415121876738},
	}
	for _, tt := range tests {
		if got := fibUint64(tt.n); got != tt.want {
			t.Errorf("fibUint64(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// TestTotalAdditions verifies the recursion work estimate for small n,
// where the exact count F(n+1)-1 is known.
func TestTotalAdditions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want float64
	}{
		{3, 2},   // F(4)-1
		{7, 20},  // F(8)-1
		{10, 88}, // F(11)-1
	}
	for _, tt := range tests {
		if got := totalAdditions(tt.n); got != tt.want {
			t.Errorf("totalAdditions(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}
