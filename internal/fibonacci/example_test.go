package fibonacci

import (
	"context"
	"fmt"
	"math/big"
)

// ExampleNewCalculator demonstrates creating a Calculator for each
// strategy implementation.
func ExampleNewCalculator() {
	recursive := NewCalculator(RecursiveStrategy{})
	iterative := NewCalculator(IterativeStrategy{})

	fmt.Println(recursive.Name())
	fmt.Println(iterative.Name())
	// Output:
	// Recursive (O(2^n), Naive)
	// Iterative (O(n), Two Accumulators)
}

// ExampleDefaultFactory demonstrates using the factory to obtain
// pre-registered calculators by name.
func ExampleDefaultFactory() {
	factory := NewDefaultFactory()

	// List available algorithms.
	fmt.Println(factory.List())

	// Get a calculator by name.
	calc, err := factory.Get("iterative")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := calc.Calculate(context.Background(), nil, 0, 10, Options{})
	if err != nil {
		fmt.Printf("Calculation error: %v\n", err)
		return
	}

	fmt.Println(result)
	// Output:
	// [iterative recursive]
	// 55
}

// ExampleVerify demonstrates checking a term function against the
// reference sequence.
func ExampleVerify() {
	iterative := IterativeStrategy{}
	err := Verify(context.Background(), iterative.Name(), func(ctx context.Context, n uint64) (*big.Int, error) {
		return iterative.CalculateCore(ctx, nil, n, Options{})
	})
	fmt.Println(err)
	// Output:
	// <nil>
}

// Example_smallValues shows the terms at and around the boundary
// conditions.
func Example_smallValues() {
	calc := NewCalculator(IterativeStrategy{})

	for _, n := range []uint64{0, 1, 2, 7, 10} {
		result, _ := calc.Calculate(context.Background(), nil, 0, n, Options{})
		fmt.Printf("F(%d) = %s\n", n, result)
	}
	// Output:
	// F(0) = 0
	// F(1) = 1
	// F(2) = 1
	// F(7) = 13
	// F(10) = 55
}
