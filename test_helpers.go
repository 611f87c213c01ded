package prescan

import (
	"math/rand"
	"testing"
)

// ScanOrFail runs a scan and fails the test if unsuccessful
func ScanOrFail[T any](t testing.TB, strategy Strategy, op Operator[T], input, output []T) {
	t.Helper()
	if err := Scan(strategy, op, input, output); err != nil {
		t.Fatalf("%s scan failed: %v", strategy, err)
	}
}

// SequentialOracle computes the reference result for an input, failing the
// test on error
func SequentialOracle[T any](t testing.TB, op Operator[T], input []T) []T {
	t.Helper()
	expected := make([]T, len(input))
	if err := SequentialScan(op, input, expected); err != nil {
		t.Fatalf("sequential oracle failed: %v", err)
	}
	return expected
}

// randomFloats returns n pseudo-random float32 values in [-1, 1)
func randomFloats(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}
	return out
}
