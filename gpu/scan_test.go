package gpu

import (
	"math/rand"
	"strconv"
	"testing"
)

func requireGPU(t *testing.T) {
	t.Helper()
	if !Available() {
		t.Skip("no WebGPU adapter available")
	}
}

func sequentialSum(input []float32) []float32 {
	out := make([]float32, len(input))
	acc := float32(0)
	for i, v := range input {
		acc += v
		out[i] = acc
	}
	return out
}

func TestScanKernel(t *testing.T) {
	requireGPU(t)

	cases := []struct {
		name     string
		input    []float32
		expected []float32
	}{
		{"single", []float32{5}, []float32{5}},
		{"ramp", []float32{1, 2, 0, 7, 8, 9}, []float32{1, 3, 3, 10, 18, 27}},
		{"ones", []float32{1, 1, 1, 1, 1}, []float32{1, 2, 3, 4, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := NewScanKernel(len(tc.input))
			if err != nil {
				t.Fatalf("NewScanKernel failed: %v", err)
			}
			defer k.Release()

			got, err := k.Scan(tc.input)
			if err != nil {
				t.Fatalf("Scan failed: %v", err)
			}
			for i := range tc.expected {
				if got[i] != tc.expected[i] {
					t.Errorf("output[%d]: expected %v, got %v", i, tc.expected[i], got[i])
				}
			}
		})
	}
}

func TestScanKernelMatchesCPU(t *testing.T) {
	requireGPU(t)
	rng := rand.New(rand.NewSource(21))

	for _, n := range []int{2, 7, 255, 256, 257, MaxScanSize} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			input := make([]float32, n)
			for i := range input {
				input[i] = rng.Float32()*2 - 1
			}
			expected := sequentialSum(input)

			k, err := NewScanKernel(n)
			if err != nil {
				t.Fatalf("NewScanKernel failed: %v", err)
			}
			defer k.Release()

			got, err := k.Scan(input)
			if err != nil {
				t.Fatalf("Scan failed: %v", err)
			}
			for i := range expected {
				diff := expected[i] - got[i]
				if diff < 0 {
					diff = -diff
				}
				// Reassociation tolerance: the GPU groups additions
				// log-depth, the oracle left-to-right.
				if diff > 1e-3 {
					t.Errorf("n=%d output[%d]: expected %v, got %v", n, i, expected[i], got[i])
				}
			}
		})
	}
}

func TestScanKernelLimits(t *testing.T) {
	if _, err := NewScanKernel(0); err == nil {
		t.Errorf("expected rejection of empty kernel")
	}
	if _, err := NewScanKernel(MaxScanSize + 1); err == nil {
		t.Errorf("expected rejection above MaxScanSize")
	}
}

func TestScanKernelLengthCheck(t *testing.T) {
	requireGPU(t)

	k, err := NewScanKernel(8)
	if err != nil {
		t.Fatalf("NewScanKernel failed: %v", err)
	}
	defer k.Release()

	if _, err := k.Scan(make([]float32, 4)); err == nil {
		t.Errorf("expected length mismatch rejection")
	}
}
