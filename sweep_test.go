package prescan

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWorkEfficientScan(t *testing.T) {
	add := func(a, b int) int { return a + b }

	cases := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"single", []int{3}, []int{3}},
		{"power of two", []int{1, 2, 3, 4}, []int{1, 3, 6, 10}},
		{"ramp", []int{1, 2, 0, 7, 8, 9}, []int{1, 3, 3, 10, 18, 27}},
		{"ones", []int{1, 1, 1, 1, 1}, []int{1, 2, 3, 4, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output := make([]int, len(tc.input))
			if err := WorkEfficientScan(add, tc.input, output); err != nil {
				t.Fatalf("WorkEfficientScan failed: %v", err)
			}
			if diff := cmp.Diff(tc.expected, output); diff != "" {
				t.Errorf("scan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWorkEfficientScanPadding(t *testing.T) {
	// Non-power-of-two lengths exercise the absent-sentinel padding: the
	// synthetic elements must never leak into results.
	add := func(a, b int) int { return a + b }

	for _, n := range []int{1, 2, 3, 5, 6, 7, 9, 100, 127, 129} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			input := make([]int, n)
			for i := range input {
				input[i] = i - n/2
			}
			expected := SequentialOracle(t, add, input)

			output := make([]int, n)
			if err := WorkEfficientScan(add, input, output); err != nil {
				t.Fatalf("WorkEfficientScan n=%d failed: %v", n, err)
			}
			if diff := cmp.Diff(expected, output); diff != "" {
				t.Errorf("n=%d mismatch (-want +got):\n%s", n, diff)
			}
		})
	}
}

func TestWorkEfficientScanNonCommutative(t *testing.T) {
	// The downsweep swap (L,R) -> (R, L⊕R) is where operand order is
	// easiest to get backwards; concatenation catches that.
	concat := func(a, b string) string { return a + b }
	input := []string{"u", "p", "s", "w", "e", "e", "p"}
	expected := SequentialOracle(t, concat, input)

	output := make([]string, len(input))
	if err := WorkEfficientScan(concat, input, output); err != nil {
		t.Fatalf("WorkEfficientScan failed: %v", err)
	}
	if diff := cmp.Diff(expected, output); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkEfficientScanErrors(t *testing.T) {
	add := func(a, b int) int { return a + b }

	if err := WorkEfficientScan(add, []int{}, []int{}); !IsEmptyInputError(err) {
		t.Errorf("empty input: expected EmptyInput error, got %v", err)
	}
	if err := WorkEfficientScan(add, []int{1}, []int{}); !IsLengthMismatchError(err) {
		t.Errorf("short output: expected length mismatch error, got %v", err)
	}

	data := []int{1, 2, 3}
	if err := WorkEfficientScan(add, data, data); !IsAliasingError(err) {
		t.Errorf("aliased buffers: expected aliasing error, got %v", err)
	}
}
