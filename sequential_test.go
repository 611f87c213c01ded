package prescan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSequentialScan(t *testing.T) {
	add := func(a, b int) int { return a + b }

	cases := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"single", []int{5}, []int{5}},
		{"ramp", []int{1, 2, 0, 7, 8, 9}, []int{1, 3, 3, 10, 18, 27}},
		{"ones", []int{1, 1, 1, 1, 1}, []int{1, 2, 3, 4, 5}},
		{"negatives", []int{-1, 2, -3, 4}, []int{-1, 1, -2, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output := make([]int, len(tc.input))
			if err := SequentialScan(add, tc.input, output); err != nil {
				t.Fatalf("SequentialScan failed: %v", err)
			}
			if diff := cmp.Diff(tc.expected, output); diff != "" {
				t.Errorf("scan mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSequentialScanInPlace(t *testing.T) {
	add := func(a, b int) int { return a + b }
	data := []int{1, 2, 3, 4, 5, 6}

	if err := SequentialScan(add, data, data); err != nil {
		t.Fatalf("in-place scan failed: %v", err)
	}
	want := []int{1, 3, 6, 10, 15, 21}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("in-place scan mismatch (-want +got):\n%s", diff)
	}
}

func TestSequentialScanErrors(t *testing.T) {
	add := func(a, b int) int { return a + b }

	err := SequentialScan(add, []int{}, []int{})
	if !IsEmptyInputError(err) {
		t.Errorf("empty input: expected EmptyInput error, got %v", err)
	}

	err = SequentialScan(add, []int{1, 2, 3}, make([]int, 2))
	if !IsLengthMismatchError(err) {
		t.Errorf("short output: expected length mismatch error, got %v", err)
	}
}

func TestSequentialScanNonCommutative(t *testing.T) {
	// String concatenation is associative but not commutative, so any
	// ordering mistake shows up immediately.
	concat := func(a, b string) string { return a + b }
	input := []string{"a", "b", "c", "d"}
	output := make([]string, len(input))

	if err := SequentialScan(concat, input, output); err != nil {
		t.Fatalf("SequentialScan failed: %v", err)
	}
	want := []string{"a", "ab", "abc", "abcd"}
	if diff := cmp.Diff(want, output); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}
