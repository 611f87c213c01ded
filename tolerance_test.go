package prescan

import (
	"math"
	"testing"
)

func TestFloat32NearEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float32
		tol      ToleranceConfig
		expected bool
	}{
		{
			name:     "Exact_Equal",
			a:        1.0,
			b:        1.0,
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Within_AbsTol",
			a:        1e-8,
			b:        2e-8,
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Within_RelTol",
			a:        1000.0,
			b:        1000.005,
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Outside_RelTol",
			a:        1000.0,
			b:        1010.0,
			tol:      DefaultTolerance(),
			expected: false,
		},
		{
			name:     "NaN_Equal",
			a:        float32(math.NaN()),
			b:        float32(math.NaN()),
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Both_PosInf",
			a:        float32(math.Inf(1)),
			b:        float32(math.Inf(1)),
			tol:      DefaultTolerance(),
			expected: true,
		},
		{
			name:     "Opposite_Inf",
			a:        float32(math.Inf(1)),
			b:        float32(math.Inf(-1)),
			tol:      DefaultTolerance(),
			expected: false,
		},
		{
			name:     "Signed_Zero",
			a:        float32(math.Copysign(0, -1)),
			b:        0,
			tol:      StrictTolerance(),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Float32NearEqual(tc.a, tc.b, tc.tol)
			if got != tc.expected {
				t.Errorf("Float32NearEqual(%v, %v): expected %v, got %v", tc.a, tc.b, tc.expected, got)
			}
		})
	}
}

func TestFloat32ULPDiff(t *testing.T) {
	if d := Float32ULPDiff(1.0, 1.0); d != 0 {
		t.Errorf("identical values: expected 0 ULPs, got %d", d)
	}
	if d := Float32ULPDiff(1.0, math.Nextafter32(1.0, 2.0)); d != 1 {
		t.Errorf("adjacent values: expected 1 ULP, got %d", d)
	}
	if d := Float32ULPDiff(1.0, -1.0); d != math.MaxInt32 {
		t.Errorf("opposite signs: expected MaxInt32, got %d", d)
	}
}

func TestVerifyFloat32Array(t *testing.T) {
	expected := []float32{1, 2, 3, 4}
	actual := []float32{1, 2, 3.5, 4}

	result := VerifyFloat32Array(expected, actual, DefaultTolerance())
	if result.NumErrors != 1 {
		t.Errorf("expected 1 error, got %d", result.NumErrors)
	}
	if result.FirstError != 2 {
		t.Errorf("expected first error at index 2, got %d", result.FirstError)
	}

	clean := VerifyFloat32Array(expected, expected, StrictTolerance())
	if clean.NumErrors != 0 {
		t.Errorf("identical arrays should verify clean: %s", clean)
	}
	if clean.String() != "PASS: All values match within tolerance" {
		t.Errorf("unexpected pass message: %q", clean.String())
	}
}

func TestVerifyStrategy(t *testing.T) {
	input := []float32{1, 2, 0, 7, 8, 9}

	for _, s := range allStrategies {
		result, err := Verify(s, input, DefaultTolerance())
		if err != nil {
			t.Fatalf("Verify(%s) failed: %v", s, err)
		}
		if result.NumErrors != 0 {
			t.Errorf("Verify(%s):\n%s", s, result)
		}
	}

	if _, err := Verify(Segmented, nil, DefaultTolerance()); !IsEmptyInputError(err) {
		t.Errorf("empty input: expected EmptyInput error, got %v", err)
	}
}
