package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or
// if any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireZeroPrefix fails t if any of the first n elements is not
// exactly zero. Indicator outputs use 0 as the no-value-yet sentinel
// for their lookback region.
func RequireZeroPrefix(t *testing.T, data []float64, n int) {
	t.Helper()
	if n > len(data) {
		t.Fatalf("prefix %d longer than data %d", n, len(data))
	}
	for i := 0; i < n; i++ {
		if data[i] != 0 {
			t.Fatalf("index %d: got %v, want exactly 0", i, data[i])
		}
	}
}

// RequireInRange fails t if any element of data[from:] lies outside
// [lo, hi].
func RequireInRange(t *testing.T, data []float64, from int, lo, hi float64) {
	t.Helper()
	for i := from; i < len(data); i++ {
		if data[i] < lo || data[i] > hi {
			t.Fatalf("index %d: %v outside [%v, %v]", i, data[i], lo, hi)
		}
	}
}

// RequireIdentical fails t if got and want are not bit-identical.
func RequireIdentical(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
			t.Fatalf("index %d: got %v, want %v (bit patterns differ)", i, got[i], want[i])
		}
	}
}
