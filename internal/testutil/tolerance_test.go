package testutil

import (
	"fmt"
	"math"
	"testing"
)

// recorder captures Fatalf instead of stopping the test.
type recorder struct {
	testing.TB
	failed string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = fmt.Sprintf(format, args...)
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	r := &recorder{TB: t}
	RequireSliceNearlyEqual(r, []float64{1, 2}, []float64{1, 2 + 1e-10}, 1e-9)
	if r.failed != "" {
		t.Fatalf("unexpected failure: %s", r.failed)
	}

	RequireSliceNearlyEqual(r, []float64{1, 2}, []float64{1, 2.1}, 1e-9)
	if r.failed == "" {
		t.Fatal("expected failure for out-of-tolerance element")
	}

	r.failed = ""
	RequireSliceNearlyEqual(r, []float64{1}, []float64{1, 2}, 1)
	if r.failed == "" {
		t.Fatal("expected failure for length mismatch")
	}
}

func TestRequireAllNearAndFinite(t *testing.T) {
	r := &recorder{TB: t}
	RequireAllNear(r, []float64{-6.02, -6.0206, -6.021}, -6.0206, 1e-3)
	RequireFinite(r, []float64{0, -1e300})
	if r.failed != "" {
		t.Fatalf("unexpected failure: %s", r.failed)
	}

	RequireAllNear(r, []float64{0, 0.5}, 0, 0.1)
	if r.failed == "" {
		t.Fatal("expected RequireAllNear failure")
	}

	r.failed = ""
	RequireFinite(r, []float64{1, math.Inf(-1)})
	if r.failed == "" {
		t.Fatal("expected RequireFinite failure")
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if d != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}
