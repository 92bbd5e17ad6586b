package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 0.5, 48)
	if len(s) != 48 || math.Abs(s[0]) > 1e-15 {
		t.Fatalf("len=%d s[0]=%v", len(s), s[0])
	}
	// 12 samples per quarter period at 1 kHz / 48 kHz.
	if math.Abs(s[12]-0.5) > 1e-12 {
		t.Fatalf("peak = %v, want 0.5", s[12])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.3, 256)
	b := DeterministicNoise(42, 0.3, 256)
	c := DeterministicNoise(43, 0.3, 256)

	RequireSliceNearlyEqual(t, a, b, 0)
	if d, _ := MaxAbsDiff(a, c); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
	for i, v := range a {
		if math.Abs(v) > 0.3 {
			t.Fatalf("sample %d = %v exceeds amplitude", i, v)
		}
	}
}

func TestScaledSumDC(t *testing.T) {
	a := []float64{1, 2, 3}
	b := Scaled(a, -2)
	if b[2] != -6 || a[2] != 3 {
		t.Fatalf("Scaled = %v (input %v)", b, a)
	}

	RequireSliceNearlyEqual(t, Sum(a, b, DC(1, 3)), []float64{0, -1, -2}, 0)
	if Sum() != nil {
		t.Fatal("Sum() of nothing should be nil")
	}
}
