package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	types := []Type{
		TypeRectangular,
		TypeHann,
		TypeHamming,
		TypeBlackman,
		TypeBlackmanHarris4Term,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
				if v < -1e-12 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d]=%v out of [0,1]", i, v)
				}
			}
		})
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("unexpected lengths: %d %d", len(a), len(b))
	}

	if math.Abs(a[15]) > 1e-12 {
		t.Fatalf("symmetric hann must end at zero, got %v", a[15])
	}

	if b[15] <= 0 {
		t.Fatalf("periodic hann must not end at zero, got %v", b[15])
	}

	if math.Abs(b[8]-1) > 1e-12 {
		t.Fatalf("periodic hann peak=%v want 1", b[8])
	}
}

func TestGoldenHamming(t *testing.T) {
	got := Generate(TypeHamming, 5)
	want := []float64{0.08, 0.54, 1, 0.54, 0.08}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Type{
		"hann":            TypeHann,
		" HANN ":          TypeHann,
		"hanning":         TypeHann,
		"hamming":         TypeHamming,
		"blackman":        TypeBlackman,
		"blackman-harris": TypeBlackmanHarris4Term,
		"boxcar":          TypeRectangular,
	}

	for name, want := range cases {
		got, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("Parse(%q)=%v want %v", name, got, want)
		}
	}

	if _, err := Parse("kaiser"); !errors.Is(err, errUnknownWindow) {
		t.Fatalf("expected unknown window error, got %v", err)
	}
}

func TestApplyCoefficientsHelpers(t *testing.T) {
	samples := []float64{1, 2, 3}
	coeffs := []float64{0.5, 1, 0}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}
	if out[0] != 0.5 || out[1] != 2 || out[2] != 0 {
		t.Fatalf("unexpected output: %v", out)
	}
	if samples[0] != 1 {
		t.Fatalf("input mutated: %v", samples)
	}

	if err := ApplyCoefficientsInPlace(samples, coeffs); err != nil {
		t.Fatalf("ApplyCoefficientsInPlace: %v", err)
	}
	if samples[1] != 2 || samples[2] != 0 {
		t.Fatalf("unexpected in-place output: %v", samples)
	}

	if _, err := ApplyCoefficients([]float64{1}, coeffs); !errors.Is(err, errMismatchedLength) {
		t.Fatalf("expected length mismatch, got %v", err)
	}
}

func TestValidationAndEdgeCases(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("expected nil for zero length, got %v", w)
	}

	if _, err := Hann(0); err == nil {
		t.Fatal("expected error for zero-size hann")
	}

	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("single-sample hann=%v", w)
	}

	if _, err := CoherentGain(nil); !errors.Is(err, errEmptyCoeffs) {
		t.Fatalf("expected empty coeffs error, got %v", err)
	}

	g, err := CoherentGain(Generate(TypeHann, 1024, WithPeriodic()))
	if err != nil {
		t.Fatalf("CoherentGain: %v", err)
	}
	if math.Abs(g-0.5) > 1e-12 {
		t.Fatalf("periodic hann coherent gain=%v want 0.5", g)
	}

	buf := []float64{}
	Apply(TypeHann, buf)
}
