package core

import (
	"math"
	"testing"
)

func TestDBConversions(t *testing.T) {
	tests := []struct {
		db, linear float64
	}{
		{db: 0, linear: 1},
		{db: 20, linear: 10},
		{db: -40, linear: 0.01},
		{db: 6.020599913279624, linear: 2},
	}

	for _, tt := range tests {
		if got := DBToLinear(tt.db); math.Abs(got-tt.linear) > 1e-12*tt.linear {
			t.Fatalf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.linear)
		}
		if got := LinearToDB(tt.linear); math.Abs(got-tt.db) > 1e-12 {
			t.Fatalf("LinearToDB(%v) = %v, want %v", tt.linear, got, tt.db)
		}
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestAmplitudeToDB(t *testing.T) {
	if got := AmplitudeToDB(0, 0); math.Abs(got-(-140)) > 1e-9 {
		t.Fatalf("AmplitudeToDB(0) = %v, want -140", got)
	}
	if got := AmplitudeToDB(0, 1e-5); math.Abs(got-(-100)) > 1e-9 {
		t.Fatalf("AmplitudeToDB(0, 1e-5) = %v, want -100", got)
	}
	if got := AmplitudeToDB(10, -1); math.Abs(got-20) > 1e-6 {
		t.Fatalf("AmplitudeToDB(10) = %v, want ~20", got)
	}
	if math.IsInf(AmplitudeToDB(0, 0), 0) {
		t.Fatal("silent bin must stay finite")
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 6}); got != 3 {
		t.Fatalf("Mean() = %v, want 3", got)
	}
	if !math.IsNaN(Mean(nil)) {
		t.Fatal("expected NaN for empty input")
	}
}
