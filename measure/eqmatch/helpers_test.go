package eqmatch

import (
	"math"

	"github.com/cwbudde/algo-difeq/dsp/spectrum"
)

// syntheticCurve builds a curve on the axis of an fftSize-point FFT at sr
// with channel values given by fn.
func syntheticCurve(label string, fftSize int, sr float64, fn func(f float64) (float64, float64)) Curve {
	freqs := spectrum.FrequencyAxis(fftSize, sr)
	c := Curve{Label: label, Freqs: freqs}
	c.Channels[0] = make([]float64, len(freqs))
	c.Channels[1] = make([]float64, len(freqs))
	for i, f := range freqs {
		c.Channels[0][i], c.Channels[1][i] = fn(f)
	}
	return c
}

func tilt(f float64) (float64, float64) {
	l := 3 * math.Log2(f+1)
	r := -2 + 4*math.Sin(f/1500)
	return l, r
}

func flat(v float64) func(float64) (float64, float64) {
	return func(float64) (float64, float64) { return v, v }
}
