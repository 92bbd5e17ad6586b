// Package core holds the level conversions shared by the dsp and measure
// packages.
package core

import "math"

// MagnitudeFloor is added to linear magnitudes before taking the logarithm
// in [AmplitudeToDB], keeping silent bins finite.
const MagnitudeFloor = 1e-7

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// AmplitudeToDB returns 20*log10(magnitude + floor). A non-positive floor
// selects [MagnitudeFloor].
func AmplitudeToDB(magnitude, floor float64) float64 {
	if floor <= 0 {
		floor = MagnitudeFloor
	}

	return LinearToDB(magnitude + floor)
}

// Mean returns the arithmetic mean of values, or NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
