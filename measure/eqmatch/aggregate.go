package eqmatch

import (
	"fmt"

	"github.com/cwbudde/algo-difeq/dsp/core"
	"github.com/cwbudde/algo-difeq/dsp/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// GridPoints is the size of the log-spaced grid curves are resampled onto.
	GridPoints = 2000
	// GridLowHz is the lowest grid frequency; equalizer curves start at 20 Hz.
	GridLowHz = 20.0
	// GainLowHz is the lower edge of the gain reference band.
	GainLowHz = 70.0
)

// Params controls aggregation. Roll-off frequencies of 0 are disabled.
type Params struct {
	// Smoothing is the moving-average window in grid points.
	Smoothing int
	// Resolution is the approximate number of output points.
	Resolution int
	// RolloffStart is where the fade towards 0 dB begins.
	RolloffStart float64
	// RolloffEnd is where the curve reaches 0 dB; it also bounds the gain
	// reference band.
	RolloffEnd float64
}

// DefaultParams returns smoothing 50, resolution 200 and a 21-22 kHz roll-off.
func DefaultParams() Params {
	return Params{
		Smoothing:    50,
		Resolution:   200,
		RolloffStart: 21000,
		RolloffEnd:   22000,
	}
}

// Validate reports parameter combinations Recompute cannot honour.
func (p Params) Validate() error {
	switch {
	case p.Smoothing < 1:
		return fmt.Errorf("%w: smoothing %d must be >= 1", ErrInvalidParams, p.Smoothing)
	case p.Resolution < 1 || p.Resolution > GridPoints:
		return fmt.Errorf("%w: resolution %d must be in [1, %d]", ErrInvalidParams, p.Resolution, GridPoints)
	case p.RolloffStart < 0 || p.RolloffEnd < 0:
		return fmt.Errorf("%w: roll-off frequencies must be >= 0", ErrInvalidParams)
	case p.RolloffStart > 0 && p.RolloffEnd > 0 && p.RolloffStart > p.RolloffEnd:
		return fmt.Errorf("%w: roll-off start %g above end %g", ErrInvalidParams, p.RolloffStart, p.RolloffEnd)
	}
	return nil
}

// FadeEnabled reports whether both roll-off frequencies are set.
func (p Params) FadeEnabled() bool {
	return p.RolloffStart > 0 && p.RolloffEnd > 0
}

// Aggregate is the smoothed, normalized and faded result of a CurveSet.
type Aggregate struct {
	Freqs    []float64
	Channels [2][]float64
	// Mean is the element-wise mean of both channels.
	Mean []float64
	// Gain is the level subtracted during normalization.
	Gain float64
}

// Empty reports whether a holds no points, which is the result for an
// empty CurveSet.
func (a Aggregate) Empty() bool { return len(a.Freqs) == 0 }

// Len returns the number of points.
func (a Aggregate) Len() int { return len(a.Freqs) }

// MeanCurve averages the curves per channel and per bin. The frequency axis
// is taken from the last curve.
func MeanCurve(curves []Curve) ([]float64, [2][]float64, error) {
	var mean [2][]float64
	if len(curves) == 0 {
		return nil, mean, nil
	}

	bins := curves[0].Len()
	for ch := range mean {
		mean[ch] = make([]float64, bins)
	}

	for _, c := range curves {
		if c.Len() != bins || len(c.Channels[0]) != bins || len(c.Channels[1]) != bins {
			return nil, mean, fmt.Errorf("%w: %q has %d bins, want %d", ErrAxisMismatch, c.Label, c.Len(), bins)
		}
		for ch := range mean {
			vecmath.AddBlockInPlace(mean[ch], c.Channels[ch])
		}
	}

	scale := 1 / float64(len(curves))
	for ch := range mean {
		vecmath.ScaleBlock(mean[ch], mean[ch], scale)
	}

	freqs := append([]float64(nil), curves[len(curves)-1].Freqs...)
	return freqs, mean, nil
}

// Recompute derives the aggregate curve from curves. It is a pure function
// of its inputs; an empty slice yields an empty Aggregate and no error.
func Recompute(curves []Curve, p Params) (Aggregate, error) {
	if len(curves) == 0 {
		return Aggregate{}, nil
	}
	if err := p.Validate(); err != nil {
		return Aggregate{}, err
	}

	freqs, mean, err := MeanCurve(curves)
	if err != nil {
		return Aggregate{}, err
	}

	grid, err := spectrum.LogGrid(GridLowHz, freqs[len(freqs)-1], GridPoints)
	if err != nil {
		return Aggregate{}, fmt.Errorf("eqmatch: build grid: %w", err)
	}

	step := GridPoints / p.Resolution

	var agg Aggregate
	agg.Freqs, err = smoothAndDecimate(grid, p.Smoothing, step)
	if err != nil {
		return Aggregate{}, fmt.Errorf("eqmatch: smooth grid: %w", err)
	}

	for ch := range mean {
		resampled, err := spectrum.InterpolateLinear(freqs, mean[ch], grid)
		if err != nil {
			return Aggregate{}, fmt.Errorf("eqmatch: resample channel %d: %w", ch, err)
		}

		agg.Channels[ch], err = smoothAndDecimate(resampled, p.Smoothing, step)
		if err != nil {
			return Aggregate{}, fmt.Errorf("eqmatch: smooth channel %d: %w", ch, err)
		}
	}

	agg.Gain = referenceGain(agg.Freqs, agg.Channels, p.RolloffEnd)
	for ch := range agg.Channels {
		for i := range agg.Channels[ch] {
			agg.Channels[ch][i] -= agg.Gain
		}
	}

	if p.FadeEnabled() {
		for i, f := range agg.Freqs {
			g := Fade(f, p.RolloffStart, p.RolloffEnd)
			agg.Channels[0][i] *= g
			agg.Channels[1][i] *= g
		}
	}

	agg.Mean = channelMean(agg.Channels)
	return agg, nil
}

// Fade is 1 at or below start, 0 at or above end and linear in between.
func Fade(f, start, end float64) float64 {
	switch {
	case f >= end:
		return 0
	case f <= start:
		return 1
	default:
		return (end - f) / (end - start)
	}
}

// ReferenceBand returns the half-open index range [lo, hi) used for gain
// normalization: nearest sample to 70 Hz up to the nearest sample to
// rolloffEnd. ok is false when the range is empty or rolloffEnd is unset.
func ReferenceBand(freqs []float64, rolloffEnd float64) (lo, hi int, ok bool) {
	if rolloffEnd <= 0 || len(freqs) == 0 {
		return 0, 0, false
	}
	lo = spectrum.NearestIndex(freqs, GainLowHz)
	hi = spectrum.NearestIndex(freqs, rolloffEnd)
	return lo, hi, hi > lo
}

func referenceGain(freqs []float64, ch [2][]float64, rolloffEnd float64) float64 {
	lo, hi, ok := ReferenceBand(freqs, rolloffEnd)
	if !ok {
		lo, hi = 0, len(freqs)
	}
	if hi <= lo {
		return 0
	}

	// Both slots cover the same band, so the mean of the slot means is the
	// mean over all points.
	return (core.Mean(ch[0][lo:hi]) + core.Mean(ch[1][lo:hi])) / 2
}

func smoothAndDecimate(values []float64, n, step int) ([]float64, error) {
	smoothed, err := spectrum.MovingAverage(values, n)
	if err != nil {
		return nil, err
	}
	return spectrum.Decimate(smoothed, step)
}
