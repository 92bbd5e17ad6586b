package eqmatch

import "github.com/cwbudde/algo-difeq/dsp/spectrum"

// DisplayCurve is the raw, unsmoothed cross-channel mean of one curve,
// trimmed to start near 20 Hz.
type DisplayCurve struct {
	Label  string
	Freqs  []float64
	Values []float64
}

// DisplayCurves returns one DisplayCurve per input curve, in order.
func DisplayCurves(curves []Curve) []DisplayCurve {
	out := make([]DisplayCurve, 0, len(curves))
	for _, c := range curves {
		if c.Len() == 0 {
			continue
		}
		from := spectrum.NearestIndex(c.Freqs, GridLowHz)
		mean := c.Mean()
		out = append(out, DisplayCurve{
			Label:  c.Label,
			Freqs:  append([]float64(nil), c.Freqs[from:]...),
			Values: mean[from:],
		})
	}
	return out
}
