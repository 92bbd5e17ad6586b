// Package eqmatch derives equalization correction curves from pairs of
// averaged spectra and aggregates them into an exportable curve.
//
// A [Curve] holds ref-minus-source dB differences for two channel slots on
// the source's frequency axis. A [CurveSet] keeps curves in insertion
// order. [Recompute] turns a set into an [Aggregate]:
//
//   - per-bin mean across curves
//   - interpolation onto a 2000-point log-spaced grid from 20 Hz
//   - trailing moving average of the grid and both channels
//   - decimation to the requested resolution
//   - gain normalization over 70 Hz .. roll-off end
//   - linear fade between roll-off start and end
//
// # Usage
//
//	var set eqmatch.CurveSet
//	curve, err := eqmatch.BuildCurve(src, ref, eqmatch.ChannelLeftPlusRight, analyzer)
//	err = set.Add(curve)
//	agg, err := eqmatch.Recompute(set.Curves(), eqmatch.DefaultParams())
package eqmatch
