// Package spectrum turns sampled signals into averaged magnitude spectra and
// provides the frequency-axis helpers used to compare them.
//
// The FFT itself comes from algo-fft; this package frames and windows the
// signal, converts bin magnitudes to decibels and averages them. The
// remaining helpers operate on plain []float64 curves: frequency axes,
// log-spaced grids, clamped linear interpolation, moving averages and
// decimation.
//
// # Usage
//
//	spec, err := spectrum.AverageSpectrum(samples, 48000, 16384, 8192)
//	freqs := spec.Freqs()
package spectrum
