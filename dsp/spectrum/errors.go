package spectrum

import "errors"

// Errors returned by spectrum analysis and smoothing functions.
var (
	ErrInsufficientData   = errors.New("spectrum: signal shorter than one analysis frame")
	ErrInsufficientWindow = errors.New("spectrum: smoothing window exceeds available samples")
	ErrInvalidFFTSize     = errors.New("spectrum: fft size must be >= 2")
	ErrInvalidHopSize     = errors.New("spectrum: hop size must be >= 1")
	ErrInvalidSampleRate  = errors.New("spectrum: sample rate must be positive")
)
