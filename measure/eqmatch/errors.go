package eqmatch

import "errors"

// Errors returned by curve construction and aggregation.
var (
	ErrNoChannels      = errors.New("eqmatch: audio has no channels")
	ErrFFTSizeMismatch = errors.New("eqmatch: source and reference fft sizes differ")
	ErrAxisMismatch    = errors.New("eqmatch: frequency axis cardinality differs")
	ErrInvalidParams   = errors.New("eqmatch: invalid aggregation parameters")
)
