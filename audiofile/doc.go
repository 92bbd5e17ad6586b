// Package audiofile decodes audio files into per-channel float64 sample
// slices in [-1, 1].
//
// The container is identified from its header bytes rather than the file
// extension. Only PCM WAV is decoded; other recognised audio containers are
// rejected with [ErrUnsupportedFormat].
package audiofile
