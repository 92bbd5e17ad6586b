package audiofile

import "errors"

var (
	// ErrNotFound is returned when the file does not exist.
	ErrNotFound = errors.New("audiofile: file not found")
	// ErrUnsupportedFormat is returned for containers or encodings that
	// cannot be decoded.
	ErrUnsupportedFormat = errors.New("audiofile: unsupported format")
	// ErrCorrupt is returned when a recognised file cannot be decoded.
	ErrCorrupt = errors.New("audiofile: corrupt file")
)
