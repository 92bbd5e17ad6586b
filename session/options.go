package session

import (
	"log/slog"

	"github.com/cwbudde/algo-difeq/dsp/window"
	"github.com/cwbudde/algo-difeq/measure/eqmatch"
)

// Option configures a Session.
type Option func(*Session)

// WithAnalysis sets the frame length, hop and window used for every file.
func WithAnalysis(fftSize, hopSize int, w window.Type) Option {
	return func(s *Session) {
		s.fftSize = fftSize
		s.hopSize = hopSize
		s.window = w
	}
}

// WithParams sets the initial aggregation parameters.
func WithParams(p eqmatch.Params) Option {
	return func(s *Session) {
		s.params = p
	}
}

// WithChannelMode sets the initial default channel mode.
func WithChannelMode(m eqmatch.ChannelMode) Option {
	return func(s *Session) {
		s.mode = m
	}
}

// WithLogger routes session logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithWorkers bounds the number of pairs AddPairs analyzes at once. Values
// below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithExporter replaces the function used by ExportCurves.
func WithExporter(fn ExportFunc) Option {
	return func(s *Session) {
		if fn != nil {
			s.export = fn
		}
	}
}
