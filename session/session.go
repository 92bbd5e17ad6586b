package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-difeq/audiofile"
	"github.com/cwbudde/algo-difeq/dsp/spectrum"
	"github.com/cwbudde/algo-difeq/dsp/window"
	"github.com/cwbudde/algo-difeq/eqxml"
	"github.com/cwbudde/algo-difeq/internal/logging"
	"github.com/cwbudde/algo-difeq/measure/eqmatch"
)

// Default analysis layout.
const (
	DefaultFFTSize = 16384
	DefaultHopSize = 8192
)

// ErrNothingToExport is returned by ExportCurves when no pair was added.
var ErrNothingToExport = errors.New("session: no curves to export")

// Loader decodes an audio file.
type Loader interface {
	Load(path string) (audiofile.Audio, error)
}

// ExportFunc writes the mean, left and right aggregate curves next to
// basePath and returns the written paths.
type ExportFunc func(basePath string, freqs, mean, left, right []float64) ([]string, error)

// PairRequest names one source/reference comparison.
type PairRequest struct {
	Source    string
	Reference string
	Mode      eqmatch.ChannelMode
}

// PairResult is the outcome of one PairRequest. Label is empty when Err is
// set.
type PairResult struct {
	Request PairRequest
	Label   string
	Notices []eqmatch.ChannelFallback
	Err     error
}

// Session is a mutable list of difference curves plus the parameters used
// to aggregate them.
type Session struct {
	loader  Loader
	export  ExportFunc
	logger  *slog.Logger
	workers int

	fftSize int
	hopSize int
	window  window.Type

	mu     sync.RWMutex
	set    eqmatch.CurveSet
	params eqmatch.Params
	mode   eqmatch.ChannelMode
}

// New creates an empty session that reads audio through loader.
func New(loader Loader, opts ...Option) (*Session, error) {
	if loader == nil {
		return nil, errors.New("session: loader is required")
	}

	s := &Session{
		loader:  loader,
		export:  eqxml.ExportTriple,
		workers: runtime.NumCPU(),
		fftSize: DefaultFFTSize,
		hopSize: DefaultHopSize,
		window:  window.TypeHann,
		params:  eqmatch.DefaultParams(),
		mode:    eqmatch.ChannelLeftPlusRight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.logger = logging.NewComponentLogger(s.logger, "session")

	if _, err := s.newAnalyzer(); err != nil {
		return nil, err
	}
	if err := s.params.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// AddPair loads and analyzes src and ref and appends their difference curve.
// On error the session is unchanged.
func (s *Session) AddPair(ctx context.Context, src, ref string, mode eqmatch.ChannelMode) (string, error) {
	c, err := s.buildCurve(ctx, PairRequest{Source: src, Reference: ref, Mode: mode})
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	err = s.set.Add(c)
	s.mu.Unlock()
	if err != nil {
		return "", err
	}

	s.logger.Info("pair added",
		logging.Args(logging.String(logging.FieldLabel, c.Label), logging.Int("bins", c.Len()))...)
	return c.Label, nil
}

// AddPairs analyzes reqs concurrently and appends the successful curves in
// request order. A failing pair does not affect the others.
func (s *Session) AddPairs(ctx context.Context, reqs []PairRequest) []PairResult {
	results := make([]PairResult, len(reqs))
	curves := make([]eqmatch.Curve, len(reqs))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, req := range reqs {
		results[i].Request = req
		g.Go(func() error {
			c, err := s.buildCurve(ctx, req)
			if err != nil {
				results[i].Err = err
				return nil
			}
			curves[i] = c
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if err := s.set.Add(curves[i]); err != nil {
			results[i].Err = err
			continue
		}
		results[i].Label = curves[i].Label
		results[i].Notices = curves[i].Notices
	}
	s.mu.Unlock()

	for _, r := range results {
		if r.Err != nil {
			s.logger.Error("pair failed", logging.Args(
				logging.String("source", r.Request.Source),
				logging.String("reference", r.Request.Reference),
				logging.Error(r.Err),
			)...)
			continue
		}
		s.logger.Info("pair added", logging.Args(logging.String(logging.FieldLabel, r.Label))...)
	}
	return results
}

// RemovePair removes every curve labelled label and returns the count.
func (s *Session) RemovePair(label string) int {
	s.mu.Lock()
	n := s.set.Remove(label)
	s.mu.Unlock()

	if n > 0 {
		s.logger.Info("pair removed",
			logging.Args(logging.String(logging.FieldLabel, label), logging.Int("count", n))...)
	}
	return n
}

// SetParameters replaces the aggregation parameters and the default channel
// mode. Invalid values leave the session unchanged.
func (s *Session) SetParameters(p eqmatch.Params, mode eqmatch.ChannelMode) error {
	if err := p.Validate(); err != nil {
		return err
	}
	switch mode {
	case eqmatch.ChannelLeftPlusRight, eqmatch.ChannelLeft, eqmatch.ChannelRight:
	default:
		return fmt.Errorf("%w: channel mode %v", eqmatch.ErrInvalidParams, mode)
	}

	s.mu.Lock()
	s.params = p
	s.mode = mode
	s.mu.Unlock()
	return nil
}

// Parameters returns the current aggregation parameters.
func (s *Session) Parameters() eqmatch.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// ChannelMode returns the default channel mode for new pairs.
func (s *Session) ChannelMode() eqmatch.ChannelMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Curves returns copies of the stored curves in insertion order.
func (s *Session) Curves() []eqmatch.Curve {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Curves()
}

// Labels returns the stored labels in insertion order.
func (s *Session) Labels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Labels()
}

// Len returns the number of stored curves.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Len()
}

// Recompute aggregates the current curves with the current parameters.
func (s *Session) Recompute() (eqmatch.Aggregate, error) {
	curves, params := s.snapshot()
	return eqmatch.Recompute(curves, params)
}

// DisplayCurves returns the unsmoothed per-pair curves.
func (s *Session) DisplayCurves() []eqmatch.DisplayCurve {
	curves, _ := s.snapshot()
	return eqmatch.DisplayCurves(curves)
}

// ExportCurves recomputes the aggregate and writes it as three curve files
// derived from basePath.
func (s *Session) ExportCurves(basePath string) ([]string, error) {
	agg, err := s.Recompute()
	if err != nil {
		return nil, err
	}
	if agg.Empty() {
		return nil, ErrNothingToExport
	}

	paths, err := s.export(basePath, agg.Freqs, agg.Mean, agg.Channels[0], agg.Channels[1])
	if err != nil {
		s.logger.Error("export failed", logging.Args(logging.String(logging.FieldPath, basePath), logging.Error(err))...)
		return paths, err
	}

	s.logger.Info("curves exported",
		logging.Args(logging.String(logging.FieldPath, basePath), logging.Int("points", agg.Len()), logging.Float64("gain_db", agg.Gain))...)
	return paths, nil
}

func (s *Session) snapshot() ([]eqmatch.Curve, eqmatch.Params) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Curves(), s.params
}

func (s *Session) newAnalyzer() (*spectrum.Analyzer, error) {
	return spectrum.NewAnalyzer(s.fftSize, s.hopSize, spectrum.WithWindow(s.window))
}

func (s *Session) buildCurve(ctx context.Context, req PairRequest) (eqmatch.Curve, error) {
	src, err := s.load(ctx, req.Source)
	if err != nil {
		return eqmatch.Curve{}, err
	}
	ref, err := s.load(ctx, req.Reference)
	if err != nil {
		return eqmatch.Curve{}, err
	}

	a, err := s.newAnalyzer()
	if err != nil {
		return eqmatch.Curve{}, err
	}

	c, err := eqmatch.BuildCurve(src, ref, req.Mode, a)
	if err != nil {
		return eqmatch.Curve{}, fmt.Errorf("%s: %w", eqmatch.Label(req.Source, req.Reference, req.Mode), err)
	}

	for _, n := range c.Notices {
		s.logger.Warn("channel fallback", logging.Args(
			logging.String(logging.FieldPath, n.Path),
			logging.String("mode", n.Mode.String()),
			logging.Int("channels", n.Available),
		)...)
	}
	return c, nil
}

func (s *Session) load(ctx context.Context, path string) (eqmatch.Input, error) {
	if err := ctx.Err(); err != nil {
		return eqmatch.Input{}, err
	}

	s.logger.Debug("loading audio", logging.Args(logging.String(logging.FieldPath, path))...)
	a, err := s.loader.Load(path)
	if err != nil {
		return eqmatch.Input{}, err
	}
	return eqmatch.Input{Path: path, Channels: a.Channels, SampleRate: float64(a.SampleRate)}, nil
}
