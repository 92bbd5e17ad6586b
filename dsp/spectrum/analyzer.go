package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-difeq/dsp/core"
	"github.com/cwbudde/algo-difeq/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// AnalyzerOption configures an [Analyzer].
type AnalyzerOption func(*analyzerConfig)

type analyzerConfig struct {
	window window.Type
	floor  float64
}

func defaultAnalyzerConfig() analyzerConfig {
	return analyzerConfig{
		window: window.TypeHann,
		floor:  core.MagnitudeFloor,
	}
}

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) AnalyzerOption {
	return func(c *analyzerConfig) {
		c.window = t
	}
}

// WithMagnitudeFloor sets the offset added to bin magnitudes before the dB
// conversion. Non-positive values are ignored.
func WithMagnitudeFloor(floor float64) AnalyzerOption {
	return func(c *analyzerConfig) {
		if floor > 0 {
			c.floor = floor
		}
	}
}

// Analyzer computes dB-averaged short-time spectra with a fixed frame layout.
//
// Frames of FFTSize samples start every HopSize samples; only frames that fit
// entirely inside the signal are used. Each frame is windowed (periodic
// form), transformed and converted to 20*log10(|X[k]| + floor). The per-bin
// result is the arithmetic mean of those dB values across frames.
//
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	fftSize int
	hopSize int
	cfg     analyzerConfig
	coeffs  []float64
	plan    *algofft.Plan[complex128]
}

// NewAnalyzer creates an analyzer for the given frame and hop sizes.
func NewAnalyzer(fftSize, hopSize int, opts ...AnalyzerOption) (*Analyzer, error) {
	if fftSize < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}
	if hopSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHopSize, hopSize)
	}

	cfg := defaultAnalyzerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: init fft plan: %w", err)
	}

	return &Analyzer{
		fftSize: fftSize,
		hopSize: hopSize,
		cfg:     cfg,
		coeffs:  window.Generate(cfg.window, fftSize, window.WithPeriodic()),
		plan:    plan,
	}, nil
}

// FFTSize returns the frame length.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// HopSize returns the frame advance.
func (a *Analyzer) HopSize() int { return a.hopSize }

// FrameCount returns how many complete frames fit into n samples.
func (a *Analyzer) FrameCount(n int) int {
	if n < a.fftSize {
		return 0
	}
	return 1 + (n-a.fftSize)/a.hopSize
}

// Analyze returns the averaged dB spectrum of signal.
func (a *Analyzer) Analyze(signal []float64, sampleRate float64) (Spectrum, error) {
	if !(sampleRate > 0) {
		return Spectrum{}, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	frames := a.FrameCount(len(signal))
	if frames == 0 {
		return Spectrum{}, fmt.Errorf("%w: need %d samples, got %d", ErrInsufficientData, a.fftSize, len(signal))
	}

	bins := a.fftSize/2 + 1
	frame := make([]float64, a.fftSize)
	in := make([]complex128, a.fftSize)
	out := make([]complex128, a.fftSize)
	mag := make([]float64, bins)
	sum := make([]float64, bins)

	for f := 0; f < frames; f++ {
		start := f * a.hopSize
		copy(frame, signal[start:start+a.fftSize])
		if err := window.ApplyCoefficientsInPlace(frame, a.coeffs); err != nil {
			return Spectrum{}, fmt.Errorf("spectrum: window frame %d: %w", f, err)
		}

		for i, v := range frame {
			in[i] = complex(v, 0)
		}

		if err := a.plan.Forward(out, in); err != nil {
			return Spectrum{}, fmt.Errorf("spectrum: fft frame %d: %w", f, err)
		}

		magnitudeInto(mag, out[:bins])
		for k, m := range mag {
			sum[k] += core.AmplitudeToDB(m, a.cfg.floor)
		}
	}

	vecmath.ScaleBlock(sum, sum, 1/float64(frames))

	return Spectrum{
		Values:     sum,
		SampleRate: sampleRate,
		FFTSize:    a.fftSize,
	}, nil
}

// AverageSpectrum is a one-shot helper around [NewAnalyzer] and [Analyzer.Analyze].
func AverageSpectrum(signal []float64, sampleRate float64, fftSize, hopSize int, opts ...AnalyzerOption) (Spectrum, error) {
	a, err := NewAnalyzer(fftSize, hopSize, opts...)
	if err != nil {
		return Spectrum{}, err
	}
	return a.Analyze(signal, sampleRate)
}
