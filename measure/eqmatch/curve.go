package eqmatch

import (
	"fmt"
	"path/filepath"

	"github.com/cwbudde/algo-difeq/dsp/spectrum"
)

// Curve is one source/reference comparison: per-bin ref-minus-source dB
// differences for two channel slots on the source frequency axis.
type Curve struct {
	Label    string
	Freqs    []float64
	Channels [2][]float64
	Notices  []ChannelFallback
}

// Len returns the number of bins.
func (c Curve) Len() int { return len(c.Freqs) }

// Clone returns a deep copy of c.
func (c Curve) Clone() Curve {
	out := Curve{
		Label: c.Label,
		Freqs: append([]float64(nil), c.Freqs...),
	}
	for ch := range c.Channels {
		out.Channels[ch] = append([]float64(nil), c.Channels[ch]...)
	}
	if len(c.Notices) > 0 {
		out.Notices = append([]ChannelFallback(nil), c.Notices...)
	}
	return out
}

// Mean returns the element-wise mean of both channel slots.
func (c Curve) Mean() []float64 {
	return channelMean(c.Channels)
}

// Input is decoded audio handed to [BuildCurve].
type Input struct {
	Path       string
	Channels   [][]float64
	SampleRate float64
}

// Label formats the display label of a pair, e.g.
// "take1.wav (L+R) -> master.wav (L+R)".
func Label(srcPath, refPath string, mode ChannelMode) string {
	return fmt.Sprintf("%s (%s) -> %s (%s)", filepath.Base(srcPath), mode, filepath.Base(refPath), mode)
}

// DifferenceCurve returns the source frequency axis and ref - src per bin.
//
// When the sample rates differ the reference spectrum is linearly
// interpolated from its own axis onto the source axis first. Both spectra
// must share the FFT size.
func DifferenceCurve(src, ref spectrum.Spectrum) ([]float64, []float64, error) {
	if src.FFTSize != ref.FFTSize {
		return nil, nil, fmt.Errorf("%w: %d vs %d", ErrFFTSizeMismatch, src.FFTSize, ref.FFTSize)
	}

	freqs := src.Freqs()
	if len(freqs) == 0 || len(src.Values) != len(freqs) || len(ref.Values) != len(freqs) {
		return nil, nil, fmt.Errorf("%w: axis %d, source %d, reference %d bins",
			ErrAxisMismatch, len(freqs), len(src.Values), len(ref.Values))
	}

	refValues := ref.Values
	if ref.SampleRate != src.SampleRate {
		var err error
		refValues, err = spectrum.InterpolateLinear(ref.Freqs(), ref.Values, freqs)
		if err != nil {
			return nil, nil, fmt.Errorf("eqmatch: resample reference axis: %w", err)
		}
	}

	diff := make([]float64, len(freqs))
	for k := range diff {
		diff[k] = refValues[k] - src.Values[k]
	}

	return freqs, diff, nil
}

// NewCurve differences both slots of src and ref.
func NewCurve(label string, src, ref [2]spectrum.Spectrum) (Curve, error) {
	c := Curve{Label: label}

	for ch := range src {
		freqs, diff, err := DifferenceCurve(src[ch], ref[ch])
		if err != nil {
			return Curve{}, fmt.Errorf("slot %d: %w", ch, err)
		}
		if c.Freqs == nil {
			c.Freqs = freqs
		}
		c.Channels[ch] = diff
	}

	return c, nil
}

// BuildCurve selects channels according to mode, analyzes both inputs with a
// and returns the labelled difference curve. Channel fallbacks are recorded
// in Curve.Notices.
func BuildCurve(src, ref Input, mode ChannelMode, a *spectrum.Analyzer) (Curve, error) {
	var notices []ChannelFallback

	analyze := func(in Input) ([2]spectrum.Spectrum, error) {
		sel, fellBack, err := SelectChannels(len(in.Channels), mode)
		if err != nil {
			return [2]spectrum.Spectrum{}, fmt.Errorf("%s: %w", in.Path, err)
		}
		if fellBack {
			notices = append(notices, ChannelFallback{Path: in.Path, Mode: mode, Available: len(in.Channels)})
		}

		specs, err := AnalyzeChannels(in.Channels, in.SampleRate, sel, a)
		if err != nil {
			return specs, fmt.Errorf("%s: %w", in.Path, err)
		}
		return specs, nil
	}

	srcSpecs, err := analyze(src)
	if err != nil {
		return Curve{}, err
	}

	refSpecs, err := analyze(ref)
	if err != nil {
		return Curve{}, err
	}

	c, err := NewCurve(Label(src.Path, ref.Path, mode), srcSpecs, refSpecs)
	if err != nil {
		return Curve{}, err
	}
	c.Notices = notices

	return c, nil
}

func channelMean(ch [2][]float64) []float64 {
	out := make([]float64, len(ch[0]))
	for i := range out {
		out[i] = (ch[0][i] + ch[1][i]) / 2
	}
	return out
}
