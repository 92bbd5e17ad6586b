package spectrum

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Spectrum is an averaged magnitude spectrum in dB over bins 0..FFTSize/2.
// Values must be treated as read-only once produced.
type Spectrum struct {
	Values     []float64
	SampleRate float64
	FFTSize    int
}

// Len returns the number of bins.
func (s Spectrum) Len() int { return len(s.Values) }

// Freqs returns the frequency axis matching Values.
func (s Spectrum) Freqs() []float64 {
	return FrequencyAxis(s.FFTSize, s.SampleRate)
}

// Clone returns a deep copy of s.
func (s Spectrum) Clone() Spectrum {
	s.Values = append([]float64(nil), s.Values...)
	return s
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	magnitudeInto(out, in)
	return out
}

// magnitudeInto writes |in[k]| into dst; len(dst) must equal len(in).
func magnitudeInto(dst []float64, in []complex128) {
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// FrequencyAxis returns freq[k] = k*sampleRate/fftSize for k in 0..fftSize/2.
func FrequencyAxis(fftSize int, sampleRate float64) []float64 {
	if fftSize < 2 {
		return nil
	}

	out := make([]float64, fftSize/2+1)
	binHz := sampleRate / float64(fftSize)
	for k := range out {
		out[k] = float64(k) * binHz
	}
	return out
}

// LogGrid returns n points spaced evenly in log2 between lo and hi inclusive.
func LogGrid(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("log grid requires at least 2 points: %d", n)
	}
	if lo <= 0 || !(hi > lo) {
		return nil, fmt.Errorf("log grid requires 0 < lo < hi: lo=%g hi=%g", lo, hi)
	}

	start := math.Log2(lo)
	stop := math.Log2(hi)
	step := (stop - start) / float64(n-1)

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(2, start+float64(i)*step)
	}
	out[n-1] = math.Pow(2, stop)
	return out, nil
}

// NearestIndex returns the index of the element of xs closest to v. Ties
// resolve to the lower index; an empty slice yields -1.
func NearestIndex(xs []float64, v float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, x := range xs {
		d := math.Abs(x - v)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// InterpolateLinear performs piecewise-linear interpolation at queryX.
//
// x must be strictly increasing and have the same length as y. Queries
// outside [x[0], x[len-1]] take the nearest endpoint value.
func InterpolateLinear(x, y, queryX []float64) ([]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("interpolate requires non-empty x and y")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("interpolate x/y length mismatch: %d != %d", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("interpolate x must be strictly increasing at index %d", i)
		}
	}

	out := make([]float64, len(queryX))
	for i, q := range queryX {
		if q <= x[0] {
			out[i] = y[0]
			continue
		}
		if q >= x[len(x)-1] {
			out[i] = y[len(y)-1]
			continue
		}

		j := sort.SearchFloat64s(x, q)
		if x[j] == q {
			out[i] = y[j]
			continue
		}
		x0, x1 := x[j-1], x[j]
		t := (q - x0) / (x1 - x0)
		out[i] = y[j-1] + t*(y[j]-y[j-1])
	}
	return out, nil
}
