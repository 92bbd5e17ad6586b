package spectrum

import "fmt"

// MovingAverage returns the trailing n-point mean of values:
// out[i] = mean(values[i : i+n]), len(out) = len(values)-n+1.
//
// The window sums come from a running cumulative sum.
func MovingAverage(values []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: window %d must be >= 1", ErrInsufficientWindow, n)
	}
	if len(values) < n {
		return nil, fmt.Errorf("%w: window %d, samples %d", ErrInsufficientWindow, n, len(values))
	}

	cum := make([]float64, len(values))
	acc := 0.0
	for i, v := range values {
		acc += v
		cum[i] = acc
	}

	out := make([]float64, len(values)-n+1)
	den := float64(n)
	for i := range out {
		end := i + n - 1
		s := cum[end]
		if i > 0 {
			s -= cum[i-1]
		}
		out[i] = s / den
	}
	return out, nil
}

// DecimationIndices returns 0, step, 2*step, ... below length.
func DecimationIndices(length, step int) []int {
	if length <= 0 || step < 1 {
		return nil
	}

	out := make([]int, 0, (length+step-1)/step)
	for i := 0; i < length; i += step {
		out = append(out, i)
	}
	return out
}

// Decimate keeps every step-th value starting at index 0.
func Decimate(values []float64, step int) ([]float64, error) {
	if step < 1 {
		return nil, fmt.Errorf("decimation step must be >= 1: %d", step)
	}

	idx := DecimationIndices(len(values), step)
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out, nil
}
