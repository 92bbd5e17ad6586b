package eqxml

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v as the shortest decimal string that parses back to
// v. Integral values keep a ".0" suffix, and magnitudes below 1e-4 or from
// 1e16 up switch to exponent notation ("1e-05", "1.5e+16").
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(v); abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
