package eqmatch

import "fmt"

// CurveSet is an insertion-ordered collection of curves. Label and curve
// live in one record, so they cannot drift apart.
//
// The zero value is an empty set. A CurveSet is not safe for concurrent use.
type CurveSet struct {
	curves []Curve
}

// Add appends c. Every curve in a set must have the same bin count as the
// first one.
func (s *CurveSet) Add(c Curve) error {
	if c.Len() == 0 || len(c.Channels[0]) != c.Len() || len(c.Channels[1]) != c.Len() {
		return fmt.Errorf("%w: curve %q is malformed", ErrAxisMismatch, c.Label)
	}
	if len(s.curves) > 0 && s.curves[0].Len() != c.Len() {
		return fmt.Errorf("%w: set has %d bins, curve %q has %d",
			ErrAxisMismatch, s.curves[0].Len(), c.Label, c.Len())
	}

	s.curves = append(s.curves, c.Clone())
	return nil
}

// Remove deletes every curve labelled label and returns how many were
// removed.
func (s *CurveSet) Remove(label string) int {
	kept := s.curves[:0]
	removed := 0
	for _, c := range s.curves {
		if c.Label == label {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(s.curves); i++ {
		s.curves[i] = Curve{}
	}
	s.curves = kept
	return removed
}

// Len returns the number of curves.
func (s *CurveSet) Len() int { return len(s.curves) }

// Curves returns deep copies of the curves in insertion order.
func (s *CurveSet) Curves() []Curve {
	out := make([]Curve, len(s.curves))
	for i, c := range s.curves {
		out[i] = c.Clone()
	}
	return out
}

// Labels returns the curve labels in insertion order.
func (s *CurveSet) Labels() []string {
	out := make([]string, len(s.curves))
	for i, c := range s.curves {
		out[i] = c.Label
	}
	return out
}
