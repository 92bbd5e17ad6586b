package eqxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrLengthMismatch is returned when frequency and gain slices differ in
// length.
var ErrLengthMismatch = errors.New("eqxml: frequency and gain counts differ")

// Point is one curve vertex: gain D in dB at frequency F in Hz.
type Point struct {
	F float64
	D float64
}

// Curve is a named list of points in file order.
type Curve struct {
	Name   string
	Points []Point
}

type document struct {
	XMLName xml.Name     `xml:"equalizationeffect"`
	Curve   curveElement `xml:"curve"`
}

type curveElement struct {
	Name   string         `xml:"name,attr"`
	Points []pointElement `xml:"point"`
}

type pointElement struct {
	F string `xml:"f,attr"`
	D string `xml:"d,attr"`
}

// Points pairs freqs with gains.
func Points(freqs, gains []float64) ([]Point, error) {
	if len(freqs) != len(gains) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(freqs), len(gains))
	}

	out := make([]Point, len(freqs))
	for i := range freqs {
		out[i] = Point{F: freqs[i], D: gains[i]}
	}
	return out, nil
}

// Encode writes a single-curve document to w, indented with one tab per
// nesting level and terminated by a newline.
func Encode(w io.Writer, name string, points []Point) error {
	doc := document{Curve: curveElement{
		Name:   name,
		Points: make([]pointElement, len(points)),
	}}
	for i, p := range points {
		doc.Curve.Points[i] = pointElement{F: FormatNumber(p.F), D: FormatNumber(p.D)}
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("eqxml: encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("eqxml: encode: %w", err)
	}
	return nil
}

// Decode parses a document written by Encode or by Audacity. Only the first
// curve is returned.
func Decode(r io.Reader) (Curve, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Curve{}, fmt.Errorf("eqxml: decode: %w", err)
	}

	c := Curve{Name: doc.Curve.Name, Points: make([]Point, len(doc.Curve.Points))}
	for i, p := range doc.Curve.Points {
		f, err := strconv.ParseFloat(p.F, 64)
		if err != nil {
			return Curve{}, fmt.Errorf("eqxml: point %d frequency: %w", i, err)
		}
		d, err := strconv.ParseFloat(p.D, 64)
		if err != nil {
			return Curve{}, fmt.Errorf("eqxml: point %d gain: %w", i, err)
		}
		c.Points[i] = Point{F: f, D: d}
	}
	return c, nil
}
