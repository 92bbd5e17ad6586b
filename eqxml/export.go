package eqxml

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// Suffixes appended to the export base path for the channel-mean, left and
// right curves.
const (
	SuffixMean  = "_AV"
	SuffixLeft  = "_L"
	SuffixRight = "_R"
)

// ExportError reports a file that could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("eqxml: write %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// WriteFile writes a single curve to path. The document is written to a
// temporary file in the same directory and renamed into place.
func WriteFile(path, name string, points []Point) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if err := Encode(tmp, name, points); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &ExportError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &ExportError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &ExportError{Path: path, Err: err}
	}
	return nil
}

// TrimBase strips a trailing ".xml" (any case) from path.
func TrimBase(path string) string {
	if ext := filepath.Ext(path); strings.EqualFold(ext, ".xml") {
		return strings.TrimSuffix(path, ext)
	}
	return path
}

// TriplePaths returns the mean, left and right output paths for basePath.
func TriplePaths(basePath string) [3]string {
	base := TrimBase(basePath)
	return [3]string{
		base + SuffixMean + ".xml",
		base + SuffixLeft + ".xml",
		base + SuffixRight + ".xml",
	}
}

// ExportTriple writes the mean, left and right curves next to basePath and
// returns the written paths. Each curve is named after its own file. An
// advisory lock on "<base>.lock" serialises concurrent exports to the same
// base; the lock file is left in place.
func ExportTriple(basePath string, freqs, mean, left, right []float64) ([]string, error) {
	series := [3][]float64{mean, left, right}
	sets := make([][]Point, len(series))
	for i, gains := range series {
		pts, err := Points(freqs, gains)
		if err != nil {
			return nil, err
		}
		sets[i] = pts
	}

	lockPath := TrimBase(basePath) + ".lock"
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return nil, &ExportError{Path: lockPath, Err: err}
	}
	defer func() { _ = lock.Unlock() }()

	paths := TriplePaths(basePath)
	written := make([]string, 0, len(paths))
	for i, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".xml")
		if err := WriteFile(path, name, sets[i]); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
