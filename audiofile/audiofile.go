package audiofile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-audio/wav"
	"github.com/h2non/filetype"
)

// headerSize is the number of leading bytes filetype needs to match every
// container it knows.
const headerSize = 262

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// Audio is decoded sample data. All channels have the same length.
type Audio struct {
	Channels   [][]float64
	SampleRate int
}

// NumChannels returns the channel count.
func (a Audio) NumChannels() int { return len(a.Channels) }

// Frames returns the number of samples per channel.
func (a Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return len(a.Channels[0])
}

// Duration returns the length in seconds.
func (a Audio) Duration() float64 {
	if a.SampleRate <= 0 {
		return 0
	}
	return float64(a.Frames()) / float64(a.SampleRate)
}

// Loader reads audio files from disk. The zero value is ready to use.
type Loader struct{}

// Load opens path, identifies its container and decodes it.
func (Loader) Load(path string) (Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Audio{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Audio{}, fmt.Errorf("audiofile: open %s: %w", path, err)
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return Audio{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Decode identifies and decodes the stream in r.
func Decode(r io.ReadSeeker) (Audio, error) {
	head := make([]byte, headerSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Audio{}, fmt.Errorf("%w: read header: %v", ErrCorrupt, err)
	}
	if n == 0 {
		return Audio{}, fmt.Errorf("%w: empty file", ErrCorrupt)
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return Audio{}, fmt.Errorf("%w: unrecognised header", ErrUnsupportedFormat)
	}
	if kind.Extension != "wav" {
		return Audio{}, fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, kind.Extension, kind.MIME.Value)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Audio{}, fmt.Errorf("audiofile: rewind: %w", err)
	}
	return decodeWAV(r)
}

func decodeWAV(r io.ReadSeeker) (Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Audio{}, fmt.Errorf("%w: invalid WAV header", ErrCorrupt)
	}

	switch dec.WavAudioFormat {
	case wavFormatPCM, wavFormatExtensible:
	default:
		return Audio{}, fmt.Errorf("%w: WAV encoding %d is not integer PCM", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Audio{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 || buf.Format.SampleRate <= 0 {
		return Audio{}, fmt.Errorf("%w: missing format information", ErrCorrupt)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(dec.BitDepth)
	}
	if bitDepth < 8 || bitDepth > 32 {
		return Audio{}, fmt.Errorf("%w: bit depth %d", ErrUnsupportedFormat, bitDepth)
	}

	return Audio{
		Channels:   deinterleave(buf.Data, buf.Format.NumChannels, bitDepth),
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// deinterleave splits interleaved integer samples into channels scaled by
// 2^(bitDepth-1). A trailing partial frame is dropped.
func deinterleave(data []int, channels, bitDepth int) [][]float64 {
	frames := len(data) / channels
	scale := 1 / float64(int64(1)<<(bitDepth-1))

	// 8-bit WAV is unsigned; go-audio hands it through unchanged.
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		base := i * channels
		for ch := range out {
			out[ch][i] = float64(data[base+ch]-offset) * scale
		}
	}
	return out
}
