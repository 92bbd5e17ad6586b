package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV writes channels as a 16-bit PCM WAV file named name inside
// t.TempDir and returns its path. All channels must have equal length;
// samples are clipped to [-1, 1].
func WriteWAV(t testing.TB, name string, sampleRate int, channels ...[]float64) string {
	t.Helper()

	if len(channels) == 0 {
		t.Fatal("WriteWAV requires at least one channel")
	}

	frames := len(channels[0])
	data := make([]int, 0, frames*len(channels))
	for i := 0; i < frames; i++ {
		for _, ch := range channels {
			v := math.Max(-1, math.Min(1, ch[i]))
			data = append(data, int(math.Round(v*32767)))
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create wav: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, len(channels), 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(channels), SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("finalize wav: %v", err)
	}

	return path
}
