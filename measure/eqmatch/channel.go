package eqmatch

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-difeq/dsp/spectrum"
)

// ChannelMode selects which physical channels feed the two curve slots.
type ChannelMode int

const (
	ChannelLeftPlusRight ChannelMode = iota
	ChannelLeft
	ChannelRight
)

// String returns "L+R", "L" or "R".
func (m ChannelMode) String() string {
	switch m {
	case ChannelLeftPlusRight:
		return "L+R"
	case ChannelLeft:
		return "L"
	case ChannelRight:
		return "R"
	default:
		return fmt.Sprintf("ChannelMode(%d)", int(m))
	}
}

// ParseChannelMode accepts "L", "R" and "L+R" (case-insensitive) as well as
// "left", "right" and "both".
func ParseChannelMode(s string) (ChannelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l+r", "lr", "both", "stereo":
		return ChannelLeftPlusRight, nil
	case "l", "left":
		return ChannelLeft, nil
	case "r", "right":
		return ChannelRight, nil
	default:
		return 0, fmt.Errorf("eqmatch: unknown channel mode %q", s)
	}
}

// Selection holds the physical channel index analyzed for each curve slot.
type Selection [2]int

// ChannelFallback records that a requested channel did not exist and
// channel 0 was analyzed for both slots instead. It is a notice, not an
// error.
type ChannelFallback struct {
	Path      string
	Mode      ChannelMode
	Available int
}

func (n ChannelFallback) String() string {
	return fmt.Sprintf("%s: channel mode %s needs 2 channels, file has %d; using channel 0 for both slots",
		n.Path, n.Mode, n.Available)
}

// SelectChannels maps mode onto channel indices for a file with numChannels
// channels. The returned flag reports a fallback to channel 0.
func SelectChannels(numChannels int, mode ChannelMode) (Selection, bool, error) {
	if numChannels < 1 {
		return Selection{}, false, ErrNoChannels
	}

	switch mode {
	case ChannelLeft:
		return Selection{0, 0}, false, nil
	case ChannelRight:
		if numChannels < 2 {
			return Selection{0, 0}, true, nil
		}
		return Selection{1, 1}, false, nil
	case ChannelLeftPlusRight:
		if numChannels < 2 {
			return Selection{0, 0}, true, nil
		}
		return Selection{0, 1}, false, nil
	default:
		return Selection{}, false, fmt.Errorf("eqmatch: unknown channel mode %d", int(mode))
	}
}

// AnalyzeChannels computes the averaged spectrum for both slots of sel.
// A channel used by both slots is analyzed once and copied.
func AnalyzeChannels(channels [][]float64, sampleRate float64, sel Selection, a *spectrum.Analyzer) ([2]spectrum.Spectrum, error) {
	var out [2]spectrum.Spectrum

	for slot, idx := range sel {
		if idx < 0 || idx >= len(channels) {
			return out, fmt.Errorf("eqmatch: channel %d out of range (%d channels)", idx, len(channels))
		}

		if slot == 1 && sel[0] == idx {
			out[1] = out[0].Clone()
			continue
		}

		spec, err := a.Analyze(channels[idx], sampleRate)
		if err != nil {
			return out, fmt.Errorf("channel %d: %w", idx, err)
		}
		out[slot] = spec
	}

	return out, nil
}
