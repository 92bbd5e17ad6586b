package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-difeq/internal/config"
	"github.com/cwbudde/algo-difeq/measure/eqmatch"
	"github.com/cwbudde/algo-difeq/session"
)

// curveFlags are the pair and aggregation flags shared by match and show.
type curveFlags struct {
	pairs        []string
	channels     string
	smoothing    int
	resolution   int
	rolloffStart float64
	rolloffEnd   float64

	cmd *cobra.Command
}

func addCurveFlags(cmd *cobra.Command) *curveFlags {
	f := &curveFlags{cmd: cmd}
	flags := cmd.Flags()
	flags.StringArrayVarP(&f.pairs, "pair", "p", nil, "Source and reference as SRC=REF (repeatable)")
	flags.StringVar(&f.channels, "channels", "", "Channel mode: L, R or L+R")
	flags.IntVar(&f.smoothing, "smooth", 0, "Moving-average width in grid points")
	flags.IntVar(&f.resolution, "resolution", 0, "Approximate number of output points")
	flags.Float64Var(&f.rolloffStart, "rolloff-start", 0, "Frequency where the fade to 0 dB begins (0 disables)")
	flags.Float64Var(&f.rolloffEnd, "rolloff-end", 0, "Frequency where the curve reaches 0 dB (0 disables)")
	_ = cmd.MarkFlagRequired("pair")
	return f
}

// resolve merges explicitly set flags over the configuration.
func (f *curveFlags) resolve(cfg *config.Config) (eqmatch.Params, eqmatch.ChannelMode, error) {
	params := cfg.EqParams()
	mode, err := cfg.Mode()
	if err != nil {
		return params, mode, err
	}

	flags := f.cmd.Flags()
	if flags.Changed("channels") {
		if mode, err = eqmatch.ParseChannelMode(f.channels); err != nil {
			return params, mode, err
		}
	}
	if flags.Changed("smooth") {
		params.Smoothing = f.smoothing
	}
	if flags.Changed("resolution") {
		params.Resolution = f.resolution
	}
	if flags.Changed("rolloff-start") {
		params.RolloffStart = f.rolloffStart
	}
	if flags.Changed("rolloff-end") {
		params.RolloffEnd = f.rolloffEnd
	}

	if err := params.Validate(); err != nil {
		return params, mode, err
	}
	return params, mode, nil
}

func (f *curveFlags) requests(mode eqmatch.ChannelMode) ([]session.PairRequest, error) {
	reqs := make([]session.PairRequest, 0, len(f.pairs))
	for _, p := range f.pairs {
		src, ref, ok := strings.Cut(p, "=")
		src, ref = strings.TrimSpace(src), strings.TrimSpace(ref)
		if !ok || src == "" || ref == "" {
			return nil, fmt.Errorf("invalid pair %q: expected SRC=REF", p)
		}
		reqs = append(reqs, session.PairRequest{Source: src, Reference: ref, Mode: mode})
	}
	return reqs, nil
}

// loadPairs analyzes every pair and fails when none succeeded.
func loadPairs(cmd *cobra.Command, s *session.Session, f *curveFlags) ([]session.PairResult, error) {
	reqs, err := f.requests(s.ChannelMode())
	if err != nil {
		return nil, err
	}

	results := s.AddPairs(cmd.Context(), reqs)
	if s.Len() == 0 {
		for _, r := range results {
			if r.Err != nil {
				return results, r.Err
			}
		}
		return results, session.ErrNothingToExport
	}
	return results, nil
}
