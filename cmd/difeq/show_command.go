package main

import (
	"github.com/spf13/cobra"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var raw bool
	var flags *curveFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the aggregate curve of the given pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(cmd.ErrOrStderr(), flags)
			if err != nil {
				return err
			}
			if _, err := loadPairs(cmd, s, flags); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				var rows [][]string
				for _, dc := range s.DisplayCurves() {
					for i, f := range dc.Freqs {
						rows = append(rows, []string{dc.Label, formatHz(f), formatDB(dc.Values[i])})
					}
				}
				return writeData(out, "Raw curves", []string{"Pair", "Hz", "dB"}, rows,
					[]columnAlignment{alignLeft, alignRight, alignRight})
			}

			agg, err := s.Recompute()
			if err != nil {
				return err
			}
			rows := make([][]string, agg.Len())
			for i, f := range agg.Freqs {
				rows[i] = []string{formatHz(f), formatDB(agg.Channels[0][i]), formatDB(agg.Channels[1][i]), formatDB(agg.Mean[i])}
			}
			return writeData(out, "Aggregate curve", []string{"Hz", "L dB", "R dB", "Mean dB"}, rows,
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight})
		},
	}

	flags = addCurveFlags(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the unsmoothed per-pair curves instead of the aggregate")
	return cmd
}
