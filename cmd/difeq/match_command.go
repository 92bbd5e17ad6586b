package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var flags *curveFlags

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Analyze pairs and optionally export the matching EQ curves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.newSession(cmd.ErrOrStderr(), flags)
			if err != nil {
				return err
			}

			results, err := loadPairs(cmd, s, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					rows = append(rows, []string{r.Request.Source + " -> " + r.Request.Reference, "failed", r.Err.Error()})
					continue
				}
				notes := make([]string, 0, len(r.Notices))
				for _, n := range r.Notices {
					notes = append(notes, n.String())
				}
				rows = append(rows, []string{r.Label, "ok", strings.Join(notes, "; ")})
			}
			if err := writeData(out, "Pairs", []string{"Pair", "Status", "Notes"}, rows, nil); err != nil {
				return err
			}

			agg, err := s.Recompute()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Aggregate: %d pairs, %d points, gain %s dB\n", s.Len(), agg.Len(), formatDB(agg.Gain))

			if outPath != "" {
				paths, err := s.ExportCurves(outPath)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintf(out, "Wrote %s\n", p)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d pairs failed", failed, len(results))
			}
			return nil
		},
	}

	flags = addCurveFlags(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Export base path; writes BASE_AV.xml, BASE_L.xml and BASE_R.xml")
	return cmd
}
