package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-difeq/eqxml"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "inspect FILE.xml",
		Short:       "Print the points of an exported EQ curve",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open curve: %w", err)
			}
			defer f.Close()

			c, err := eqxml.Decode(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			rows := make([][]string, len(c.Points))
			for i, p := range c.Points {
				rows[i] = []string{eqxml.FormatNumber(p.F), eqxml.FormatNumber(p.D)}
			}
			return writeData(cmd.OutOrStdout(), c.Name, []string{"Hz", "dB"}, rows,
				[]columnAlignment{alignRight, alignRight})
		},
	}
}
