// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/radar/linalg"
	"github.com/katalvlaran/radar/matrix"
	"github.com/katalvlaran/radar/radar"
)

// demoAttributes and demoAdjacency are the built-in 4-node example.
// Node 3 has a self-loop and an asymmetric row.
var (
	demoAttributes = [][]float64{
		{4, 1},
		{5, 1},
		{3, 1},
		{5, 1},
	}
	demoAdjacency = [][]float64{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 1, 1, 1},
	}
)

func newDemoCmd() *cobra.Command {
	var (
		backend string
		format  string
		top     int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Score the built-in 4-node example graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			b, err := linalg.ByName(backend)
			if err != nil {
				return err
			}
			X, err := matrix.NewDenseFromRows(demoAttributes)
			if err != nil {
				return err
			}
			A, err := matrix.NewDenseFromRows(demoAdjacency)
			if err != nil {
				return err
			}
			opts := radar.DefaultOptions()
			opts.Backend = b

			return execute(cmd.Context(), cmd, run{X: X, A: A, opts: opts, top: top, format: format, source: "demo"})
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", linalg.NameNative, "linear algebra backend: native or gonum")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table or json")
	cmd.Flags().IntVarP(&top, "top", "n", len(demoAttributes), "number of nodes to report")

	return cmd
}
