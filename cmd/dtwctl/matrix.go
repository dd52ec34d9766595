// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/warp/dtw"
	"github.com/spf13/cobra"
)

func newMatrixCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the accumulated-cost matrix",
		Long: `Compute the (n+1)x(m+1) accumulated-cost matrix. Row 0 and column 0
are the boundary: 0 at the origin, +Inf elsewhere. The distance is the square
root of the bottom-right cell.`,
		Args: cobra.NoArgs,
	}

	cmd.RunE = f.run(func(cmd *cobra.Command, s1, s2 []float64, opts []dtw.Option) error {
		res, err := dtw.DTW(s1, s2, append(opts, dtw.WithMatrix())...)
		if err != nil {
			return err
		}
		out := newResult(res.Penalties, res.Strategy.String()).withDistance(res.Distance)
		out.Matrix = make([][]float64, res.Matrix.Rows())
		for i := range out.Matrix {
			row, err := res.Matrix.Row(i)
			if err != nil {
				return err
			}
			out.Matrix[i] = append([]float64(nil), row...)
		}

		return emit(cmd.OutOrStdout(), f.format, out, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "distance %s\n", formatFloat(res.Distance)); err != nil {
				return err
			}
			_, err := fmt.Fprint(w, res.Matrix)
			return err
		})
	})

	return cmd
}
