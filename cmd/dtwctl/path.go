// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/warp/dtw"
	"github.com/spf13/cobra"
)

func newPathCmd(f *flags) *cobra.Command {
	var noDistance bool
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print one optimal warping path",
		Long: `Compute one optimal warping path, 0-based, from (0,0) to (n-1,m-1).

Ties between equal-cost moves prefer diagonal, then vertical, then horizontal.`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().BoolVar(&noDistance, "no-distance", false, "omit the distance line")

	cmd.RunE = f.run(func(cmd *cobra.Command, s1, s2 []float64, opts []dtw.Option) error {
		res, err := dtw.DTW(s1, s2, append(opts, dtw.WithPath())...)
		if err != nil {
			return err
		}
		out := newResult(res.Penalties, res.Strategy.String()).withPath(res.Path)
		if !noDistance {
			out.withDistance(res.Distance)
		}

		return emit(cmd.OutOrStdout(), f.format, out, func(w io.Writer) error {
			if !noDistance {
				if _, err := fmt.Fprintf(w, "distance %s\n", formatFloat(res.Distance)); err != nil {
					return err
				}
			}
			for _, c := range res.Path {
				if _, err := fmt.Fprintf(w, "%d %d\n", c.I, c.J); err != nil {
					return err
				}
			}
			return nil
		})
	})

	return cmd
}
