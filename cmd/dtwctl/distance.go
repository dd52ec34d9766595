// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/warp/dtw"
	"github.com/spf13/cobra"
)

func newDistanceCmd(f *flags) *cobra.Command {
	var memory string
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Print the DTW distance",
		Long: `Compute the DTW distance between s1 and s2.

The distance is sqrt of the accumulated squared cost; penalties are added
unsquared. With --memory tworows (the default) only two rows are kept.`,
		Args: cobra.NoArgs,
	}
	cmd.Flags().StringVar(&memory, "memory", dtw.TwoRows.String(), "storage mode: full, tworows")

	cmd.RunE = f.run(func(cmd *cobra.Command, s1, s2 []float64, opts []dtw.Option) error {
		mode, err := parseMemoryMode(memory)
		if err != nil {
			return err
		}
		res, err := dtw.DTW(s1, s2, append(opts, dtw.WithMemoryMode(mode))...)
		if err != nil {
			return err
		}
		out := newResult(res.Penalties, res.Strategy.String()).withDistance(res.Distance)

		return emit(cmd.OutOrStdout(), f.format, out, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, formatFloat(res.Distance))
			return err
		})
	})

	return cmd
}

func parseMemoryMode(name string) (dtw.MemoryMode, error) {
	switch name {
	case dtw.FullMatrix.String():
		return dtw.FullMatrix, nil
	case dtw.TwoRows.String():
		return dtw.TwoRows, nil
	default:
		return 0, fmt.Errorf("unknown memory mode %q (want full or tworows)", name)
	}
}
