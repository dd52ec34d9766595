// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/warp/dtw"
	"github.com/spf13/cobra"
)

// compareOutput is the structured form of the compare command.
type compareOutput struct {
	PenaltyS1         float64 `yaml:"penalty_s1"`
	PenaltyS2         float64 `yaml:"penalty_s2"`
	ReferenceDistance float64 `yaml:"reference_distance"`
	OptimizedDistance float64 `yaml:"optimized_distance"`
	DistanceDiff      float64 `yaml:"distance_diff"`
	MatrixDiff        float64 `yaml:"matrix_diff"`
	PathsIdentical    bool    `yaml:"paths_identical"`
	Equal             bool    `yaml:"equal"`
}

func newCompareCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run the reference and optimized evaluators side by side",
		Long: `Evaluate the input with both evaluator tiers and report their distances,
the largest matrix cell difference and whether the recovered paths match.
Exits non-zero when the tiers diverge. --strategy is ignored.`,
		Args: cobra.NoArgs,
	}

	cmd.RunE = f.run(func(cmd *cobra.Command, s1, s2 []float64, opts []dtw.Option) error {
		rep, err := dtw.CheckEquivalence(s1, s2, opts...)
		if rep == nil {
			return err
		}
		out := compareOutput{
			PenaltyS1:         rep.Penalties.S1,
			PenaltyS2:         rep.Penalties.S2,
			ReferenceDistance: rep.ReferenceDistance,
			OptimizedDistance: rep.OptimizedDistance,
			DistanceDiff:      rep.DistanceDiff,
			MatrixDiff:        rep.MatrixDiff,
			PathsIdentical:    rep.PathsIdentical,
			Equal:             err == nil,
		}
		if werr := emit(cmd.OutOrStdout(), f.format, out, func(w io.Writer) error {
			_, err := fmt.Fprintf(w,
				"penalty_s1=%g penalty_s2=%g\nreference: %s\noptimized: %s\ndifference: %g\nmatrix difference: %g\nidentical paths: %v\n",
				out.PenaltyS1, out.PenaltyS2,
				formatFloat(out.ReferenceDistance), formatFloat(out.OptimizedDistance),
				out.DistanceDiff, out.MatrixDiff, out.PathsIdentical)
			return err
		}); werr != nil {
			return werr
		}

		return err
	})

	return cmd
}
