// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/l"
	"github.com/katalvlaran/warp/dtw"
	"github.com/spf13/cobra"
)

// flags shared by every command of one invocation.
type flags struct {
	s1, s2    string
	input     string
	penalty   float64
	penaltyS1 float64
	penaltyS2 float64
	strategy  string
	format    string
	verbose   bool
	logJSON   bool
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree with fresh flag storage.
func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "dtwctl",
		Short: "Dynamic Time Warping with directional step penalties",
		Long: `dtwctl aligns two numeric sequences with Dynamic Time Warping.

A vertical step (advance along s1 only) costs --penalty-s1, a horizontal step
(advance along s2 only) costs --penalty-s2. --penalty sets both directions
unless a directional flag overrides it.

Sequences come from --s1/--s2 (comma-separated) or --input (YAML with s1 and
s2 lists).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.s1, "s1", "", "first sequence, comma-separated")
	pf.StringVar(&f.s2, "s2", "", "second sequence, comma-separated")
	pf.StringVarP(&f.input, "input", "i", "", "YAML file with s1 and s2 lists")
	pf.Float64Var(&f.penalty, "penalty", dtw.DefaultPenalty, "penalty for both non-diagonal steps")
	pf.Float64Var(&f.penaltyS1, "penalty-s1", dtw.DefaultPenalty, "penalty for vertical steps (advance s1 only)")
	pf.Float64Var(&f.penaltyS2, "penalty-s2", dtw.DefaultPenalty, "penalty for horizontal steps (advance s2 only)")
	pf.StringVar(&f.strategy, "strategy", dtw.DefaultStrategy.String(), "evaluator tier: reference, optimized")
	pf.StringVarP(&f.format, "format", "o", "text", "output format: text, yaml")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log evaluation details to stderr")
	pf.BoolVar(&f.logJSON, "log-json", false, "log as JSON")

	root.AddCommand(
		newDistanceCmd(f),
		newPathCmd(f),
		newMatrixCmd(f),
		newCompareCmd(f),
		newConformanceCmd(f),
		newVersionCmd(),
	)

	return root
}

// dtwOptions turns the flags into dtw options. Only flags the user set are
// forwarded, so dtw's own penalty resolution applies.
func (f *flags) dtwOptions(cmd *cobra.Command, logger l.Logger) ([]dtw.Option, error) {
	var opts []dtw.Option
	changed := cmd.Flags().Changed
	if changed("penalty") {
		opts = append(opts, dtw.WithPenalty(f.penalty))
	}
	if changed("penalty-s1") {
		opts = append(opts, dtw.WithPenaltyS1(f.penaltyS1))
	}
	if changed("penalty-s2") {
		opts = append(opts, dtw.WithPenaltyS2(f.penaltyS2))
	}
	s, err := parseStrategy(f.strategy)
	if err != nil {
		return nil, err
	}
	opts = append(opts, dtw.WithStrategy(s))
	if logger != nil {
		opts = append(opts, dtw.WithLogger(logger))
	}

	return opts, nil
}

// newLogger returns nil unless --verbose is set.
func (f *flags) newLogger(w io.Writer) (l.Logger, error) {
	if !f.verbose {
		return nil, nil
	}

	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:     w,
		JsonFormat: f.logJSON,
		AddSource:  false,
	})
}

func parseStrategy(name string) (dtw.Strategy, error) {
	switch name {
	case dtw.Reference.String():
		return dtw.Reference, nil
	case dtw.Optimized.String():
		return dtw.Optimized, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want reference or optimized)", name)
	}
}

// run wraps a command body with input loading and logger lifetime.
func (f *flags) run(body func(cmd *cobra.Command, s1, s2 []float64, opts []dtw.Option) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logger, err := f.newLogger(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		if logger != nil {
			defer logger.Close()
		}
		s1, s2, err := f.sequences()
		if err != nil {
			return err
		}
		opts, err := f.dtwOptions(cmd, logger)
		if err != nil {
			return err
		}

		return body(cmd, s1, s2, opts)
	}
}
