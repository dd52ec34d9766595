// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/warp/conformance"
	"github.com/spf13/cobra"
)

var errConformance = errors.New("conformance run failed")

func newConformanceCmd(f *flags) *cobra.Command {
	var corpusPath string
	cmd := &cobra.Command{
		Use:   "conformance",
		Short: "Run the evaluator conformance corpus",
		Long: `Run every corpus entry with both evaluator tiers, check the expected
distances, paths and errors, and verify tier equivalence.

Without --corpus the corpus shipped with dtwctl is used. Sequence and penalty
flags are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := f.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			if logger != nil {
				defer logger.Close()
			}

			var c *conformance.Corpus
			if corpusPath != "" {
				c, err = conformance.Load(corpusPath)
			} else {
				c, err = conformance.Default()
			}
			if err != nil {
				return err
			}

			rep := conformance.NewRunner(logger).Run(c)
			w := cmd.OutOrStdout()
			for _, o := range rep.Outcomes {
				status := "ok  "
				if !o.Passed() {
					status = "FAIL"
				}
				fmt.Fprintf(w, "%s %s\n", status, o.Name)
				for _, msg := range o.Failures {
					fmt.Fprintf(w, "     %s\n", msg)
				}
			}
			fmt.Fprintf(w, "%d passed, %d failed\n", rep.Passed, rep.Failed)
			if !rep.OK() {
				return errConformance
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "corpus YAML file (default: shipped corpus)")

	return cmd
}
