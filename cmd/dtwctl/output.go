// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/warp/dtw"
	"gopkg.in/yaml.v3"
)

// result is the structured form of every command's output.
type result struct {
	Distance  *float64    `yaml:"distance,omitempty"`
	PenaltyS1 float64     `yaml:"penalty_s1"`
	PenaltyS2 float64     `yaml:"penalty_s2"`
	Strategy  string      `yaml:"strategy,omitempty"`
	Path      [][2]int    `yaml:"path,omitempty"`
	Matrix    [][]float64 `yaml:"matrix,omitempty"`
}

func newResult(p dtw.Penalties, s string) *result {
	return &result{PenaltyS1: p.S1, PenaltyS2: p.S2, Strategy: s}
}

func (r *result) withDistance(d float64) *result {
	r.Distance = &d
	return r
}

func (r *result) withPath(path []dtw.Coord) *result {
	r.Path = make([][2]int, len(path))
	for k, c := range path {
		r.Path[k] = [2]int{c.I, c.J}
	}
	return r
}

// emit writes v as YAML when format is yaml; otherwise text is called.
func emit(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return text(w)
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}

// formatFloat renders a distance with fixed precision, keeping infinities readable.
func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "+Inf"
	}

	return fmt.Sprintf("%.6f", v)
}
