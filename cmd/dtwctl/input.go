// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// pairFile is the --input document.
type pairFile struct {
	S1 []float64 `yaml:"s1"`
	S2 []float64 `yaml:"s2"`
}

var errNoInput = errors.New("no input: give --s1 and --s2, or --input")

// sequences resolves the two input sequences. --input excludes --s1/--s2.
func (f *flags) sequences() ([]float64, []float64, error) {
	if f.input != "" {
		if f.s1 != "" || f.s2 != "" {
			return nil, nil, errors.New("--input cannot be combined with --s1/--s2")
		}
		return loadPair(f.input)
	}
	if f.s1 == "" && f.s2 == "" {
		return nil, nil, errNoInput
	}
	s1, err := parseSeries(f.s1)
	if err != nil {
		return nil, nil, fmt.Errorf("--s1: %w", err)
	}
	s2, err := parseSeries(f.s2)
	if err != nil {
		return nil, nil, fmt.Errorf("--s2: %w", err)
	}

	return s1, s2, nil
}

// parseSeries parses "1, 2.5,-3" into floats. An empty string is an empty
// sequence; "nan" and "inf" are accepted as strconv spells them.
func parseSeries(text string) ([]float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []float64{}, nil
	}
	fields := strings.Split(text, ",")
	out := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

func loadPair(path string) ([]float64, []float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input %q: %w", path, err)
	}
	var p pairFile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, nil, fmt.Errorf("failed to parse input %q: %w", path, err)
	}

	return p.S1, p.S2, nil
}
