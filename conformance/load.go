// SPDX-License-Identifier: MIT

package conformance

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCorpus indicates a corpus that parsed but failed validation.
var ErrInvalidCorpus = errors.New("conformance: invalid corpus")

//go:embed corpus/default.yaml
var defaultCorpus []byte

// Load reads a corpus from a YAML file at path, applies defaults and
// validates it.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %q: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("corpus %q: %w", path, err)
	}

	return c, nil
}

// Parse decodes a corpus from YAML, applies defaults and validates it.
// Unknown fields are rejected.
func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF; validation reports it as empty.
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}

	ApplyDefaults(&c)
	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Default returns the corpus shipped with the package.
func Default() (*Corpus, error) {
	return Parse(defaultCorpus)
}
