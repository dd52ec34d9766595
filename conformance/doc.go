// SPDX-License-Identifier: MIT

// Package conformance runs a YAML corpus of DTW cases against both evaluator
// tiers.
//
// A corpus holds two kinds of entries:
//
//   - cases: fixed inputs with expectations (distance, path, error, or an
//     ordering against another case);
//   - generated: inputs synthesized with package series (ramp, pulse,
//     chirp, optionally resampled with Stretch), checked for tier
//     equivalence only.
//
// Every entry, expected to succeed or not, is also passed through
// dtw.CheckEquivalence. Loading follows load → apply defaults → validate;
// Default returns the corpus shipped with the package.
package conformance
