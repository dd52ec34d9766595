// SPDX-License-Identifier: MIT

// dtwctl computes asymmetric-penalty DTW distances, paths and cost matrices
// from the command line, and runs the evaluator conformance corpus.
//
// Usage:
//
//	# Distance with directional penalties
//	dtwctl distance --s1 0,1,2,3,4,5,6,7,8 --s2 0,2,4,6,8 --penalty-s1 2 --penalty-s2 0.5
//
//	# Warping path, sequences read from YAML
//	dtwctl path --input pair.yaml --penalty 1
//
//	# Accumulated-cost matrix
//	dtwctl matrix --s1 0,1,2 --s2 0,1
//
//	# Reference vs optimized evaluator on one input
//	dtwctl compare --s1 0,1,2,3,4,5,6,7,8 --s2 0,2,4,6,8 --penalty-s1 2 --penalty-s2 0.5
//
//	# Run the shipped conformance corpus (or --corpus file.yaml)
//	dtwctl conformance
package main

func main() {
	Execute()
}
