// SPDX-License-Identifier: MIT

// Package config loads a radar run description from YAML or TOML.
//
// The format is chosen by file extension (.yaml, .yml, .toml). Unknown keys
// are rejected in both formats so that a typo never silently falls back to a
// default. Fields left out keep the values of DefaultConfig.
//
// The graph is given either as a dense adjacency matrix or as an edge list:
//
//	alpha: 0.01
//	beta: 0.01
//	gamma: 0.1
//	max_iters: 20
//	top: 2
//	backend: gonum
//	attributes:
//	  - [4, 1]
//	  - [5, 1]
//	edges:
//	  - {from: 0, to: 1}
package config
