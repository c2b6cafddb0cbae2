// SPDX-License-Identifier: MIT

// Package radar is the root of the RADAR module: residual-based anomaly
// detection on attributed networks.
//
// A network is given as an n×d attribute matrix X (one row per node) and an
// n×n adjacency matrix A. RADAR learns a residual matrix R that keeps
// attribute information the rest of the network cannot reconstruct, smoothed
// over the graph Laplacian. Nodes whose residual rows carry the largest L2
// norm are reported as anomalies.
//
// Layout:
//
//	matrix/       dense float64 matrices, kernels, LU inverse, reductions
//	linalg/       pluggable backend (native matrix or gonum/mat)
//	laplacian/    degree matrix, Laplacian L = D − A, edge-list loader
//	radar/        the iterative solver, scoring and ranking, batch runs
//	metrics/      Prometheus observer for solver runs
//	config/       YAML/TOML run descriptions
//	internal/cli/ cobra commands behind cmd/radar
//
// Quick start:
//
//	X, _ := matrix.NewDenseFromRows(attrs)
//	A, _ := matrix.NewDenseFromRows(adj)
//	rep, err := radar.Detect(ctx, X, A, radar.DefaultOptions(), 5)
//	for _, s := range rep.Ranking {
//		fmt.Println(s.Node, s.Score)
//	}
package radar
