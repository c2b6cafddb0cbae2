// SPDX-License-Identifier: MIT

// Package radar detects anomalous nodes in attributed graphs by residual
// analysis.
//
// Every node i carries an attribute row X_i. The solver looks for a
// self-representation X ≈ WᵗX + R in which W explains each node through the
// others and R keeps whatever cannot be explained. Row-sparsity penalties on W
// and R (‖·‖₂,₁) and a graph smoothness penalty tr(RᵗLR) are minimized by
// alternating closed-form updates with iteratively reweighted diagonals:
//
//	R⁰ = (I + β·Dr + γ·L)⁻¹ · X
//	W  = (X·Xᵗ + α·Dw)⁻¹ · (X·Xᵗ − X·Rᵗ)      Dw[i,i] = ½ / ‖W_i‖₂
//	R  = (I + β·Dr + γ·L)⁻¹ · (X − Wᵗ·X)      Dr[i,i] = ½ / ‖R_i‖₂
//	obj = ‖X − WᵗX − R‖²_F + α·Σ‖W_i‖ + β·Σ‖R_i‖ + γ·tr(RᵗLR)
//
// The anomaly score of node i is ‖R_i‖²₂: nodes whose attributes the rest of
// the graph cannot reproduce keep large residual rows.
//
// Entry points:
//   - Solve       : the reweighted residual solver on (X, L).
//   - Score, Rank : turn a residual matrix into a stable descending ranking.
//   - Detect      : validate, build the Laplacian from A, solve, score.
//   - DetectBatch : independent Detect runs on a bounded worker group.
//
// Matrix work goes through a linalg.Backend (native Go kernels by default,
// gonum on request). Runs report progress through an optional Observer and an
// optional charmbracelet *log.Logger; both default to silence.
//
// A single run is sequential and CPU-bound. Runs that share no matrices are
// safe to execute concurrently; the solver never mutates X, A or L.
package radar
