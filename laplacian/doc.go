// SPDX-License-Identifier: MIT

// Package laplacian turns a weighted adjacency matrix into the degree matrix D
// and the combinatorial graph Laplacian L = D − A used to regularize the
// residual solver.
//
// What:
//   - Build(A)      → (D, L) with D[i,i] = Σ_j A[i,j] and L = D − A.
//   - Degrees(A)    → the row-sum vector (weighted degree / out-strength).
//   - FromEdges     → a dense adjacency assembled from an edge list.
//   - IsSymmetric   → a tolerance check callers use before trusting an
//     undirected interpretation of A.
//
// Why:
//   - tr(RᵗLR) = ½ Σ_{i,j} A[i,j]·‖R_i − R_j‖² for symmetric A, so the Laplacian
//     term pulls the residuals of strongly connected nodes together.
//
// Contract:
//   - Inputs are never mutated; every result is a fresh *matrix.Dense.
//   - Diagonal entries of A (self-loops) count at their stored weight, so they
//     cancel out of L and only affect D.
//   - Row sums of L are zero by construction (up to floating-point rounding).
//
// Complexity:
//   - Build/Degrees: O(n²) time, O(n²) space for the two outputs.
//   - FromEdges: O(n² + |E|).
package laplacian
