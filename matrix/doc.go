// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra layer of radar.
//
// 🚀 What is in here?
//
//	A small, deterministic, zero-dependency toolkit covering exactly what the
//	residual-analysis solver needs:
//	  • Dense: row-major float64 storage behind the Matrix interface
//	  • Kernels: Add, Sub, Scale, Mul, Transpose, Hadamard, MatVec
//	  • Inverse: LU with partial pivoting, scale-relative singularity checks
//	  • Reductions: Trace, FrobeniusNorm, Sum, RowSums, RowNorms, AllClose
//	  • Constructors: NewZeros, NewIdentity, NewDiag, NewOnes, NewDenseFromRows
//
// ✨ Guarantees:
//   - Operands are never mutated; every kernel allocates a fresh *Dense.
//   - Fixed loop orders: identical inputs give bit-identical outputs.
//   - No panics on user input; failures are sentinel errors matched via errors.Is.
//   - *Dense operands hit flat-slice fast paths; any other Matrix goes through At/Set.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
//	inv, err := matrix.Inverse(a)
//	if errors.Is(err, matrix.ErrSingular) {
//	    // handle singular input
//	}
//
// Complexity: kernels are O(r·c), Mul is O(r·k·c), LU/Inverse are O(n³).
package matrix
