// SPDX-License-Identifier: MIT

// Package linalg is the seam between the radar solver and whatever performs the
// dense arithmetic.
//
// The solver only ever talks to a Backend, which exposes exactly the operations
// the residual analysis needs: construction (Zeros, Identity, Diag), arithmetic
// (Add, Sub, Scale, Mul, Transpose, Hadamard, Inverse) and reductions (Trace,
// FrobeniusNorm, Sum). Values crossing the seam are matrix.Matrix, so no solver
// code depends on how a backend lays matrices out in memory.
//
// Two backends ship with the package:
//
//	linalg.Native(): pure Go kernels from package matrix (deterministic, partial pivoting)
//	linalg.Gonum():  gonum.org/v1/gonum/mat (LAPACK-style LU with partial pivoting)
//
// Backend errors keep the matrix sentinels: a singular inversion is always
// reported as matrix.ErrSingular, whichever backend produced it.
package linalg
