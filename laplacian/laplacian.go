// SPDX-License-Identifier: MIT

package laplacian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/radar/matrix"
)

const (
	opBuild       = "Build"
	opDegrees     = "Degrees"
	opIsSymmetric = "IsSymmetric"
)

// laplacianErrorf keeps the "laplacian.<Op>: <cause>" shape used across the module.
func laplacianErrorf(op string, err error) error {
	return fmt.Errorf("laplacian.%s: %w", op, err)
}

// Degrees returns the weighted degree of every node: deg[i] = Σ_j A[i,j].
//
// Unlike a structural degree count, every stored entry contributes at its value,
// including the diagonal and negative weights; no policy is applied.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²).
func Degrees(A matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateSquare(A); err != nil {
		return nil, laplacianErrorf(opDegrees, err)
	}
	deg, err := matrix.RowSums(A)
	if err != nil {
		return nil, laplacianErrorf(opDegrees, err)
	}

	return deg, nil
}

// Build returns the degree matrix D and the Laplacian L = D − A.
//
// Implementation:
//   - Stage 1: ValidateSquare(A); deg ← Degrees(A).
//   - Stage 2: D ← diag(deg).
//   - Stage 3: L[i,j] ← −A[i,j] for i≠j, L[i,i] ← deg[i] − A[i,i], in one i→j pass.
//
// Behavior highlights:
//   - A is read-only; D and L are fresh.
//   - Σ_j L[i,j] = 0 for every row.
//   - For symmetric A with non-negative weights, L is symmetric positive semi-definite.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrNaNInf when a row sum is not finite.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Build(A matrix.Matrix) (D, L *matrix.Dense, err error) {
	deg, err := Degrees(A)
	if err != nil {
		return nil, nil, laplacianErrorf(opBuild, err)
	}
	if D, err = matrix.NewDiag(deg); err != nil {
		return nil, nil, laplacianErrorf(opBuild, err)
	}

	n := len(deg)
	if L, err = matrix.NewZeros(n, n); err != nil {
		return nil, nil, laplacianErrorf(opBuild, err)
	}
	var (
		i, j int
		a, v float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a, err = A.At(i, j); err != nil {
				return nil, nil, laplacianErrorf(opBuild, err)
			}
			v = -a
			if i == j {
				v += deg[i]
			}
			if err = L.Set(i, j, v); err != nil {
				return nil, nil, laplacianErrorf(opBuild, err)
			}
		}
	}

	return D, L, nil
}

// IsSymmetric reports whether |A[i,j] − A[j,i]| ≤ eps for all i<j.
//
// Asymmetry is an answer, not an error: only nil, non-square input or a
// non-finite eps fail.
func IsSymmetric(A matrix.Matrix, eps float64) (bool, error) {
	err := matrix.ValidateSymmetric(A, eps)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, matrix.ErrAsymmetry):
		return false, nil
	default:
		return false, laplacianErrorf(opIsSymmetric, err)
	}
}
