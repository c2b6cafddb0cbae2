// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, Hadamard product, matrix
// multiplication, transpose and scalar scaling. All functions perform strict
// fail-fast validation and return wrapped sentinels on dimension mismatches.
//
// Notes:
//   - *Dense operands are read through their flat buffers. Any other Matrix is
//     first materialized into a *Dense via At (asDense), so there is exactly one
//     arithmetic loop per kernel and both paths give identical results.
//   - Results are always fresh *Dense values; operands are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial value for accumulations (dot products, substitutions).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opInverse   = "Inverse"
	opTrace     = "Trace"
	opFrobenius = "FrobeniusNorm"
	opSum       = "Sum"
	opRowSums   = "RowSums"
	opRowNorms  = "RowNorms"
	opDiag      = "NewDiag"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryOperands validates a same-shape pair and returns both as *Dense.
func binaryOperands(a, b Matrix) (*Dense, *Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, nil, err
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, err
	}

	return da, db, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: validate identical shapes, flatten operands.
//   - Stage 2: single flat loop 0..r*c−1 into a fresh result.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	da, db, err := binaryOperands(a, b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape; NaN/Inf propagate.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range dm.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Hadamard computes the element-wise product (a ⊙ b).
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Hadamard").
func Hadamard(a, b Matrix) (Matrix, error) {
	da, db, err := binaryOperands(a, b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	for idx := range res.data {
		res.data[idx] = da.data[idx] * db.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); flatten operands; allocate C (aRows×bCols).
//   - Stage 2: i→k→j loop order; the inner j loop walks contiguous rows of B and C.
//     Zero entries of A are skipped.
//
// Behavior highlights:
//   - Deterministic accumulation order for every C[i,j] (k ascending).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
//
// AI-Hints:
//   - Keep operands as *Dense to skip the asDense copy.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                          int
		av                               float64
		rowOffsetA, rowOffsetB, rowOffsR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a vector x of length Cols(m).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, dm.r)
	var (
		i, j, base int
		sum        float64
	)
	for i = 0; i < dm.r; i++ {
		sum = ZeroSum
		base = i * dm.c
		for j = 0; j < dm.c; j++ {
			sum += dm.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
