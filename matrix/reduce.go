// SPDX-License-Identifier: MIT

package matrix

import "math"

// Trace returns Σ_i m[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare (wrapped with "Trace").
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	for i := 0; i < dm.r; i++ {
		sum += dm.data[i*dm.c+i]
	}

	return sum, nil
}

// FrobeniusNorm returns √(Σ_ij m[i,j]²).
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	sum := ZeroSum
	for _, v := range dm.data {
		sum += v * v
	}

	return math.Sqrt(sum), nil
}

// Sum returns the sum of all entries.
func Sum(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opSum, err)
	}

	sum := ZeroSum
	for _, v := range dm.data {
		sum += v
	}

	return sum, nil
}

// RowSums returns vector r where r[i] = Σ_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
//
// AI-Hints: this is the degree vector when m is an adjacency matrix.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}

// RowNorms returns the Euclidean norm of every row: out[i] = √(Σ_j m[i,j]²).
// Rows are independent; the loop order is fixed (i↑, j↑).
// Complexity: O(r*c).
func RowNorms(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowNorms, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowNorms, err)
	}

	out := make([]float64, dm.r)
	var (
		i, j, base int
		sum, v     float64
	)
	for i = 0; i < dm.r; i++ {
		sum = ZeroSum
		base = i * dm.c
		for j = 0; j < dm.c; j++ {
			v = dm.data[base+j]
			sum += v * v
		}
		out[i] = math.Sqrt(sum)
	}

	return out, nil
}

// AllClose checks element-wise |a−b| ≤ atol + rtol·|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close. Negative tolerances are taken by absolute value.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests and backend cross-checks.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	da, db, err := binaryOperands(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil // early-exit on first violation (NaN included)
		}
	}

	return true, nil
}
