// SPDX-License-Identifier: MIT

// Constructors with intention-revealing names.
//
// AI-Hints:
//   - Use NewIdentity/NewDiag to build the regularization terms of closed-form updates.
//   - Use NewOnes to turn a reduction into a product (e.g., row sums = M·1).

package matrix

import "math"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiag returns the len(v)×len(v) diagonal matrix with v on the diagonal.
// Values must be finite: a ±Inf/NaN on a diagonal is rejected with ErrNaNInf,
// which is how callers learn about divisions by zero upstream.
func NewDiag(v []float64) (*Dense, error) {
	n := len(v)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, matrixErrorf(opDiag, denseErrorf(ctxSet, i, i, ErrNaNInf))
		}
		D.data[i*n+i] = x
	}

	return D, nil
}

// NewOnes returns a rows×cols matrix filled with 1.
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = 1.0
	}

	return m, nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	out := make([]float64, dm.r)
	for i := range out {
		out[i] = dm.data[i*dm.c+i]
	}

	return out, nil
}
