// SPDX-License-Identifier: MIT

package matrix

import "math"

// Singularity thresholds shared by every Inverse call.
const (
	// PivotEpsilon is the float64 machine epsilon. A pivot whose magnitude is at
	// most PivotEpsilon·n·max|A_ij| is rounding noise and marks A as singular.
	PivotEpsilon = 0x1p-52

	// ConditionTolerance is the largest 1-norm condition number ‖A‖₁·‖A⁻¹‖₁
	// for which an inverse is returned. It matches gonum's mat.ConditionTolerance.
	ConditionTolerance = 1e16
)

// luDecomp is a packed LU factorization with partial pivoting: P·A = L·U.
// L (unit lower, diagonal implied) and U share one n×n buffer; row i of P·A
// is row perm[i] of A.
type luDecomp struct {
	n    int
	lu   []float64
	perm []int
}

// luFactor factorizes a square matrix with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy m; floor = PivotEpsilon·n·max|A_ij|.
//   - Stage 2: for column k, swap in the row with the largest |A[i][k]| (i ≥ k),
//     fail if that pivot is within the floor, then eliminate below it.
//
// Behavior highlights:
//   - Ties keep the lowest row index, so identical inputs give identical factors.
//   - Rank-deficient inputs whose elimination leaves only rounding residue are
//     reported as ErrSingular, not just exact zero pivots.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "LU").
//   - ErrSingular on a pivot within the floor (an all-zero matrix included).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func luFactor(m Matrix) (*luDecomp, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := src.r
	d := &luDecomp{n: n, lu: make([]float64, n*n), perm: make([]int, n)}
	copy(d.lu, src.data)
	for i := range d.perm {
		d.perm[i] = i
	}

	maxAbs := 0.0
	for _, v := range d.lu {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	floor := PivotEpsilon * float64(n) * maxAbs

	var (
		i, j, k, p  int
		pivot, f, v float64
		baseK, base int
	)
	for k = 0; k < n; k++ {
		// partial pivoting: largest magnitude in column k, lowest row on ties
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(d.lu[i*n+k]) > math.Abs(d.lu[p*n+k]) {
				p = i
			}
		}
		if p != k {
			for j = 0; j < n; j++ {
				d.lu[k*n+j], d.lu[p*n+j] = d.lu[p*n+j], d.lu[k*n+j]
			}
			d.perm[k], d.perm[p] = d.perm[p], d.perm[k]
		}

		baseK = k * n
		pivot = d.lu[baseK+k]
		if !(math.Abs(pivot) > floor) { // NaN fails too
			return nil, matrixErrorf(opLU, ErrSingular)
		}

		for i = k + 1; i < n; i++ {
			base = i * n
			f = d.lu[base+k] / pivot
			d.lu[base+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				v = d.lu[baseK+j]
				d.lu[base+j] -= f * v
			}
		}
	}

	return d, nil
}

// solveUnit solves A·x = e_col into x, using y as scratch.
func (d *luDecomp) solveUnit(col int, y, x []float64) {
	n := d.n
	var (
		i, k, base int
		sum        float64
	)
	// Forward substitution: L·y = P·e_col
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += d.lu[base+k] * y[k]
		}
		if d.perm[i] == col {
			y[i] = 1.0 - sum
		} else {
			y[i] = -sum
		}
	}
	// Backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += d.lu[base+k] * x[k]
		}
		x[i] = (y[i] - sum) / d.lu[base+i]
	}
}

// Inverse computes A⁻¹ from an LU factorization with partial pivoting.
//
// Implementation:
//   - Stage 1: factorize P·A = L·U (pivots within the rounding floor fail).
//   - Stage 2: for each canonical basis column e_col solve A·x = e_col and write
//     x into column col of the result.
//   - Stage 3: reject the inverse if ‖A‖₁·‖A⁻¹‖₁ exceeds ConditionTolerance.
//
// Behavior highlights:
//   - Fully deterministic loop orders (col↑, forward i↑, backward i↓).
//   - Input is read-only.
//   - Singularity is judged relative to the scale of A, like gonum's
//     condition check, so both backends refuse the same rank-deficient systems.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Inverse").
//   - ErrSingular for a negligible pivot or an excessive condition number.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - If you only need A⁻¹·B once, Inverse + Mul is simplest; the solver sizes here
//     (n nodes) make the extra O(n³) irrelevant next to clarity.
func Inverse(m Matrix) (Matrix, error) {
	d, err := luFactor(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := d.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i int
		y      = make([]float64, n) // forward substitution workspace
		x      = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		d.solveUnit(col, y, x)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if cond := norm1(src) * norm1(inv); !(cond <= ConditionTolerance) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return inv, nil
}

// norm1 returns the maximum absolute column sum ‖m‖₁.
func norm1(m *Dense) float64 {
	best := 0.0
	var (
		i, j int
		s    float64
	)
	for j = 0; j < m.c; j++ {
		s = ZeroSum
		for i = 0; i < m.r; i++ {
			s += math.Abs(m.data[i*m.c+j])
		}
		best = math.Max(best, s)
	}

	return best
}
