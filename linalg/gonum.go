// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/radar/matrix"
)

// gonumBackend runs every operation on gonum's *mat.Dense.
//
// gonum panics on shape violations, so every method validates with the matrix
// validators first and only then converts. Results are copied back into
// *matrix.Dense, which keeps the Backend contract (matrix.Matrix in, matrix.Matrix out).
type gonumBackend struct{}

var _ Backend = gonumBackend{}

// Gonum returns the backend built on gonum.org/v1/gonum/mat.
func Gonum() Backend { return gonumBackend{} }

func (gonumBackend) Name() string { return NameGonum }

// gonumErrorf tags errors raised by this backend.
func gonumErrorf(op string, err error) error {
	return fmt.Errorf("gonum.%s: %w", op, err)
}

// toMat copies any matrix.Matrix into a fresh *mat.Dense.
func toMat(m matrix.Matrix) (*mat.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		r, c := d.Shape()
		return mat.NewDense(r, c, d.RowMajor()), nil
	}
	r, c := m.Rows(), m.Cols()
	data := make([]float64, r*c)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			data[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, data), nil
}

// fromMat copies a gonum matrix back into a *matrix.Dense, honoring the stride.
func fromMat(m mat.Matrix) (matrix.Matrix, error) {
	r, c := m.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, m.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// binary validates a same-shape pair and converts both operands.
func binary(a, b matrix.Matrix) (*mat.Dense, *mat.Dense, error) {
	if err := matrix.ValidateBinarySameShape(a, b); err != nil {
		return nil, nil, err
	}
	ga, err := toMat(a)
	if err != nil {
		return nil, nil, err
	}
	gb, err := toMat(b)
	if err != nil {
		return nil, nil, err
	}

	return ga, gb, nil
}

// unary validates non-nil and converts.
func unary(m matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}

	return toMat(m)
}

func (gonumBackend) Zeros(r, c int) (matrix.Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, gonumErrorf("Zeros", matrix.ErrInvalidDimensions)
	}

	return fromMat(mat.NewDense(r, c, nil))
}

func (gonumBackend) Identity(n int) (matrix.Matrix, error) {
	if n <= 0 {
		return nil, gonumErrorf("Identity", matrix.ErrInvalidDimensions)
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	return fromMat(mat.NewDiagDense(n, ones))
}

// Diag shares the finite-value policy of matrix.NewDiag (±Inf/NaN → ErrNaNInf).
func (gonumBackend) Diag(v []float64) (matrix.Matrix, error) {
	if len(v) == 0 {
		return nil, gonumErrorf("Diag", matrix.ErrInvalidDimensions)
	}
	buf := make([]float64, len(v))
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, gonumErrorf("Diag", matrix.ErrNaNInf)
		}
		buf[i] = x
	}

	return fromMat(mat.NewDiagDense(len(buf), buf))
}

func (gonumBackend) Add(a, b matrix.Matrix) (matrix.Matrix, error) {
	ga, gb, err := binary(a, b)
	if err != nil {
		return nil, gonumErrorf("Add", err)
	}
	var out mat.Dense
	out.Add(ga, gb)

	return fromMat(&out)
}

func (gonumBackend) Sub(a, b matrix.Matrix) (matrix.Matrix, error) {
	ga, gb, err := binary(a, b)
	if err != nil {
		return nil, gonumErrorf("Sub", err)
	}
	var out mat.Dense
	out.Sub(ga, gb)

	return fromMat(&out)
}

func (gonumBackend) Scale(m matrix.Matrix, alpha float64) (matrix.Matrix, error) {
	gm, err := unary(m)
	if err != nil {
		return nil, gonumErrorf("Scale", err)
	}
	var out mat.Dense
	out.Scale(alpha, gm)

	return fromMat(&out)
}

func (gonumBackend) Mul(a, b matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, gonumErrorf("Mul", err)
	}
	ga, err := toMat(a)
	if err != nil {
		return nil, gonumErrorf("Mul", err)
	}
	gb, err := toMat(b)
	if err != nil {
		return nil, gonumErrorf("Mul", err)
	}
	var out mat.Dense
	out.Mul(ga, gb)

	return fromMat(&out)
}

func (gonumBackend) Transpose(m matrix.Matrix) (matrix.Matrix, error) {
	gm, err := unary(m)
	if err != nil {
		return nil, gonumErrorf("Transpose", err)
	}

	return fromMat(mat.DenseCopyOf(gm.T()))
}

func (gonumBackend) Hadamard(a, b matrix.Matrix) (matrix.Matrix, error) {
	ga, gb, err := binary(a, b)
	if err != nil {
		return nil, gonumErrorf("Hadamard", err)
	}
	var out mat.Dense
	out.MulElem(ga, gb)

	return fromMat(&out)
}

// Inverse maps every gonum failure to matrix.ErrSingular. gonum reports exact
// singularity as Condition(+Inf) and near-singularity as a finite Condition above
// mat.ConditionTolerance; in both cases the computed inverse is not usable.
func (gonumBackend) Inverse(m matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, gonumErrorf("Inverse", err)
	}
	gm, err := toMat(m)
	if err != nil {
		return nil, gonumErrorf("Inverse", err)
	}
	var out mat.Dense
	if err = out.Inverse(gm); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, gonumErrorf("Inverse", fmt.Errorf("%w (condition number %g)", matrix.ErrSingular, float64(cond)))
		}
		return nil, gonumErrorf("Inverse", fmt.Errorf("%w: %v", matrix.ErrSingular, err))
	}

	return fromMat(&out)
}

func (gonumBackend) Trace(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, gonumErrorf("Trace", err)
	}
	gm, err := toMat(m)
	if err != nil {
		return 0, gonumErrorf("Trace", err)
	}

	return mat.Trace(gm), nil
}

// FrobeniusNorm uses mat.Norm with L=2, which gonum defines as the Frobenius norm for matrices.
func (gonumBackend) FrobeniusNorm(m matrix.Matrix) (float64, error) {
	gm, err := unary(m)
	if err != nil {
		return 0, gonumErrorf("FrobeniusNorm", err)
	}

	return mat.Norm(gm, 2), nil
}

func (gonumBackend) Sum(m matrix.Matrix) (float64, error) {
	gm, err := unary(m)
	if err != nil {
		return 0, gonumErrorf("Sum", err)
	}

	return mat.Sum(gm), nil
}
