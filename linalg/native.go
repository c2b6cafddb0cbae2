// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/radar/matrix"

// native delegates every operation to package matrix.
type native struct{}

var _ Backend = native{}

// Native returns the pure-Go backend built on package matrix.
func Native() Backend { return native{} }

func (native) Name() string { return NameNative }

func (native) Zeros(r, c int) (matrix.Matrix, error) { return matrix.NewZeros(r, c) }

func (native) Identity(n int) (matrix.Matrix, error) { return matrix.NewIdentity(n) }

func (native) Diag(v []float64) (matrix.Matrix, error) { return matrix.NewDiag(v) }

func (native) Add(a, b matrix.Matrix) (matrix.Matrix, error) { return matrix.Add(a, b) }

func (native) Sub(a, b matrix.Matrix) (matrix.Matrix, error) { return matrix.Sub(a, b) }

func (native) Scale(m matrix.Matrix, alpha float64) (matrix.Matrix, error) {
	return matrix.Scale(m, alpha)
}

func (native) Mul(a, b matrix.Matrix) (matrix.Matrix, error) { return matrix.Mul(a, b) }

func (native) Transpose(m matrix.Matrix) (matrix.Matrix, error) { return matrix.Transpose(m) }

func (native) Hadamard(a, b matrix.Matrix) (matrix.Matrix, error) { return matrix.Hadamard(a, b) }

func (native) Inverse(m matrix.Matrix) (matrix.Matrix, error) { return matrix.Inverse(m) }

func (native) Trace(m matrix.Matrix) (float64, error) { return matrix.Trace(m) }

func (native) FrobeniusNorm(m matrix.Matrix) (float64, error) { return matrix.FrobeniusNorm(m) }

func (native) Sum(m matrix.Matrix) (float64, error) { return matrix.Sum(m) }
