// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/radar/matrix"
)

// Backend names accepted by ByName.
const (
	NameNative = "native"
	NameGonum  = "gonum"
)

// Backend is the linear-algebra provider used by the solver.
// Implementations must not mutate their operands and must be safe for
// concurrent use by independent runs.
type Backend interface {
	// Name identifies the backend in logs and metrics.
	Name() string

	// Zeros returns an r×c zero matrix.
	Zeros(r, c int) (matrix.Matrix, error)
	// Identity returns I_n.
	Identity(n int) (matrix.Matrix, error)
	// Diag returns the diagonal matrix built from v.
	Diag(v []float64) (matrix.Matrix, error)

	Add(a, b matrix.Matrix) (matrix.Matrix, error)
	Sub(a, b matrix.Matrix) (matrix.Matrix, error)
	Scale(m matrix.Matrix, alpha float64) (matrix.Matrix, error)
	Mul(a, b matrix.Matrix) (matrix.Matrix, error)
	Transpose(m matrix.Matrix) (matrix.Matrix, error)
	Hadamard(a, b matrix.Matrix) (matrix.Matrix, error)
	// Inverse returns m⁻¹ or an error matching matrix.ErrSingular.
	Inverse(m matrix.Matrix) (matrix.Matrix, error)

	Trace(m matrix.Matrix) (float64, error)
	FrobeniusNorm(m matrix.Matrix) (float64, error)
	Sum(m matrix.Matrix) (float64, error)
}

// ErrUnknownBackend is returned by ByName for an unsupported name.
var ErrUnknownBackend = errors.New("linalg: unknown backend")

// ByName resolves a backend from its (case-insensitive) name; "" means native.
func ByName(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameNative:
		return Native(), nil
	case NameGonum:
		return Gonum(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
