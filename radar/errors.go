// SPDX-License-Identifier: MIT

package radar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension signals nil inputs or incompatible shapes of X, A and L.
	ErrInvalidDimension = errors.New("radar: invalid input dimensions")

	// ErrInvalidHyperparameter signals a negative or non-finite α, β, γ,
	// MaxIters < 1, or an unusable tolerance / reweight factor.
	ErrInvalidHyperparameter = errors.New("radar: invalid hyperparameter")

	// ErrDegenerateRowNorm signals a zero row in W or R, whose reweight entry
	// ½/‖row‖ is undefined. Returned wrapped in *RowNormError.
	ErrDegenerateRowNorm = errors.New("radar: degenerate row norm")

	// ErrSingularMatrix signals that a system matrix could not be inverted.
	// Returned wrapped in *SingularMatrixError.
	ErrSingularMatrix = errors.New("radar: singular system matrix")
)

// Factor names used in RowNormError.
const (
	FactorW = "W"
	FactorR = "R"
)

// Solver steps that invert a system matrix, used in SingularMatrixError.
const (
	StepInitialResidual = "initial residual"
	StepWeights         = "weight update"
	StepResidual        = "residual update"
)

// RowNormError reports which row of which factor collapsed to zero.
type RowNormError struct {
	Factor    string // FactorW or FactorR
	Row       int
	Iteration int
}

func (e *RowNormError) Error() string {
	return fmt.Sprintf("radar: zero norm in row %d of %s at iteration %d", e.Row, e.Factor, e.Iteration)
}

func (e *RowNormError) Unwrap() error { return ErrDegenerateRowNorm }

// SingularMatrixError reports the step whose system matrix could not be
// inverted. Iteration is -1 for the initial residual.
type SingularMatrixError struct {
	Step      string
	Iteration int
	Err       error // backend cause, usually wrapping matrix.ErrSingular
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("radar: cannot invert %s system at iteration %d: %v", e.Step, e.Iteration, e.Err)
}

// Unwrap exposes both ErrSingularMatrix and the backend cause to errors.Is.
func (e *SingularMatrixError) Unwrap() []error { return []error{ErrSingularMatrix, e.Err} }

// radarErrorf keeps the "radar.<Op>: <cause>" shape for operational failures.
func radarErrorf(op string, err error) error {
	return fmt.Errorf("radar.%s: %w", op, err)
}
