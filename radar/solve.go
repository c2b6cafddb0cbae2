// SPDX-License-Identifier: MIT

package radar

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/radar/linalg"
	"github.com/katalvlaran/radar/matrix"
)

const opSolve = "Solve"

// Result is the outcome of a solver run.
//
//   - R         : residual matrix (n×m) of the last completed iteration.
//   - W         : self-representation matrix (n×n) of the last completed iteration.
//   - Objective : objective value of every completed iteration, in order.
//   - Iterations: number of completed iterations (len(Objective)).
//   - Converged : true if the stop rule fired before MaxIters ran out.
type Result struct {
	R, W       matrix.Matrix
	Objective  []float64
	Iterations int
	Converged  bool
}

// solver holds the per-run invariants shared by every iteration.
type solver struct {
	b      linalg.Backend
	opts   Options
	logger *log.Logger

	x, lap matrix.Matrix // X (n×m) and L (n×n), read-only
	n      int

	ident matrix.Matrix // I_n
	xxt   matrix.Matrix // X·Xᵗ
	onesM matrix.Matrix // m×1 column of ones
	onesN matrix.Matrix // n×1 column of ones
}

// Solve runs the reweighted residual solver on attributes X (n×m) and graph
// Laplacian L (n×n).
//
// Implementation:
//   - Stage 1: validate shapes and hyperparameters before any matrix work.
//   - Stage 2: Dr = Dw = I; R = (I + β·Dr + γ·L)⁻¹·X.
//   - Stage 3: per iteration, update W, reweight Dw, update R with the previous
//     Dr, reweight Dr, record the objective; stop once at least three
//     iterations completed and |obj[k] − obj[k−1]| < Tolerance.
//
// Behavior highlights:
//   - Loop exhaustion is not an error: Result.Converged reports whether the stop rule fired.
//   - ctx is checked before every iteration; cancellation returns ctx.Err() wrapped.
//   - On any error no partial result is returned.
//
// Errors:
//   - ErrInvalidDimension, ErrInvalidHyperparameter (validation).
//   - *RowNormError (ErrDegenerateRowNorm) when a row of W or R vanishes.
//   - *SingularMatrixError (ErrSingularMatrix) when a system matrix cannot be inverted.
//
// Complexity:
//   - Time O(k·(n³ + n²·m)) for k iterations, Space O(n² + n·m).
func Solve(ctx context.Context, X, L matrix.Matrix, opts Options) (res *Result, err error) {
	if err = validateSolveInputs(X, L); err != nil {
		return nil, err
	}
	if err = opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	s := &solver{b: opts.Backend, opts: opts, x: X, lap: L, n: X.Rows()}
	s.logger = opts.Logger.With("backend", s.b.Name())

	start := time.Now()
	opts.Observer.OnSolveStart(ctx, SolveInfo{Backend: s.b.Name(), Nodes: s.n, Attributes: X.Cols()})
	defer func() {
		stats := SolveStats{Backend: s.b.Name(), Duration: time.Since(start)}
		if res != nil {
			stats.Iterations = res.Iterations
			stats.Converged = res.Converged
			if k := len(res.Objective); k > 0 {
				stats.Objective = res.Objective[k-1]
			}
		}
		opts.Observer.OnSolveComplete(ctx, stats, err)
	}()

	if err = s.prepare(); err != nil {
		return nil, radarErrorf(opSolve, err)
	}
	res, err = s.run(ctx)
	if err != nil {
		s.logger.Debug("solve failed", "err", err)
		return nil, err
	}
	s.logger.Info("solve finished",
		"nodes", s.n,
		"iterations", res.Iterations,
		"converged", res.Converged,
		"objective", res.Objective[len(res.Objective)-1],
		"elapsed", time.Since(start).Round(time.Microsecond))

	return res, nil
}

// validateSolveInputs checks nil inputs, square L and matching node counts.
func validateSolveInputs(X, L matrix.Matrix) error {
	if X == nil || L == nil {
		return fmt.Errorf("%w: nil attribute or Laplacian matrix", ErrInvalidDimension)
	}
	if L.Rows() != L.Cols() {
		return fmt.Errorf("%w: Laplacian is %dx%d, want square", ErrInvalidDimension, L.Rows(), L.Cols())
	}
	if X.Rows() != L.Rows() {
		return fmt.Errorf("%w: %d attribute rows for %d graph nodes", ErrInvalidDimension, X.Rows(), L.Rows())
	}

	return nil
}

// prepare builds the constants reused across iterations.
func (s *solver) prepare() (err error) {
	if s.ident, err = s.b.Identity(s.n); err != nil {
		return err
	}
	xt, err := s.b.Transpose(s.x)
	if err != nil {
		return err
	}
	if s.xxt, err = s.b.Mul(s.x, xt); err != nil {
		return err
	}
	if s.onesN, err = ones(s.n); err != nil {
		return err
	}
	s.onesM, err = ones(s.x.Cols())

	return err
}

// run executes Stage 2 and Stage 3 of Solve.
func (s *solver) run(ctx context.Context) (*Result, error) {
	var (
		dr, dw         matrix.Matrix
		w, r, wtx, rhs matrix.Matrix
		wNorms, rNorms []float64
		value          float64
		obj            = make([]float64, 0, s.opts.MaxIters)
		converged      bool
		err            error
	)
	if dr, err = s.b.Identity(s.n); err != nil {
		return nil, radarErrorf(opSolve, err)
	}
	dw = dr

	if r, err = s.residual(dr, s.x, -1); err != nil {
		return nil, err
	}

	for iter := 0; iter < s.opts.MaxIters; iter++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("radar: solve cancelled before iteration %d: %w", iter, err)
		}

		// W update uses the previous Dw.
		if w, err = s.weights(dw, r, iter); err != nil {
			return nil, err
		}
		if wNorms, err = s.rowNorms(w); err != nil {
			return nil, radarErrorf(opSolve, err)
		}
		if dw, err = s.reweight(wNorms, FactorW, iter); err != nil {
			return nil, err
		}

		// R update uses the previous Dr.
		if wtx, err = s.wtx(w); err != nil {
			return nil, radarErrorf(opSolve, err)
		}
		if rhs, err = s.b.Sub(s.x, wtx); err != nil {
			return nil, radarErrorf(opSolve, err)
		}
		if r, err = s.residual(dr, rhs, iter); err != nil {
			return nil, err
		}
		if rNorms, err = s.rowNorms(r); err != nil {
			return nil, radarErrorf(opSolve, err)
		}
		if dr, err = s.reweight(rNorms, FactorR, iter); err != nil {
			return nil, err
		}

		if value, err = s.objective(wtx, r, wNorms, rNorms); err != nil {
			return nil, radarErrorf(opSolve, err)
		}
		obj = append(obj, value)
		s.opts.Observer.OnIteration(ctx, iter, value)
		s.logger.Debug("iteration", "iter", iter, "objective", value)

		if iter+1 >= convergenceWarmup && math.Abs(obj[iter]-obj[iter-1]) < s.opts.Tolerance {
			converged = true
			break
		}
	}

	return &Result{R: r, W: w, Objective: obj, Iterations: len(obj), Converged: converged}, nil
}

// residual returns (I + β·Dr + γ·L)⁻¹ · rhs.
func (s *solver) residual(dr, rhs matrix.Matrix, iter int) (matrix.Matrix, error) {
	step := StepResidual
	if iter < 0 {
		step = StepInitialResidual
	}
	bdr, err := s.b.Scale(dr, s.opts.Beta)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}
	gl, err := s.b.Scale(s.lap, s.opts.Gamma)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}
	sys, err := s.b.Add(s.ident, bdr)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}
	if sys, err = s.b.Add(sys, gl); err != nil {
		return nil, radarErrorf(opSolve, err)
	}

	return s.solveSystem(sys, rhs, step, iter)
}

// weights returns (X·Xᵗ + α·Dw)⁻¹ · (X·Xᵗ − X·Rᵗ).
func (s *solver) weights(dw, r matrix.Matrix, iter int) (matrix.Matrix, error) {
	adw, err := s.b.Scale(dw, s.opts.Alpha)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}
	sys, err := s.b.Add(s.xxt, adw)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}
	rt, err := s.b.Transpose(r)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}
	xrt, err := s.b.Mul(s.x, rt)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}
	rhs, err := s.b.Sub(s.xxt, xrt)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}

	return s.solveSystem(sys, rhs, StepWeights, iter)
}

// solveSystem returns sys⁻¹·rhs, mapping backend singularity to *SingularMatrixError.
func (s *solver) solveSystem(sys, rhs matrix.Matrix, step string, iter int) (matrix.Matrix, error) {
	inv, err := s.b.Inverse(sys)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, &SingularMatrixError{Step: step, Iteration: iter, Err: err}
		}
		return nil, radarErrorf(opSolve, err)
	}
	out, err := s.b.Mul(inv, rhs)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}

	return out, nil
}

// wtx returns Wᵗ·X.
func (s *solver) wtx(w matrix.Matrix) (matrix.Matrix, error) {
	wt, err := s.b.Transpose(w)
	if err != nil {
		return nil, err
	}

	return s.b.Mul(wt, s.x)
}

// rowNorms returns ‖M_i‖₂ for every row as sqrt((M ⊙ M)·1).
func (s *solver) rowNorms(m matrix.Matrix) ([]float64, error) {
	sq, err := s.b.Hadamard(m, m)
	if err != nil {
		return nil, err
	}
	onesCol := s.onesM
	if m.Cols() == s.n {
		onesCol = s.onesN
	}
	sums, err := s.b.Mul(sq, onesCol)
	if err != nil {
		return nil, err
	}

	out := make([]float64, sums.Rows())
	var v float64
	for i := range out {
		if v, err = sums.At(i, 0); err != nil {
			return nil, err
		}
		out[i] = math.Sqrt(v)
	}

	return out, nil
}

// reweight returns diag(f / norms[i]); a zero (or NaN) norm is degenerate.
func (s *solver) reweight(norms []float64, factor string, iter int) (matrix.Matrix, error) {
	d := make([]float64, len(norms))
	for i, v := range norms {
		if !(v > 0) {
			return nil, &RowNormError{Factor: factor, Row: i, Iteration: iter}
		}
		d[i] = s.opts.ReweightFactor / v
	}
	out, err := s.b.Diag(d)
	if err != nil {
		return nil, radarErrorf(opSolve, err)
	}

	return out, nil
}

// objective evaluates ‖X − WᵗX − R‖²_F + α·Σw + β·Σr + γ·tr(RᵗLR).
func (s *solver) objective(wtx, r matrix.Matrix, wNorms, rNorms []float64) (float64, error) {
	e, err := s.b.Sub(s.x, wtx)
	if err != nil {
		return 0, err
	}
	if e, err = s.b.Sub(e, r); err != nil {
		return 0, err
	}
	fro, err := s.b.FrobeniusNorm(e)
	if err != nil {
		return 0, err
	}

	rt, err := s.b.Transpose(r)
	if err != nil {
		return 0, err
	}
	rtl, err := s.b.Mul(rt, s.lap)
	if err != nil {
		return 0, err
	}
	rtlr, err := s.b.Mul(rtl, r)
	if err != nil {
		return 0, err
	}
	tr, err := s.b.Trace(rtlr)
	if err != nil {
		return 0, err
	}

	return fro*fro + s.opts.Alpha*sum(wNorms) + s.opts.Beta*sum(rNorms) + s.opts.Gamma*tr, nil
}

func sum(v []float64) float64 {
	total := 0.0
	for _, x := range v {
		total += x
	}

	return total
}

// ones returns a k×1 column of ones.
func ones(k int) (matrix.Matrix, error) {
	col, err := matrix.NewOnes(k, 1)
	if err != nil {
		return nil, err
	}

	return col, nil
}
