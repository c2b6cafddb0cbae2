// SPDX-License-Identifier: MIT

package radar_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radar/linalg"
	"github.com/katalvlaran/radar/matrix"
	"github.com/katalvlaran/radar/radar"
)

func TestSolve_ReferenceScenario(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			res, err := radar.Solve(context.Background(),
				mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), scenarioOptions(b))
			require.NoError(t, err)

			require.True(t, res.Converged)
			require.Equal(t, len(refObjective), res.Iterations)
			require.Len(t, res.Objective, res.Iterations)
			require.InDeltaSlice(t, refObjective, res.Objective, refTol)
			requireRows(t, refR, res.R, refTol)
		})
	}
}

func TestSolve_BackendsAgree(t *testing.T) {
	X := mustDense(t, [][]float64{
		{1, 2, 0.5},
		{2, 1, 1},
		{0.5, 0.3, 2},
		{3, 1, 1},
		{1, 1, 4},
	})
	L := mustLaplacian(t, [][]float64{
		{0, 1, 0, 0, 1},
		{1, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 1},
		{1, 0, 0, 1, 0},
	})
	opts := radar.DefaultOptions()

	opts.Backend = linalg.Native()
	a, err := radar.Solve(context.Background(), X, L, opts)
	require.NoError(t, err)
	opts.Backend = linalg.Gonum()
	b, err := radar.Solve(context.Background(), X, L, opts)
	require.NoError(t, err)

	require.Equal(t, a.Iterations, b.Iterations)
	require.InDeltaSlice(t, a.Objective, b.Objective, 1e-6)
	ok, err := matrix.AllClose(a.R, b.R, 1e-6, 1e-6)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSolve_Shapes(t *testing.T) {
	X := mustDense(t, [][]float64{
		{1, 2, 0.5},
		{2, 1, 1},
		{0.5, 0.3, 2},
		{3, 1, 1},
		{1, 1, 4},
	})
	L := mustLaplacian(t, [][]float64{
		{0, 1, 0, 0, 0},
		{1, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 1},
		{0, 0, 0, 1, 0},
	})
	res, err := radar.Solve(context.Background(), X, L, radar.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, 5, res.R.Rows())
	require.Equal(t, 3, res.R.Cols())
	require.Equal(t, 5, res.W.Rows())
	require.Equal(t, 5, res.W.Cols())
	require.GreaterOrEqual(t, res.Iterations, 1)
	require.LessOrEqual(t, res.Iterations, radar.DefaultMaxIters)
}

func TestSolve_ObjectiveNonIncreasing(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			res, err := radar.Solve(context.Background(),
				mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), scenarioOptions(b))
			require.NoError(t, err)
			for k := 1; k < len(res.Objective); k++ {
				require.LessOrEqual(t, res.Objective[k], res.Objective[k-1]+1e-6, "iteration %d", k)
			}
		})
	}
}

func TestSolve_EarlyStop(t *testing.T) {
	X, L := mustDense(t, scenarioX()), mustLaplacian(t, scenarioA())

	full, err := radar.Solve(context.Background(), X, L, radar.DefaultOptions())
	require.NoError(t, err)
	require.True(t, full.Converged)
	require.Equal(t, 12, full.Iterations)

	// A budget of exactly the converging iteration gives the same R.
	opts := radar.DefaultOptions()
	opts.MaxIters = 12
	exact, err := radar.Solve(context.Background(), X, L, opts)
	require.NoError(t, err)
	require.True(t, exact.Converged)
	require.Equal(t, matrixRows(t, full.R), matrixRows(t, exact.R))

	// One iteration short: exhausted, not converged, still no error.
	opts.MaxIters = 11
	short, err := radar.Solve(context.Background(), X, L, opts)
	require.NoError(t, err)
	require.False(t, short.Converged)
	require.Equal(t, 11, short.Iterations)
	require.Equal(t, full.Objective[:11], short.Objective)
}

func TestSolve_SingleIteration(t *testing.T) {
	opts := radar.DefaultOptions()
	opts.MaxIters = 1
	res, err := radar.Solve(context.Background(), mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), opts)
	require.NoError(t, err)

	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
	require.InDelta(t, refObjective[0], res.Objective[0], refTol)
	requireRows(t, refROneIter, res.R, refTol)
}

func TestSolve_WarmupBeforeStopRule(t *testing.T) {
	opts := radar.DefaultOptions()
	opts.Tolerance = 10 // every change is below it
	res, err := radar.Solve(context.Background(), mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), opts)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 3, res.Iterations)

	opts.Tolerance = 0.1 // |obj[2] − obj[1]| ≈ 0.089
	res, err = radar.Solve(context.Background(), mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), opts)
	require.NoError(t, err)
	require.Equal(t, 3, res.Iterations)
}

func TestSolve_InputsUntouched(t *testing.T) {
	X, L := mustDense(t, scenarioX()), mustLaplacian(t, scenarioA())
	wantL := L.ToRows()

	_, err := radar.Solve(context.Background(), X, L, radar.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, scenarioX(), X.ToRows())
	require.Equal(t, wantL, L.ToRows())
}

func TestSolve_Deterministic(t *testing.T) {
	X, L := mustDense(t, scenarioX()), mustLaplacian(t, scenarioA())
	a, err := radar.Solve(context.Background(), X, L, radar.DefaultOptions())
	require.NoError(t, err)
	b, err := radar.Solve(context.Background(), X, L, radar.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, a.Objective, b.Objective)
	require.Equal(t, matrixRows(t, a.R), matrixRows(t, b.R))
}

func TestSolve_DegenerateRowNorm(t *testing.T) {
	// Node 1 has no attributes, so its row of W is exactly zero.
	X := mustDense(t, [][]float64{{4, 1}, {0, 0}, {3, 1}, {5, 1}})
	rec := &recorder{}
	opts := scenarioOptions(linalg.Native())
	opts.Observer = rec

	res, err := radar.Solve(context.Background(), X, mustLaplacian(t, scenarioA()), opts)
	require.Nil(t, res)
	require.ErrorIs(t, err, radar.ErrDegenerateRowNorm)

	var rn *radar.RowNormError
	require.True(t, errors.As(err, &rn))
	require.Equal(t, radar.FactorW, rn.Factor)
	require.Equal(t, 1, rn.Row)
	require.Equal(t, 0, rn.Iteration)

	require.Len(t, rec.completes, 1)
	require.ErrorIs(t, rec.errs[0], radar.ErrDegenerateRowNorm)
	require.Empty(t, rec.objectives)
}

func TestSolve_SingularWeightSystem(t *testing.T) {
	// α = 0 and identical attribute rows make X·Xᵗ singular.
	X := mustDense(t, [][]float64{{1, 1}, {1, 1}})
	L := mustLaplacian(t, [][]float64{{0, 1}, {1, 0}})
	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			opts := scenarioOptions(b)
			opts.Alpha = 0
			_, err := radar.Solve(context.Background(), X, L, opts)
			require.ErrorIs(t, err, radar.ErrSingularMatrix)
			require.ErrorIs(t, err, matrix.ErrSingular)

			var se *radar.SingularMatrixError
			require.True(t, errors.As(err, &se))
			require.Equal(t, radar.StepWeights, se.Step)
			require.Equal(t, 0, se.Iteration)
		})
	}
}

// With α = 0 and fewer attributes than nodes, X·Xᵗ has rank m < n. Rounding
// leaves nonzero pivots, and both backends must still refuse the system.
func TestSolve_RankDeficientWeightSystem(t *testing.T) {
	X := mustDense(t, [][]float64{{0.3, 1.7}, {2.9, 0.11}, {1.3, 0.7}, {0.37, 2.3}})
	L := mustLaplacian(t, scenarioA())
	for _, b := range backends() {
		t.Run(b.Name(), func(t *testing.T) {
			rec := &recorder{}
			opts := scenarioOptions(b)
			opts.Alpha = 0
			opts.Observer = rec
			res, err := radar.Solve(context.Background(), X, L, opts)
			require.Nil(t, res)
			require.ErrorIs(t, err, radar.ErrSingularMatrix)
			require.ErrorIs(t, err, matrix.ErrSingular)

			var se *radar.SingularMatrixError
			require.True(t, errors.As(err, &se))
			require.Equal(t, radar.StepWeights, se.Step)
			require.Equal(t, 0, se.Iteration)
			require.Empty(t, rec.objectives)
		})
	}
}

func TestSolve_SingularInitialResidual(t *testing.T) {
	// Negative weights (outside the input contract) make I + γ·L singular for γ = ½.
	L := mustLaplacian(t, [][]float64{{0, -1}, {-1, 0}})
	opts := radar.DefaultOptions()
	opts.Beta, opts.Gamma = 0, 0.5
	_, err := radar.Solve(context.Background(), mustDense(t, [][]float64{{1, 2}, {3, 4}}), L, opts)

	var se *radar.SingularMatrixError
	require.True(t, errors.As(err, &se))
	require.Equal(t, radar.StepInitialResidual, se.Step)
	require.Equal(t, -1, se.Iteration)
}

func TestSolve_InvalidDimension(t *testing.T) {
	X := mustDense(t, scenarioX())
	cases := []struct {
		name string
		X, L matrix.Matrix
	}{
		{"nil X", nil, mustLaplacian(t, scenarioA())},
		{"nil L", X, nil},
		{"non-square L", X, mustDense(t, [][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}})},
		{"row mismatch", X, mustLaplacian(t, [][]float64{{0, 1}, {1, 0}})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			opts := radar.DefaultOptions()
			opts.Observer = rec
			_, err := radar.Solve(context.Background(), tc.X, tc.L, opts)
			require.ErrorIs(t, err, radar.ErrInvalidDimension)
			require.Empty(t, rec.starts)
		})
	}
}

func TestSolve_InvalidHyperparameter(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*radar.Options)
	}{
		{"negative alpha", func(o *radar.Options) { o.Alpha = -0.1 }},
		{"nan beta", func(o *radar.Options) { o.Beta = math.NaN() }},
		{"inf gamma", func(o *radar.Options) { o.Gamma = math.Inf(1) }},
		{"zero iterations", func(o *radar.Options) { o.MaxIters = 0 }},
		{"negative tolerance", func(o *radar.Options) { o.Tolerance = -1e-3 }},
		{"negative reweight", func(o *radar.Options) { o.ReweightFactor = -0.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := radar.DefaultOptions()
			tc.mutate(&opts)
			require.ErrorIs(t, opts.Validate(), radar.ErrInvalidHyperparameter)

			_, err := radar.Solve(context.Background(), mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), opts)
			require.ErrorIs(t, err, radar.ErrInvalidHyperparameter)
		})
	}
}

func TestSolve_ZeroValueDefaults(t *testing.T) {
	// Zero tolerance, reweight factor, backend, observer and logger fall back to defaults.
	opts := radar.Options{Alpha: 0.01, Beta: 0.01, Gamma: 0.1, MaxIters: 20}
	require.NoError(t, opts.Validate())

	res, err := radar.Solve(context.Background(), mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), opts)
	require.NoError(t, err)
	require.Equal(t, len(refObjective), res.Iterations)
	requireRows(t, refR, res.R, refTol)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := radar.Solve(ctx, mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), radar.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolve_CancelledBetweenIterations(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{onIteration: func(iter int) {
		if iter == 1 {
			cancel()
		}
	}}
	opts := radar.DefaultOptions()
	opts.Observer = rec

	res, err := radar.Solve(ctx, mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), opts)
	require.Nil(t, res)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, rec.objectives, 2)
	require.Len(t, rec.completes, 1)
	require.ErrorIs(t, rec.errs[0], context.Canceled)
}

func TestSolve_ObserverEvents(t *testing.T) {
	rec := &recorder{}
	opts := radar.DefaultOptions()
	opts.Observer = rec

	res, err := radar.Solve(context.Background(), mustDense(t, scenarioX()), mustLaplacian(t, scenarioA()), opts)
	require.NoError(t, err)

	require.Equal(t, []radar.SolveInfo{{Backend: linalg.NameNative, Nodes: 4, Attributes: 2}}, rec.starts)
	require.Equal(t, res.Objective, rec.objectives)
	require.Len(t, rec.completes, 1)
	require.NoError(t, rec.errs[0])

	stats := rec.completes[0]
	require.Equal(t, linalg.NameNative, stats.Backend)
	require.Equal(t, res.Iterations, stats.Iterations)
	require.True(t, stats.Converged)
	require.Equal(t, res.Objective[len(res.Objective)-1], stats.Objective)
	require.Positive(t, int64(stats.Duration))
}

func matrixRows(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}
