// SPDX-License-Identifier: MIT

package radar_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radar/laplacian"
	"github.com/katalvlaran/radar/linalg"
	"github.com/katalvlaran/radar/matrix"
	"github.com/katalvlaran/radar/radar"
)

// Reference run of the 4-node scenario (α=β=0.01, γ=0.1, 20 iterations),
// computed independently in double precision.
var (
	refObjective = []float64{
		0.5645408904949816, 0.3833018780152536, 0.2938391625780623,
		0.2457703055912221, 0.21957382305359824, 0.2050376295720481,
		0.19678775940565602, 0.1919747206047691, 0.18907242938184363,
		0.1872531794518338, 0.18606108639834243, 0.18524048318748748,
	}
	refR = [][]float64{
		{4.149441819309463, 0.9694045546240826},
		{4.128306147121339, 0.9443591787705706},
		{4.046208975691485, 1.0136424355791236},
		{4.128306147121314, 0.9443591787705619},
	}
	refScores = []float64{
		18.157612602360143, 17.934725902888065, 17.399278062173117, 17.934725902887834,
	}
	// R after exactly one iteration.
	refROneIter = [][]float64{
		{4.1302385463423565, 0.9815150993325276},
		{4.544029226931532, 0.9780888257797281},
		{3.4467372531888953, 0.9835832395820789},
		{4.544029226931501, 0.9780888257797238},
	}
)

const refTol = 1e-6

func scenarioX() [][]float64 {
	return [][]float64{{4, 1}, {5, 1}, {3, 1}, {5, 1}}
}

func scenarioA() [][]float64 {
	return [][]float64{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	}
}

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustLaplacian(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	_, L, err := laplacian.Build(mustDense(t, rows))
	require.NoError(t, err)

	return L
}

func requireRows(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, tol, "element [%d,%d]", i, j)
		}
	}
}

func scenarioOptions(b linalg.Backend) radar.Options {
	opts := radar.DefaultOptions()
	opts.Backend = b

	return opts
}

func backends() []linalg.Backend {
	return []linalg.Backend{linalg.Native(), linalg.Gonum()}
}

// recorder is an Observer that keeps every event.
type recorder struct {
	mu         sync.Mutex
	starts     []radar.SolveInfo
	objectives []float64
	completes  []radar.SolveStats
	errs       []error

	onIteration func(iter int)
}

func (r *recorder) OnSolveStart(_ context.Context, info radar.SolveInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts = append(r.starts, info)
}

func (r *recorder) OnIteration(_ context.Context, iter int, objective float64) {
	r.mu.Lock()
	r.objectives = append(r.objectives, objective)
	r.mu.Unlock()
	if r.onIteration != nil {
		r.onIteration(iter)
	}
}

func (r *recorder) OnSolveComplete(_ context.Context, stats radar.SolveStats, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completes = append(r.completes, stats)
	r.errs = append(r.errs, err)
}
