// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radar/matrix"
)

func TestInverse(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, 1e-12)

	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, id, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInverse_SPD(t *testing.T) {
	t.Parallel()

	// I + 0.1·L for the 4-cycle: symmetric positive-definite.
	a := MustDense(t, [][]float64{
		{1.2, -0.1, 0, -0.1},
		{-0.1, 1.2, -0.1, 0},
		{0, -0.1, 1.2, -0.1},
		{-0.1, 0, -0.1, 1.2},
	})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(inv, a)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(4)
	ok, err := matrix.AllClose(prod, id, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		m    matrix.Matrix
		want error
	}{
		"singular":    {MustDense(t, [][]float64{{1, 2}, {2, 4}}), matrix.ErrSingular},
		"zero pivot":  {MustDense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}}), matrix.ErrSingular},
		"all zero":    {MustDense(t, [][]float64{{0, 0}, {0, 0}}), matrix.ErrSingular},
		"non-square":  {MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), matrix.ErrNonSquare},
		"nil operand": {nil, matrix.ErrNilMatrix},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Inverse(tc.m)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestInverse_NeedsPivoting(t *testing.T) {
	t.Parallel()

	// zero leading entry: unpivoted elimination would stop at A[0][0]
	a := MustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {4, -3, 8}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(3)
	ok, err := matrix.AllClose(prod, id, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	inv, err = matrix.Inverse(MustDense(t, [][]float64{{0, 2}, {4, 0}}))
	require.NoError(t, err)
	RequireRows(t, [][]float64{{0, 0.25}, {0.5, 0}}, inv, 1e-15)
}

// Rounding leaves tiny nonzero pivots in a rank-deficient Gram matrix; they
// must still be reported as singular.
func TestInverse_RankDeficientGram(t *testing.T) {
	t.Parallel()

	x := MustDense(t, [][]float64{{0.3, 1.7}, {2.9, 0.11}, {1.3, 0.7}, {0.37, 2.3}})
	xt, err := matrix.Transpose(x)
	require.NoError(t, err)
	gram, err := matrix.Mul(x, xt) // 4×4 of rank 2
	require.NoError(t, err)

	_, err = matrix.Inverse(gram)
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Inverse(hide{gram})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// Unit upper triangular with -1 above the diagonal: every pivot is 1 but the
// inverse grows like 2^n, so only the condition check can reject it.
func TestInverse_IllConditioned(t *testing.T) {
	t.Parallel()

	build := func(n int) *matrix.Dense {
		m, err := matrix.NewIdentity(n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				require.NoError(t, m.Set(i, j, -1))
			}
		}
		return m
	}

	_, err := matrix.Inverse(build(60))
	require.ErrorIs(t, err, matrix.ErrSingular)

	inv, err := matrix.Inverse(build(4))
	require.NoError(t, err)
	RequireRows(t, [][]float64{
		{1, 1, 2, 4},
		{0, 1, 1, 2},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
	}, inv, 0)
}
