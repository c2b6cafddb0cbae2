// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radar/matrix"
)

func TestReductions(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{3, 4}, {0, -1}})

	tr, err := matrix.Trace(a)
	require.NoError(t, err)
	require.Equal(t, 2.0, tr)

	fro, err := matrix.FrobeniusNorm(a)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(26), fro, 1e-15)

	sum, err := matrix.Sum(a)
	require.NoError(t, err)
	require.Equal(t, 6.0, sum)

	rs, err := matrix.RowSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{7, -1}, rs)

	rn, err := matrix.RowNorms(a)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 1}, rn)

	// generic path agrees
	rn2, err := matrix.RowNorms(hide{a})
	require.NoError(t, err)
	require.Equal(t, rn, rn2)
}

func TestTrace_NonSquare(t *testing.T) {
	_, err := matrix.Trace(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestAllClose(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}})
	b := MustDense(t, [][]float64{{1, 2.0000001}})

	ok, err := matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, MustDense(t, [][]float64{{1}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestConstructors(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id, 0)

	d, err := matrix.NewDiag([]float64{2, -1})
	require.NoError(t, err)
	RequireRows(t, [][]float64{{2, 0}, {0, -1}}, d, 0)

	diag, err := matrix.Diagonal(d)
	require.NoError(t, err)
	require.Equal(t, []float64{2, -1}, diag)

	_, err = matrix.NewDiag([]float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDiag(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	ones, err := matrix.NewOnes(2, 1)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{1}, {1}}, ones, 0)
}
