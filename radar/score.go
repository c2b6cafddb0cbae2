// SPDX-License-Identifier: MIT

package radar

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/radar/matrix"
)

const opScore = "Score"

// NodeScore pairs a node index with its anomaly score.
type NodeScore struct {
	Node  int     `json:"node"`
	Score float64 `json:"score"`
}

// Scores returns the anomaly score of every node: score[i] = Σ_j R[i,j]².
// Errors: ErrInvalidDimension for a nil R.
func Scores(R matrix.Matrix) ([]float64, error) {
	if R == nil {
		return nil, fmt.Errorf("%w: nil residual matrix", ErrInvalidDimension)
	}

	out := make([]float64, R.Rows())
	var (
		i, j int
		v, s float64
		err  error
	)
	for i = 0; i < R.Rows(); i++ {
		s = 0
		for j = 0; j < R.Cols(); j++ {
			if v, err = R.At(i, j); err != nil {
				return nil, radarErrorf(opScore, err)
			}
			s += v * v
		}
		out[i] = s
	}

	return out, nil
}

// Rank sorts nodes by score, highest first, and keeps the first topM.
//
// The sort is stable: equal scores keep ascending node order. topM is clamped
// into [0, len(scores)]. The input slice is not modified.
func Rank(scores []float64, topM int) []NodeScore {
	ranked := make([]NodeScore, len(scores))
	for i, s := range scores {
		ranked[i] = NodeScore{Node: i, Score: s}
	}
	slices.SortStableFunc(ranked, func(a, b NodeScore) int {
		return cmp.Compare(b.Score, a.Score)
	})

	topM = min(max(topM, 0), len(ranked))

	return ranked[:topM:topM]
}

// Score ranks the rows of a residual matrix and returns the topM most anomalous nodes.
func Score(R matrix.Matrix, topM int) ([]NodeScore, error) {
	scores, err := Scores(R)
	if err != nil {
		return nil, err
	}

	return Rank(scores, topM), nil
}
