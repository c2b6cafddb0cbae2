// SPDX-License-Identifier: MIT

package radar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/radar/laplacian"
	"github.com/katalvlaran/radar/matrix"
)

const opDetect = "Detect"

// symmetryEps is the tolerance used when checking A for a warning.
const symmetryEps = 1e-9

// Report is the outcome of Detect.
type Report struct {
	Ranking []NodeScore // top-m nodes, highest score first
	Scores  []float64   // score of every node, by node index
	Result  *Result     // solver output behind the scores
}

// Detect scores every node of the attributed graph (X, A) and returns the
// topM most anomalous ones.
//
// Implementation:
//   - Stage 1: validate shapes (X n×m, A n×n) and hyperparameters.
//   - Stage 2: L ← laplacian.Build(A).
//   - Stage 3: Solve(X, L); score and rank the rows of R.
//
// An asymmetric A is accepted; the logger receives a warning because the
// smoothness term then only sees the symmetric part of the graph.
//
// Errors: those of Solve; ErrInvalidDimension for nil or mismatched inputs.
func Detect(ctx context.Context, X, A matrix.Matrix, opts Options, topM int) (*Report, error) {
	if err := validateDetectInputs(X, A); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	if sym, err := laplacian.IsSymmetric(A, symmetryEps); err == nil && !sym {
		opts.Logger.Warn("adjacency matrix is not symmetric", "nodes", A.Rows())
	}
	_, L, err := laplacian.Build(A)
	if err != nil {
		return nil, radarErrorf(opDetect, err)
	}

	res, err := Solve(ctx, X, L, opts)
	if err != nil {
		return nil, err
	}
	scores, err := Scores(res.R)
	if err != nil {
		return nil, err
	}

	return &Report{Ranking: Rank(scores, topM), Scores: scores, Result: res}, nil
}

func validateDetectInputs(X, A matrix.Matrix) error {
	if X == nil || A == nil {
		return fmt.Errorf("%w: nil attribute or adjacency matrix", ErrInvalidDimension)
	}
	if A.Rows() != A.Cols() {
		return fmt.Errorf("%w: adjacency is %dx%d, want square", ErrInvalidDimension, A.Rows(), A.Cols())
	}
	if X.Rows() != A.Rows() {
		return fmt.Errorf("%w: %d attribute rows for %d graph nodes", ErrInvalidDimension, X.Rows(), A.Rows())
	}

	return nil
}
