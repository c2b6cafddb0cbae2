// SPDX-License-Identifier: MIT

package laplacian

import (
	"math"

	"github.com/katalvlaran/radar/matrix"
)

const opFromEdges = "FromEdges"

// Edge is one weighted connection between two nodes indexed in [0, n).
// A zero Weight means an unweighted edge and is stored as DefaultWeight.
type Edge struct {
	From, To int
	Weight   float64
}

// FromEdges assembles an n×n adjacency matrix from an edge list.
//
// Implementation:
//   - Stage 1: validate n > 0, then every edge in input order (endpoints, loop, weight).
//   - Stage 2: accumulate weights into A[From,To] and, unless directed, A[To,From].
//
// Behavior highlights:
//   - Parallel edges accumulate, so a multigraph becomes a weighted simple graph.
//   - The first invalid edge aborts the build; no partial matrix is returned.
//
// Errors:
//   - matrix.ErrInvalidDimensions if n ≤ 0.
//   - *EdgeError wrapping ErrUnknownNode, ErrSelfLoop or matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(n² + |E|), Space O(n²).
func FromEdges(n int, edges []Edge, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	A, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, laplacianErrorf(opFromEdges, err)
	}

	var (
		w   float64
		cur float64
	)
	for idx, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, laplacianErrorf(opFromEdges, &EdgeError{Index: idx, From: e.From, To: e.To, Err: ErrUnknownNode})
		}
		if e.From == e.To {
			return nil, laplacianErrorf(opFromEdges, &EdgeError{Index: idx, From: e.From, To: e.To, Err: ErrSelfLoop})
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, laplacianErrorf(opFromEdges, &EdgeError{Index: idx, From: e.From, To: e.To, Err: matrix.ErrNaNInf})
		}
		w = e.Weight
		if w == 0 {
			w = DefaultWeight
		}

		// endpoints are in range, so At/Set cannot fail
		cur, _ = A.At(e.From, e.To)
		_ = A.Set(e.From, e.To, cur+w)
		if !o.directed {
			cur, _ = A.At(e.To, e.From)
			_ = A.Set(e.To, e.From, cur+w)
		}
	}

	return A, nil
}
