// SPDX-License-Identifier: MIT

package laplacian

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfLoop is returned by FromEdges for an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("laplacian: self-loop edge")

	// ErrUnknownNode is returned by FromEdges for an endpoint outside [0, n).
	ErrUnknownNode = errors.New("laplacian: edge endpoint out of range")
)

// EdgeError reports which edge of an edge list was rejected and why.
type EdgeError struct {
	Index    int // position in the input slice
	From, To int
	Err      error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("laplacian: edge #%d (%d->%d): %v", e.Index, e.From, e.To, e.Err)
}

func (e *EdgeError) Unwrap() error { return e.Err }
