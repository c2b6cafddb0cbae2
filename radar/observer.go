// SPDX-License-Identifier: MIT

package radar

import (
	"context"
	"time"
)

// SolveInfo describes a run when it starts.
type SolveInfo struct {
	Backend    string
	Nodes      int
	Attributes int
}

// SolveStats summarizes a finished run. Objective is the last recorded value
// (0 when no iteration completed).
type SolveStats struct {
	Backend    string
	Iterations int
	Converged  bool
	Objective  float64
	Duration   time.Duration
}

// Observer receives solver lifecycle events. Implementations must be safe for
// concurrent use when shared by concurrent runs (DetectBatch).
type Observer interface {
	OnSolveStart(ctx context.Context, info SolveInfo)
	OnIteration(ctx context.Context, iteration int, objective float64)
	// OnSolveComplete fires exactly once per started run, with the run error if any.
	OnSolveComplete(ctx context.Context, stats SolveStats, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnSolveStart(context.Context, SolveInfo)            {}
func (NopObserver) OnIteration(context.Context, int, float64)          {}
func (NopObserver) OnSolveComplete(context.Context, SolveStats, error) {}
