// SPDX-License-Identifier: MIT

package radar

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/radar/matrix"
)

// Job is one independent Detect call.
type Job struct {
	X, A    matrix.Matrix
	Options Options
	Top     int
}

// DetectBatch runs jobs concurrently, at most parallelism at a time
// (parallelism ≤ 0 means runtime.GOMAXPROCS(0)).
//
// Reports come back in job order. The first failing job cancels the context
// seen by the others and its error is returned, wrapped with the job index.
// Jobs must not share mutable matrices.
func DetectBatch(ctx context.Context, jobs []Job, parallelism int) ([]*Report, error) {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	reports := make([]*Report, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, job := range jobs {
		g.Go(func() error {
			rep, err := Detect(gctx, job.X, job.A, job.Options, job.Top)
			if err != nil {
				return fmt.Errorf("radar: job %d: %w", i, err)
			}
			reports[i] = rep // distinct index per goroutine

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
