// SPDX-License-Identifier: MIT

package radar

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/radar/linalg"
)

const (
	// DefaultTolerance is the objective change below which the solver stops.
	DefaultTolerance = 1e-3

	// DefaultReweightFactor is the numerator of the reweighting rule Dw[i,i] = f/‖W_i‖.
	DefaultReweightFactor = 0.5

	// convergenceWarmup is the number of completed iterations before the stop rule applies.
	convergenceWarmup = 3
)

// Default hyperparameters of DefaultOptions.
const (
	DefaultAlpha    = 0.01
	DefaultBeta     = 0.01
	DefaultGamma    = 0.1
	DefaultMaxIters = 20
)

// Options configures Solve and Detect.
//
//   - Alpha         : weight of the row-sparsity penalty on W (≥ 0).
//   - Beta          : weight of the row-sparsity penalty on R (≥ 0).
//   - Gamma         : weight of the Laplacian smoothness penalty tr(RᵗLR) (≥ 0).
//   - MaxIters      : upper bound on solver iterations (≥ 1).
//   - Tolerance     : stop when |obj[k] − obj[k−1]| < Tolerance; 0 → DefaultTolerance.
//   - ReweightFactor: numerator of the reweighting diagonals; 0 → DefaultReweightFactor.
//   - Backend       : linear-algebra provider; nil → linalg.Native().
//   - Observer      : lifecycle hooks; nil → NopObserver.
//   - Logger        : debug/info lines per run; nil → discarded.
type Options struct {
	Alpha, Beta, Gamma float64
	MaxIters           int
	Tolerance          float64
	ReweightFactor     float64

	Backend  linalg.Backend
	Observer Observer
	Logger   *log.Logger
}

// DefaultOptions returns the hyperparameters of the reference 4-node demo.
func DefaultOptions() Options {
	return Options{
		Alpha:          DefaultAlpha,
		Beta:           DefaultBeta,
		Gamma:          DefaultGamma,
		MaxIters:       DefaultMaxIters,
		Tolerance:      DefaultTolerance,
		ReweightFactor: DefaultReweightFactor,
		Backend:        linalg.Native(),
	}
}

// Validate checks the numeric fields. Errors wrap ErrInvalidHyperparameter.
func (o Options) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"alpha", o.Alpha},
		{"beta", o.Beta},
		{"gamma", o.Gamma},
		{"tolerance", o.Tolerance},
		{"reweight factor", o.ReweightFactor},
	} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v < 0 {
			return fmt.Errorf("%w: %s = %g", ErrInvalidHyperparameter, p.name, p.v)
		}
	}
	if o.MaxIters < 1 {
		return fmt.Errorf("%w: max iterations = %d", ErrInvalidHyperparameter, o.MaxIters)
	}

	return nil
}

// withDefaults fills the zero-valued collaborators and constants.
func (o Options) withDefaults() Options {
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.ReweightFactor == 0 {
		o.ReweightFactor = DefaultReweightFactor
	}
	if o.Backend == nil {
		o.Backend = linalg.Native()
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}

	return o
}
