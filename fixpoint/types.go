// Package fixpoint - options, steps and analysis records.
package fixpoint

import (
	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/harvest"
)

// Default convergence parameters.
const (
	// DefaultEpsilon is the fixpoint-distance threshold under which two
	// successive harvest results count as "the same wave".
	DefaultEpsilon = 0.15

	// DefaultMaxIterations bounds the convergence loop.
	DefaultMaxIterations = 10

	// massWeight and positionWeight shape the fixpoint metric.
	massWeight     = 0.7
	positionWeight = 0.3
)

// Options configures the convergence loop.
//   - Epsilon        — fixpoint-distance threshold; ≤ 0 means default.
//   - MaxIterations  — loop bound; ≤ 0 means default.
//   - Harvest        — orchestrator options forwarded to every
//     iteration; nil means harvest defaults.
type Options struct {
	Epsilon       float64
	MaxIterations int
	Harvest       *harvest.Options
}

// DefaultOptions returns the standard convergence parameters.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, MaxIterations: DefaultMaxIterations}
}

// normalized fills the zero values of o with defaults.
func (o Options) normalized() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// Step is one recorded iteration of the convergence loop.
type Step struct {
	// Wave is the wave after this harvest.
	Wave field.Wave
	// Mass mirrors Wave.Mass for direct series access.
	Mass float64
	// Delta is the fixpoint distance from the previous wave state.
	Delta float64
}

// Convergence is the full record of one convergence run.
type Convergence struct {
	// Steps holds every recorded iteration in order.
	Steps []Step
	// Converged is true when the final delta fell below epsilon within
	// the iteration bound.
	Converged bool
	// Field is the field after the run, with whatever landmarks the
	// iterations crystallized.
	Field field.Field
}

// Analysis is the field-wide crystallization/fixpoint audit.
type Analysis struct {
	// Population is the number of landmarks audited.
	Population int
	// CrystallizedCount is how many originating waves carry mass ≥ 0.7.
	CrystallizedCount int
	// FixpointCount is how many originating waves are fixpoints under
	// the default epsilon.
	FixpointCount int
	// Overlap is |crystallized ∩ fixpoint| / |crystallized ∪ fixpoint|,
	// or 1 when both sets are empty (vacuous agreement).
	Overlap float64
	// Counterexamples lists the wave IDs in exactly one of the two sets.
	Counterexamples []string
	// MassDistanceCorrelation is the Pearson correlation between
	// landmark mass and fixpoint distance; 0 when either series has no
	// variance.
	MassDistanceCorrelation float64
}
