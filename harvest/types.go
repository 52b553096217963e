// Package harvest - options and result types.
package harvest

import (
	"time"

	"github.com/katalvlaran/fieldwave/field"
)

// Default orchestration parameters. The iteration bound is the only
// guard against unbounded loops anywhere in the engine; callers raising
// the thresholds must keep it finite.
const (
	// DefaultMaxIterations bounds each of the two phase loops.
	DefaultMaxIterations = 100

	// DefaultBridgeRadius is the origin proximity that ends deconstruction.
	DefaultBridgeRadius = 0.1

	// DefaultCrystalRadius is the origin distance a wave must exceed to
	// crystallize.
	DefaultCrystalRadius = 1.5

	// DefaultCrystalMass is the mass a wave must exceed to crystallize.
	DefaultCrystalMass = 0.7
)

// Options configures the orchestrator.
//
// Fields:
//   - MaxIterations — per-phase loop bound; values ≤ 0 fall back to the
//     default.
//   - BridgeRadius  — distance-to-origin threshold ending phase one.
//   - CrystalRadius — distance-to-origin threshold for crystallization.
//   - CrystalMass   — mass threshold for crystallization.
//   - Clock         — timestamp source for traces and landmarks; nil
//     falls back to time.Now. Tests pin it for reproducible history.
type Options struct {
	MaxIterations int
	BridgeRadius  float64
	CrystalRadius float64
	CrystalMass   float64
	Clock         func() time.Time
}

// DefaultOptions returns the standard orchestration parameters.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		BridgeRadius:  DefaultBridgeRadius,
		CrystalRadius: DefaultCrystalRadius,
		CrystalMass:   DefaultCrystalMass,
	}
}

// normalized fills the zero values of o with defaults.
func (o Options) normalized() Options {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.BridgeRadius <= 0 {
		o.BridgeRadius = DefaultBridgeRadius
	}
	if o.CrystalRadius <= 0 {
		o.CrystalRadius = DefaultCrystalRadius
	}
	if o.CrystalMass <= 0 {
		o.CrystalMass = DefaultCrystalMass
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

// Result carries the updated field and the final wave of one harvest.
// Callers must inspect Wave.Status: anything other than Crystallized
// means the wave did not finish this call, which is not a failure.
type Result struct {
	Field field.Field
	Wave  field.Wave
}

// Crystallized reports whether the harvested wave finished its lifecycle.
func (r Result) Crystallized() bool { return r.Wave.Status == field.Crystallized }
