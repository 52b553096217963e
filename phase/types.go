// Package phase - types, options and fixed analysis constants.
package phase

import (
	"time"

	"github.com/katalvlaran/fieldwave/field"
)

// Fixed analysis constants.
const (
	// DefaultProximityTolerance is the spatial tolerance under which two
	// landmark endpoints count as connected.
	DefaultProximityTolerance = 0.5

	// HysteresisWidth is the minimum ascending/descending transition
	// density gap reported as hysteresis.
	HysteresisWidth = 0.05

	// minFitPoints is the fewest usable points a power-law fit accepts.
	minFitPoints = 3
)

// Sample is one recorded observation of a field.
type Sample struct {
	Density float64
	Phase   field.Phase
	Order   float64
	At      time.Time
}

// Transition captures the moment two consecutive samples disagree on
// the phase label, together with the density and order parameter at the
// crossing.
type Transition struct {
	From, To field.Phase
	Density  float64
	Order    float64
	At       time.Time
}

// Fit is the result of a power-law fit log(order) ≈ Exponent·log(Δρ) + c
// near a critical density.
type Fit struct {
	// Exponent is the fitted power-law exponent.
	Exponent float64
	// Intercept is the fitted log-space intercept c.
	Intercept float64
	// Points is how many usable samples entered the regression.
	Points int
}

// Report is the hysteresis comparison of an ascending and a descending
// density sweep.
type Report struct {
	// AscendingDensity is the density at the first transition of the
	// ascending sweep; DescendingDensity likewise for the descending one.
	AscendingDensity  float64
	DescendingDensity float64
	// Width is |AscendingDensity - DescendingDensity|.
	Width float64
	// Hysteretic is true when Width exceeds HysteresisWidth.
	Hysteretic bool
}

// Options configures a Tracker.
//   - ProximityTolerance: landmark-endpoint tolerance for the order
//     parameter; values ≤ 0 fall back to the default.
//   - Clock: timestamp source for recorded samples; nil means time.Now.
type Options struct {
	ProximityTolerance float64
	Clock              func() time.Time
}

// DefaultOptions returns the standard tracker configuration.
func DefaultOptions() Options {
	return Options{ProximityTolerance: DefaultProximityTolerance}
}

// Tracker accumulates field samples and derives transitions from them.
// A Tracker is a recording instrument, not shared state: use one per
// analysis, from one goroutine.
type Tracker struct {
	tolerance float64
	clock     func() time.Time
	samples   []Sample
}

// NewTracker builds a Tracker from opts; nil selects DefaultOptions.
func NewTracker(opts *Options) *Tracker {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.ProximityTolerance <= 0 {
		o.ProximityTolerance = DefaultProximityTolerance
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return &Tracker{tolerance: o.ProximityTolerance, clock: o.Clock}
}
