// Package field - core type declarations and defaults.
package field

import (
	"time"

	"github.com/katalvlaran/fieldwave/vecmath"
)

// Default parameters for newly created seeds and fields.
const (
	// DefaultSeedMass is the small starting mass every seed wave carries.
	DefaultSeedMass = 0.1

	// DensityScale divides the summed landmark mass when recomputing
	// field density: density = min(1, Σ mass / DensityScale).
	DensityScale = 100.0

	// StrengthTolerance is the absolute tolerance used when validating
	// that a redistribution conserves the granted strength budget.
	StrengthTolerance = 0.01
)

// DefaultSeedPosition is where a seed wave starts unless the caller
// supplies a position explicitly.
var DefaultSeedPosition = vecmath.Position{A: -1, B: -1}

// Status is the finite lifecycle state of a Wave. The orchestrator only
// ever advances it; it never moves backwards.
type Status int

const (
	// Seed is the initial status of a freshly created wave.
	Seed Status = iota
	// Deconstructing marks a wave collapsing toward the origin singularity.
	Deconstructing
	// InBridge marks a wave that has reached the origin's neighborhood.
	InBridge
	// Synthesizing marks a wave re-expanding along the reference line.
	Synthesizing
	// Crystallized is terminal: the wave is immutable and has left a Landmark.
	Crystallized
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case Seed:
		return "Seed"
	case Deconstructing:
		return "Deconstructing"
	case InBridge:
		return "InBridge"
	case Synthesizing:
		return "Synthesizing"
	case Crystallized:
		return "Crystallized"
	default:
		return "Unknown"
	}
}

// Phase is the ordered classification of a field's density.
type Phase int

const (
	// Dormant: density < 0.2 — the field has accumulated almost nothing.
	Dormant Phase = iota
	// Organizing: density in [0.2, 0.6) — structure is forming.
	Organizing
	// Critical: density in [0.6, 0.9) — near the transition regime.
	Critical
	// Emergent: density ≥ 0.9 — the field is saturated with landmarks.
	Emergent
)

// Phase classification thresholds. Classification is a pure lookup with
// no hysteresis; see the phase package for transition analysis.
const (
	OrganizingThreshold = 0.2
	CriticalThreshold   = 0.6
	EmergentThreshold   = 0.9
)

// String returns the human-readable phase label.
func (p Phase) String() string {
	switch p {
	case Dormant:
		return "Dormant"
	case Organizing:
		return "Organizing"
	case Critical:
		return "Critical"
	case Emergent:
		return "Emergent"
	default:
		return "Unknown"
	}
}

// Classify maps a density to its Phase label. Pure, total.
func Classify(density float64) Phase {
	switch {
	case density < OrganizingThreshold:
		return Dormant
	case density < CriticalThreshold:
		return Organizing
	case density < EmergentThreshold:
		return Critical
	default:
		return Emergent
	}
}

// Trace is one append-only history record of an operator application.
type Trace struct {
	// Operator is the name of the applied operator (e.g. "decompose").
	Operator string
	// Before / After capture the wave position around the application.
	Before, After vecmath.Position
	// MassBefore / MassAfter capture the wave mass around the application.
	MassBefore, MassAfter float64
	// At is the timestamp of the application.
	At time.Time
}

// Wave is the mutable unit of the simulation. All mutation happens
// through With* copy constructors; a Wave value itself is never changed
// in place by the engine.
type Wave struct {
	// ID uniquely identifies the wave for its whole life.
	ID string
	// Origin is the caller-supplied label of whatever spawned the wave.
	Origin string
	// Start is the position the wave was seeded at; it never changes.
	Start vecmath.Position
	// Pos is the current position.
	Pos vecmath.Position
	// Mass is the current coherence, always kept in [0,1].
	Mass float64
	// Status is the lifecycle state, advanced only by the orchestrator.
	Status Status
	// History is the append-only list of operator traces.
	History []Trace
}

// Landmark is the permanent trace of a crystallized wave. Immutable
// after creation except for the Uses counter.
type Landmark struct {
	// ID uniquely identifies the landmark.
	ID string
	// WaveID references the originating wave.
	WaveID string
	// Start is where the originating wave was seeded.
	Start vecmath.Position
	// End is where the wave crystallized.
	End vecmath.Position
	// Mass is the wave's mass at crystallization.
	Mass float64
	// Uses counts how often the landmark has been consulted.
	Uses int
	// CreatedAt is the crystallization timestamp.
	CreatedAt time.Time
}

// AttractorName enumerates the fixed set of named attractors.
type AttractorName string

const (
	// OriginWell sits on the origin singularity itself.
	OriginWell AttractorName = "origin"
	// Meridian sits on the reference line in the positive quadrant.
	Meridian AttractorName = "meridian"
	// Horizon sits far out along axis-A.
	Horizon AttractorName = "horizon"
	// Zenith sits far out along axis-B.
	Zenith AttractorName = "zenith"
)

// Attractor is a named, positioned generator with a strength in [0,1].
// Strengths are granted at field creation and may only change through a
// budget-conserving Redistribute call.
type Attractor struct {
	Name     AttractorName
	Pos      vecmath.Position
	Strength float64
}

// Field is the aggregate simulation state. A Field is a value: every
// updater returns a fresh copy and leaves the receiver untouched.
type Field struct {
	// Attractors is the fixed named set supplied at initialization.
	Attractors []Attractor
	// Landmarks accumulates crystallized waves; entries are never removed.
	Landmarks []Landmark
	// Waves holds the in-flight waves.
	Waves []Wave
	// Density is the landmark-derived scalar in [0,1].
	Density float64
	// Phase is always Classify(Density).
	Phase Phase
	// Budget is the total attractor strength granted at creation;
	// Redistribute must conserve it.
	Budget float64
	// Timestamp is advanced whenever the field evolves.
	Timestamp time.Time
}

// Metrics is a read-only snapshot of the field's aggregate numbers.
type Metrics struct {
	Density   float64
	Phase     Phase
	Landmarks int
	Waves     int
}
