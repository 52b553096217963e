package harvest

import (
	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/operator"
	"github.com/katalvlaran/fieldwave/vecmath"
)

// Harvest drives w through the full lifecycle against f and returns the
// updated field together with the final wave. This is the canonical
// iterative implementation: every atomic operator application leaves its
// own history trace.
//
// A nil opts selects DefaultOptions. Neither input is mutated.
func Harvest(w field.Wave, f field.Field, opts *Options) Result {
	return run(w, f, opts, operator.Decompose(), operator.Forget(), operator.Compose(), operator.Memoize())
}

// HarvestAlgebraic drives w through the same lifecycle using the
// prebuilt phase composites, so each iteration leaves a single trace
// named after the composite. Final position, mass and status are
// equivalent to Harvest's; only the history granularity differs.
func HarvestAlgebraic(w field.Wave, f field.Field, opts *Options) Result {
	return run(w, f, opts, operator.DeconstructionPhase(), operator.Identity(), operator.SynthesisPhase(), operator.Identity())
}

// run is the shared two-phase loop. The deconstruction phase applies
// deconA then deconB per iteration, the synthesis phase synthA then
// synthB; passing ε for the B slots collapses a phase to one composite
// application per iteration.
func run(w field.Wave, f field.Field, opts *Options, deconA, deconB, synthA, synthB operator.Operator) Result {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o = o.normalized()
	now := o.Clock()

	// Phase one: collapse toward the origin singularity.
	w = w.WithStatus(field.Deconstructing)
	reached := false
	for i := 0; i < o.MaxIterations; i++ {
		if vecmath.DistanceToOrigin(w.Pos) < o.BridgeRadius {
			reached = true
			break
		}
		w = deconB.ApplyAt(deconA.ApplyAt(w, f, now), f, now)
	}
	if !reached && vecmath.DistanceToOrigin(w.Pos) >= o.BridgeRadius {
		// Bound exhausted before the bridge: silent non-failure, the
		// caller sees the partial position/mass through the status.
		return Result{Field: f, Wave: w}
	}
	w = w.WithStatus(field.InBridge)

	// Phase two: expand along the reference line until far and massive
	// enough to crystallize. The first application advances the status
	// from InBridge to Synthesizing.
	for i := 0; i < o.MaxIterations; i++ {
		if vecmath.DistanceToOrigin(w.Pos) > o.CrystalRadius && w.Mass > o.CrystalMass {
			w = w.WithStatus(field.Crystallized)
			break
		}
		w = synthB.ApplyAt(synthA.ApplyAt(w.WithStatus(field.Synthesizing), f, now), f, now)
	}
	if w.Status != field.Crystallized {
		// Still Synthesizing: not an error, simply not yet.
		return Result{Field: f, Wave: w}
	}

	// Crystallization: leave the permanent landmark, refresh the
	// aggregate metrics, retire the wave from flight.
	lm := field.NewLandmark(w, now)
	f = f.WithoutWave(w.ID).WithLandmark(lm, now)
	return Result{Field: f, Wave: w}
}
