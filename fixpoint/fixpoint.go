package fixpoint

import (
	"math"

	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/harvest"
	"github.com/katalvlaran/fieldwave/vecmath"
)

// Distance is the fixpoint metric between two wave states:
//
//	0.7·|massBefore - massAfter| + 0.3·‖posBefore - posAfter‖
//
// Mass dominates on purpose: the engine cares more about coherence
// stability than about where along the reference line a wave settles.
func Distance(before, after field.Wave) float64 {
	return massWeight*math.Abs(before.Mass-after.Mass) +
		positionWeight*vecmath.Distance(before.Pos, after.Pos)
}

// IsFixpoint reports whether harvesting w once more against f yields a
// result within epsilon fixpoint distance of w. An epsilon ≤ 0 selects
// the default.
func IsFixpoint(w field.Wave, f field.Field, epsilon float64) bool {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	res := harvest.Harvest(w, f, nil)
	return Distance(w, res.Wave) < epsilon
}

// Converge repeatedly harvests seed against f, recording one Step per
// iteration, and stops early once the step delta falls below epsilon.
// The field evolves across iterations: every crystallization feeds the
// next harvest's field. A nil opts selects DefaultOptions.
func Converge(seed field.Wave, f field.Field, opts *Options) Convergence {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	o = o.normalized()

	w := seed
	conv := Convergence{}
	for i := 0; i < o.MaxIterations; i++ {
		res := harvest.Harvest(w, f, o.Harvest)
		delta := Distance(w, res.Wave)
		w, f = res.Wave, res.Field
		conv.Steps = append(conv.Steps, Step{Wave: w, Mass: w.Mass, Delta: delta})
		if delta < o.Epsilon {
			conv.Converged = true
			break
		}
	}
	conv.Field = f
	return conv
}
