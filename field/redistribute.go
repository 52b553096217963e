package field

import "math"

// Redistribute replaces every attractor's strength with the value from
// the supplied full mapping, but only if the new strengths conserve the
// strength budget granted at field creation (within StrengthTolerance).
//
// Validation, in order:
//  1. The mapping must cover exactly the field's attractors — no missing
//     names, no unknown names.
//  2. Every new strength must lie in [0,1].
//  3. The new strengths must sum to the budget within StrengthTolerance.
//
// On any violation the original field is returned unchanged together
// with false; callers must check the boolean, there is no error path.
func (f Field) Redistribute(strengths map[AttractorName]float64) (Field, bool) {
	if len(strengths) != len(f.Attractors) {
		return f, false
	}
	sum := 0.0
	for _, a := range f.Attractors {
		s, ok := strengths[a.Name]
		if !ok {
			return f, false
		}
		if s < 0 || s > 1 {
			return f, false
		}
		sum += s
	}
	if math.Abs(sum-f.Budget) > StrengthTolerance {
		return f, false
	}

	attractors := make([]Attractor, len(f.Attractors))
	copy(attractors, f.Attractors)
	for i := range attractors {
		attractors[i].Strength = strengths[attractors[i].Name]
	}
	f.Attractors = attractors
	return f, true
}
