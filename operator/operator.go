package operator

import (
	"math"

	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/vecmath"
)

// Decompose scales the wave's position toward the origin singularity by
// DecomposeFactor and recomputes mass from the new position.
//
// Declared: associative, NOT commutative, has identity, not idempotent.
func Decompose() Operator {
	return Operator{
		Name:  "decompose",
		Props: Properties{Associative: true, HasIdentity: true},
		fn: func(w field.Wave, _ field.Field) field.Wave {
			p := vecmath.Position{A: w.Pos.A * DecomposeFactor, B: w.Pos.B * DecomposeFactor}
			return w.WithPosition(p).WithMass(vecmath.Mass(p))
		},
	}
}

// Forget decays the wave's mass by ForgetFactor; position is untouched.
//
// Declared: associative, commutative, has identity, not idempotent.
func Forget() Operator {
	return Operator{
		Name:  "forget",
		Props: Properties{Associative: true, Commutative: true, HasIdentity: true},
		fn: func(w field.Wave, _ field.Field) field.Wave {
			return w.WithMass(w.Mass * ForgetFactor)
		},
	}
}

// Compose moves the wave outward by ComposeStep along the 45° direction
// toward the reference line (an equal step on both axes) and recomputes
// mass from the new position.
//
// Declared: associative, NOT commutative, has identity, not idempotent.
func Compose() Operator {
	step := ComposeStep / math.Sqrt(2)
	return Operator{
		Name:  "compose",
		Props: Properties{Associative: true, HasIdentity: true},
		fn: func(w field.Wave, _ field.Field) field.Wave {
			p := vecmath.Position{A: w.Pos.A + step, B: w.Pos.B + step}
			return w.WithPosition(p).WithMass(vecmath.Mass(p))
		},
	}
}

// Memoize amplifies the wave's mass by MemoizeFactor, capped at 1;
// position is untouched.
//
// Declared: associative, commutative, has identity, not idempotent.
func Memoize() Operator {
	return Operator{
		Name:  "memoize",
		Props: Properties{Associative: true, Commutative: true, HasIdentity: true},
		fn: func(w field.Wave, _ field.Field) field.Wave {
			return w.WithMass(w.Mass * MemoizeFactor)
		},
	}
}

// Identity returns ε: it leaves a wave bit-identical, appends no trace,
// and is the identity element of ⊕.
//
// Declared: associative, commutative, idempotent, has identity (itself).
func Identity() Operator {
	return Operator{
		Name:  "ε",
		Props: Properties{Associative: true, Commutative: true, Idempotent: true, HasIdentity: true},
	}
}

// Then builds the ⊕ composition of a and b:
//
//	(a ⊕ b)(w) = b(a(w))
//
// The composed declaration follows the fixed rules of the algebra:
// commutativity is the AND of the operands', associativity is always
// declared, and the composition's identity element is ε. If either side
// is ε, the other operand is returned unchanged.
func Then(a, b Operator) Operator {
	if a.IsIdentity() {
		return b
	}
	if b.IsIdentity() {
		return a
	}
	return Operator{
		Name: a.Name + "⊕" + b.Name,
		Props: Properties{
			Associative: true,
			Commutative: a.Props.Commutative && b.Props.Commutative,
			HasIdentity: true,
		},
		fn: func(w field.Wave, f field.Field) field.Wave {
			// Sequencing through ApplyAt would double-stamp; fn-level
			// chaining keeps one trace per atomic operand instead.
			return b.fn(a.fn(w, f), f)
		},
	}
}

// The fn-level chaining in Then collapses the composite into a single
// trace. ApplyAt on a composite therefore records the composite's name
// once with the overall before/after, while the orchestrator's iterative
// path records each atomic operand separately. Both granularities are
// legitimate; see the harvest package for which one is canonical.

// DeconstructionPhase is the fixed composite decompose ⊕ forget: collapse
// toward the origin while shedding mass.
func DeconstructionPhase() Operator {
	return Then(Decompose(), Forget())
}

// SynthesisPhase is the fixed composite compose ⊕ memoize: expand along
// the reference line while amplifying mass.
func SynthesisPhase() Operator {
	return Then(Compose(), Memoize())
}

// Lifecycle is the single-operator form of the whole wave lifecycle:
// DeconstructionPhase ⊕ SynthesisPhase.
func Lifecycle() Operator {
	return Then(DeconstructionPhase(), SynthesisPhase())
}
