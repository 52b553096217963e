// Package operator - type declarations shared across the operator algebra.
package operator

import (
	"time"

	"github.com/katalvlaran/fieldwave/field"
)

// Tunable constants of the atomic operators. These are the fixed
// transformation rules of the engine, not knobs: harvest thresholds are
// calibrated against them.
const (
	// DecomposeFactor scales a position toward the origin per application.
	DecomposeFactor = 0.9

	// ForgetFactor decays mass per application.
	ForgetFactor = 0.95

	// ComposeStep is the outward step length along the 45° direction.
	ComposeStep = 0.5

	// MemoizeFactor amplifies mass per application, capped at 1.
	MemoizeFactor = 1.1
)

// Properties is the immutable declared-property record attached to every
// operator and accumulator. Properties are metadata: they describe what
// the author claims, and nothing in the core re-derives them at runtime.
type Properties struct {
	Associative bool
	Commutative bool
	Idempotent  bool
	HasIdentity bool
	HasInverse  bool
}

// Operator is a named wave transformation with declared properties.
// Applying an operator appends exactly one trace to the wave's history;
// the ε identity is the single exception and appends none.
type Operator struct {
	// Name identifies the operator in history traces ("decompose",
	// "a⊕b", …).
	Name string

	// Props is the declared algebraic metadata.
	Props Properties

	// fn performs the position/mass transform. A nil fn is ε.
	fn func(field.Wave, field.Field) field.Wave
}

// IsIdentity reports whether op is the ε operator.
func (op Operator) IsIdentity() bool { return op.fn == nil }

// Apply transforms w against f, stamping the history trace with the
// current wall-clock time. Equivalent to ApplyAt(w, f, time.Now()).
func (op Operator) Apply(w field.Wave, f field.Field) field.Wave {
	return op.ApplyAt(w, f, time.Now())
}

// ApplyAt transforms w against f, stamping the history trace with an
// explicit timestamp. The orchestrator uses this to keep every trace of
// one harvest step on the same clock reading.
func (op Operator) ApplyAt(w field.Wave, f field.Field, at time.Time) field.Wave {
	if op.fn == nil {
		return w
	}
	out := op.fn(w, f)
	return out.WithTrace(field.Trace{
		Operator:   op.Name,
		Before:     w.Pos,
		After:      out.Pos,
		MassBefore: w.Mass,
		MassAfter:  out.Mass,
		At:         at,
	})
}

// Class is a rung of the algebraic hierarchy assigned by Classify.
type Class int

const (
	// Magma: closed binary operation, nothing else claimed.
	Magma Class = iota
	// Semigroup: associative.
	Semigroup
	// Monoid: associative with identity.
	Monoid
	// CommutativeMonoid: monoid, commutative.
	CommutativeMonoid
	// IdempotentCommutativeMonoid: commutative monoid, idempotent.
	IdempotentCommutativeMonoid
	// Group: monoid with inverses.
	Group
	// AbelianGroup: commutative group.
	AbelianGroup
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Magma:
		return "Magma"
	case Semigroup:
		return "Semigroup"
	case Monoid:
		return "Monoid"
	case CommutativeMonoid:
		return "CommutativeMonoid"
	case IdempotentCommutativeMonoid:
		return "IdempotentCommutativeMonoid"
	case Group:
		return "Group"
	case AbelianGroup:
		return "AbelianGroup"
	default:
		return "Unknown"
	}
}
