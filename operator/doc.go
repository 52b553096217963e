// Package operator implements the wave-transformation algebra: the four
// atomic operators, the ε identity, and the ⊕ sequencing composition,
// together with the declared-property metadata and the supporting
// classification machinery.
//
// What:
//
//   - Decompose / Forget / Compose / Memoize — the atomic operators,
//     each mapping (wave, field) → wave and appending exactly one
//     history trace.
//   - Identity — ε: leaves a wave bit-identical and appends no trace.
//   - Then — the ⊕ composition: (a ⊕ b)(w) = b(a(w)).
//   - Properties — an immutable record of declared algebraic properties
//     (associative, commutative, idempotent, has-identity, has-inverse).
//     Declared means declared: nothing re-verifies them at call time.
//   - Classify — total mapping from Properties into the algebraic
//     hierarchy Magma ⊂ Semigroup ⊂ Monoid ⊂ CommutativeMonoid ⊂
//     IdempotentCommutativeMonoid ⊂ Group ⊂ AbelianGroup.
//   - Accumulator[T] / Pair — the generic fold-function algebra: two
//     accumulators with declared identities compose into one paired
//     accumulator; composition is refused (ok=false) when either lacks
//     an identity element.
//   - CheckCommutative / CheckIdempotent / CheckIdentity — best-effort
//     randomized property probes. Diagnostics only, explicitly not
//     sound: they sample, they do not prove.
//
// Why:
//
//   - The lifecycle orchestrator is nothing but a bounded iteration of
//     two fixed ⊕-composites (DeconstructionPhase, SynthesisPhase); the
//     whole engine's behavior is this package applied in a loop.
//
// Determinism:
//
//   - Operators are pure value transforms; the property probes use a
//     seeded RNG (seed 0 maps to a fixed default), so identical inputs
//     always produce identical reports.
//
// Errors:
//
//   - None. Refused compositions report ok=false, never an error.
package operator
