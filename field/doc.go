// Package field defines the central value types of the fieldwave engine —
// Wave, Landmark, Attractor and the aggregate Field — together with their
// constructors, copy-on-write updaters and read-only accessors.
//
// What:
//
//   - Wave — the in-flight unit of simulation: position, mass, status and
//     an append-only history of applied-operator traces.
//   - Landmark — the permanent record left behind by a crystallized wave.
//   - Attractor — a named, positioned, strength-weighted generator.
//   - Field — attractors + landmarks + in-flight waves + density + phase.
//   - Phase — the ordered density classification (Dormant → Emergent) and
//     the pure Classify lookup, kept here so a Field can never carry a
//     phase label that disagrees with its density.
//
// Why:
//
//   - Everything is a value. Updaters (WithPosition, WithLandmark, …)
//     return fresh copies with shared history deep-copied on write, so
//     append-only history and landmark immutability are structural facts,
//     not conventions.
//
// Invariants:
//
//   - Wave.History only ever grows; past entries are never rewritten.
//   - Landmarks are never mutated after creation except the Uses counter.
//   - Field.Density is monotonically non-decreasing except via ResetDensity.
//   - Field.Phase always equals Classify(Field.Density).
//
// Errors:
//
//   - None. Per the engine's error-handling contract, fallible operations
//     (attractor strength redistribution) report a boolean, not an error.
package field
