// Package harvest implements the lifecycle orchestrator: it drives a
// seed wave through the deconstruction and synthesis phases until it
// either crystallizes into a permanent landmark or runs out of its
// iteration budget.
//
// What:
//
//   - Harvest — the canonical orchestrator. Applies the atomic operators
//     step by step (two history traces per iteration) through the two
//     phases, then crystallizes on success.
//   - HarvestAlgebraic — the algebraic variant driven by the prebuilt
//     phase composites (one history trace per iteration). Equivalent to
//     Harvest in every externally observable respect — final position,
//     mass and status — but not in history granularity.
//   - Options — iteration bound and the three termination thresholds,
//     plus an injectable clock for deterministic timestamps.
//
// Algorithm Outline:
//
//  1. Mark the wave Deconstructing; apply decompose ⊕ forget until the
//     distance to the origin falls below BridgeRadius (bounded by
//     MaxIterations). On success the wave is InBridge; on exhaustion it
//     is returned as-is with whatever partial position/mass it has.
//  2. Mark the wave Synthesizing; apply compose ⊕ memoize until the
//     distance to the origin exceeds CrystalRadius AND mass exceeds
//     CrystalMass (same bound). On exhaustion the wave simply stays
//     Synthesizing — a silent "not yet", never an error.
//  3. On crystallization, wrap the wave into a Landmark, append it to
//     the field, recompute density, reclassify the phase, and drop the
//     wave from the in-flight list.
//
// Why two implementations:
//
//   - The iterative loop is the debuggable ground truth; the algebraic
//     form demonstrates that the lifecycle is literally one ⊕-composite
//     applied under the same termination conditions. Keeping both honest
//     against each other is itself a test of the operator algebra.
//
// Errors:
//
//   - None. The single non-fatal outcome — failure to crystallize within
//     the bound — is reported through the returned wave's status, which
//     callers must check.
//
// Complexity:
//
//   - O(MaxIterations) operator applications per call; each application
//     is O(1) plus the history append.
package harvest
