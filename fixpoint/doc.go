// Package fixpoint analyzes the convergence of repeated harvesting: when
// does running the lifecycle again stop changing a wave?
//
// What:
//
//   - Distance — the weighted fixpoint metric between two wave states:
//     0.7·|Δmass| + 0.3·positionDelta.
//   - IsFixpoint — whether one more harvest moves a wave by less than ε.
//   - Converge — iterate the orchestrator, recording (wave, mass, delta)
//     per step, stopping early once the delta falls under ε; reports
//     whether convergence happened within the iteration bound.
//   - AnalyzePopulation — field-wide audit over all landmarks: the
//     crystallized set (mass ≥ 0.7) against the fixpoint set, their
//     overlap with explicit counterexamples, and the Pearson correlation
//     between landmark mass and fixpoint distance.
//   - TrajectoryDistance — a pairwise alignment distance between two
//     convergence mass trajectories, for comparing runs of different
//     lengths.
//
// Why:
//
//   - Crystallization (a mass threshold) and being a fixpoint (a
//     stability property) are different claims about the same wave. The
//     engine treats them as empirically related, never as interchangeable;
//     this package measures exactly how related they are on a given field.
//
// Determinism:
//
//   - Everything here is a deterministic function of its inputs; the
//     harvest options (and their clock) can be injected for reproducible
//     histories.
//
// Errors:
//
//   - None. Degenerate inputs (empty trajectories, zero-variance
//     populations) report ok=false or a zero correlation.
package fixpoint
