// Package vecmath provides the scalar primitives every other fieldwave
// package is built on: positions in the 2-D field, distances to the two
// fixed geometric references, and the coherence ("mass") formula.
//
// What:
//
//   - Position — a pair of finite reals (axis-A, axis-B).
//   - DistanceToReferenceLine — distance to the diagonal A == B.
//   - DistanceToOrigin — Euclidean norm of a position.
//   - Distance — Euclidean distance between two positions.
//   - Mass — coherence in (0,1], maximal exactly on the reference line.
//
// Why:
//
//   - The mass formula is the single numeric semantics the whole engine
//     shares: operators recompute it after moving a wave, the harvester
//     crystallizes on it, and the fixpoint analyzer correlates against it.
//
// Complexity:
//
//   - All functions are O(1), allocation-free, pure and total over all
//     finite reals. There are no error paths.
package vecmath
