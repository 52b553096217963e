package vecmath

import "math"

// sqrt2 is precomputed once; the reference-line distance divides by it on
// every operator application.
var sqrt2 = math.Sqrt(2)

// Position is a point in the 2-D field: axis-A and axis-B coordinates.
// Positions are plain values; copy freely.
type Position struct {
	A float64
	B float64
}

// DistanceToReferenceLine returns the perpendicular distance from p to
// the diagonal reference line A == B:
//
//	|B - A| / √2
//
// The result is always ≥ 0 and is 0 exactly on the line.
func DistanceToReferenceLine(p Position) float64 {
	return math.Abs(p.B-p.A) / sqrt2
}

// Mass returns the coherence of a position:
//
//	1 / (1 + DistanceToReferenceLine(p))
//
// Range (0,1]; equals 1 only exactly on the reference line, and decreases
// monotonically with distance from it. No rounding, no clamping.
func Mass(p Position) float64 {
	return 1 / (1 + DistanceToReferenceLine(p))
}

// DistanceToOrigin returns the Euclidean norm of p, i.e. the distance to
// the origin singularity (0,0).
func DistanceToOrigin(p Position) float64 {
	return math.Hypot(p.A, p.B)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Position) float64 {
	return math.Hypot(p.A-q.A, p.B-q.B)
}
