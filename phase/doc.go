// Package phase provides the field's phase-transition instruments: a
// sample tracker, the landmark order parameter, power-law fitting near a
// critical density, and hysteresis detection.
//
// What:
//
//   - Tracker — records (density, phase, order-parameter, timestamp)
//     samples of a field and reports the transitions between consecutive
//     differing phase labels.
//   - OrderParameter — the fraction of landmark pairs whose end
//     positions lie within a spatial tolerance of each other; a simple
//     pairwise-proximity connectivity measure, O(n²) in landmark count.
//   - ProximityComponents — the connected components of the same
//     proximity relation, for callers that want the cluster structure
//     behind the scalar.
//   - FitPowerLaw — ordinary least squares over log-transformed
//     (density offset, order parameter) pairs near a critical density.
//   - DetectHysteresis — compares the first-transition density of an
//     ascending sample sequence against a descending one.
//
// Why:
//
//   - The pure density → phase lookup lives in the field package, where
//     the Field type can structurally keep its label honest. What lives
//     here is everything built on recorded time series.
//
// Read-only by contract:
//
//   - Every instrument in this package is a diagnostic. Nothing here
//     feeds back into harvesting or field evolution, and nothing in the
//     core consults these results to change control flow.
//
// Errors:
//
//   - None. Instruments with insufficient data (fewer than 3 usable fit
//     points, transition-free sequences) report ok=false.
package phase
