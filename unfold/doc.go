// Package unfold is the generator side of the engine, dual to the
// fold-style operators: where harvest consumes a wave into a landmark,
// unfold treats each named attractor as a source that emits discrete
// events and a notionally-evolved successor field.
//
// What:
//
//   - Unfold — one generation step: an attractor at or above the
//     activation threshold produces one event (attractor name, derived
//     strength, source label, probe position) plus the successor field;
//     below the threshold it produces nothing, reported as ok=false —
//     an explicit absence, not an error.
//   - Stream — a bounded generator: up to n Unfold steps, stopping
//     early the moment unfold produces nothing. The probe position
//     threads through the stream, pulled toward the attractor by each
//     event.
//   - Combined — independent per-attractor streams over one field,
//     returned as a per-attractor event list.
//   - MovesToward — whether a stream's final recorded position is
//     closer to the attractor than its first.
//
// Event positions:
//
//   - Each event pulls the probe a strength-weighted half-step toward
//     the attractor, so active attractors visibly draw their streams in.
//
// Errors:
//
//   - None. Inactive attractors yield absence; everything else is total.
package unfold
