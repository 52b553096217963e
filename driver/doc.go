// Package driver is the optional time-based front of the engine: a
// periodic loop that advances a tick counter and recomputes a display
// density from a deterministic oscillating function of elapsed ticks.
//
// What:
//
//   - Density — the pure oscillation: baseline + amplitude*sin over a
//     fixed tick period, clamped to [0,1]. Same tick, same density,
//     always.
//   - Driver — wraps Density in a time.Ticker loop. Each tick invokes a
//     single caller-supplied callback with the tick counter, the
//     density and its phase classification. Run blocks; Stop is the
//     entire cancellation story.
//
// Why:
//
//   - Everything else in the module is synchronous and value-driven;
//     the driver is the one place wall-clock time enters, and it is
//     kept to a single repeating callback with no shared mutable state.
//
// Errors:
//
//   - None. A driver either ticks or has been stopped.
package driver
