// Package fieldwave is an in-memory engine for simulating a discrete-state
// 2-D "field" in which abstract waves move under a small algebra of
// deterministic operators and crystallize into permanent landmarks.
//
// 🚀 What is fieldwave?
//
//	A deterministic, single-threaded simulation core that brings together:
//		• Vector math: coherence (mass), origin & reference-line distances
//		• Operators: four atomic wave transforms + identity, with a
//		  declared-property algebra and ⊕ composition
//		• Harvest: the full Seed → Crystallized lifecycle orchestration
//		• Phase: density classification, transition tracking, order
//		  parameter, power-law fitting and hysteresis detection
//		• Fixpoint: convergence analysis of repeated harvests
//		• Unfold: attractor-driven event stream generation
//
// ✨ Why choose fieldwave?
//
//   - Deterministic – every operation is a pure value transformation;
//     same inputs, same outputs, no hidden clocks in the core
//   - Honest failure modes – "not yet crystallized" is a status to
//     check, never an exception to catch
//   - Value semantics – fields and waves are copied, never shared;
//     history is append-only and landmarks are immutable
//   - Pure Go – no cgo, a minimal and boring dependency set
//
// Everything is organized under small single-purpose packages:
//
//	vecmath/  — Position, mass and distance primitives
//	field/    — Wave, Landmark, Attractor and Field value types
//	operator/ — atomic operators, ⊕ composition, algebra classification
//	harvest/  — the lifecycle orchestrator (iterative & algebraic)
//	phase/    — density → phase classification and transition analysis
//	fixpoint/ — convergence detection and population analysis
//	unfold/   — attractor → event stream generation
//	driver/   — optional periodic tick driver
//
// Quick ASCII picture of one wave lifecycle:
//
//	Seed ──deconstruct──▶ Bridge ──synthesize──▶ Crystallized
//	 (-1,-1)               (~0,0)                 (>1.5 from origin)
//
// Dive into cmd/fieldsim for runnable end-to-end scenarios.
//
//	go get github.com/katalvlaran/fieldwave
package fieldwave
