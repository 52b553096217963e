package unfold

import (
	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/vecmath"
)

// Unfold performs one generation step for attractor a over field f,
// with the probe currently at from.
//
// When a's strength is below the activation threshold the attractor is
// dormant: Unfold returns the zero Event, f unchanged, and ok=false.
// Absence is a value here, not an error.
//
// Otherwise it returns the emitted event, a successor field whose
// timestamp has been advanced by the options clock, and ok=true. The
// event strength is a.Strength scaled by (1+density)/2, so a dense
// field amplifies its sources and an empty one halves them. The event
// position is the probe pulled a strength-weighted half-step toward a.
func Unfold(a field.Attractor, f field.Field, from vecmath.Position, opts *Options) (Event, field.Field, bool) {
	o := opts.normalized()
	if a.Strength < o.Threshold {
		return Event{}, f, false
	}

	strength := a.Strength * (1 + f.Density) / 2
	at := vecmath.Position{
		A: from.A + strength*pullFactor*(a.Pos.A-from.A),
		B: from.B + strength*pullFactor*(a.Pos.B-from.B),
	}

	next := f
	next.Timestamp = o.Clock()

	return Event{
		Attractor: a.Name,
		Strength:  strength,
		Source:    "attractor/" + string(a.Name),
		At:        at,
	}, next, true
}

// Stream generates up to n events from attractor a over field f,
// threading the probe position from event to event. It stops early the
// moment Unfold reports absence, so a dormant attractor yields an
// empty stream. The returned field is the last successor produced.
func Stream(a field.Attractor, f field.Field, from vecmath.Position, n int, opts *Options) ([]Event, field.Field) {
	var events []Event
	cur := from
	for i := 0; i < n; i++ {
		ev, next, ok := Unfold(a, f, cur, opts)
		if !ok {
			break
		}
		events = append(events, ev)
		f = next
		cur = ev.At
	}
	return events, f
}

// Combined runs an independent stream of up to n events for every
// attractor of f, each starting from the same probe position, and
// returns the events keyed by attractor name. Dormant attractors map
// to empty streams.
func Combined(f field.Field, from vecmath.Position, n int, opts *Options) map[field.AttractorName][]Event {
	out := make(map[field.AttractorName][]Event, len(f.Attractors))
	for _, a := range f.Attractors {
		events, _ := Stream(a, f, from, n, opts)
		out[a.Name] = events
	}
	return out
}

// MovesToward reports whether the stream's final recorded position is
// strictly closer to attractor a than its first. Streams with fewer
// than two events have not moved and report false.
func MovesToward(a field.Attractor, events []Event) bool {
	if len(events) < 2 {
		return false
	}
	first := vecmath.Distance(events[0].At, a.Pos)
	last := vecmath.Distance(events[len(events)-1].At, a.Pos)
	return last < first
}
