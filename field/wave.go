package field

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/fieldwave/vecmath"
)

// NewSeed creates a wave in Seed status at the default starting position
// with the default seed mass. The origin label records what spawned it.
func NewSeed(origin string) Wave {
	return NewSeedAt(origin, DefaultSeedPosition)
}

// NewSeedAt creates a Seed wave at an explicit starting position.
func NewSeedAt(origin string, at vecmath.Position) Wave {
	return Wave{
		ID:     uuid.NewString(),
		Origin: origin,
		Start:  at,
		Pos:    at,
		Mass:   DefaultSeedMass,
		Status: Seed,
	}
}

// WithPosition returns a copy of w at position p.
func (w Wave) WithPosition(p vecmath.Position) Wave {
	w.Pos = p
	return w
}

// WithMass returns a copy of w with mass m clamped into [0,1].
func (w Wave) WithMass(m float64) Wave {
	if m < 0 {
		m = 0
	}
	if m > 1 {
		m = 1
	}
	w.Mass = m
	return w
}

// WithStatus returns a copy of w advanced to status s.
func (w Wave) WithStatus(s Status) Wave {
	w.Status = s
	return w
}

// WithTrace returns a copy of w with tr appended to its history. The
// history slice is reallocated so the receiver's history can never be
// overwritten through the copy — append-only is structural, not
// conventional.
func (w Wave) WithTrace(tr Trace) Wave {
	h := make([]Trace, len(w.History), len(w.History)+1)
	copy(h, w.History)
	w.History = append(h, tr)
	return w
}

// CloneHistory returns an independent copy of the wave's history.
func (w Wave) CloneHistory() []Trace {
	h := make([]Trace, len(w.History))
	copy(h, w.History)
	return h
}
