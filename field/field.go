package field

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/fieldwave/vecmath"
)

// DefaultAttractors returns the fixed named attractor set every new
// field starts with. The strengths sum to the initial budget of 2.0.
func DefaultAttractors() []Attractor {
	return []Attractor{
		{Name: OriginWell, Pos: vecmath.Position{A: 0, B: 0}, Strength: 0.8},
		{Name: Meridian, Pos: vecmath.Position{A: 2, B: 2}, Strength: 0.6},
		{Name: Horizon, Pos: vecmath.Position{A: 4, B: 0}, Strength: 0.4},
		{Name: Zenith, Pos: vecmath.Position{A: 0, B: 4}, Strength: 0.2},
	}
}

// New returns an empty field: the default attractor set, no landmarks,
// no in-flight waves, zero density and Dormant phase.
func New() Field {
	attractors := DefaultAttractors()
	budget := 0.0
	for _, a := range attractors {
		budget += a.Strength
	}
	return Field{
		Attractors: attractors,
		Density:    0,
		Phase:      Dormant,
		Budget:     budget,
		Timestamp:  time.Now(),
	}
}

// NewWithAttractors returns an empty field with a caller-supplied
// attractor set; the strength budget is the sum of the given strengths.
func NewWithAttractors(attractors []Attractor) Field {
	f := New()
	f.Attractors = append([]Attractor(nil), attractors...)
	f.Budget = 0
	for _, a := range attractors {
		f.Budget += a.Strength
	}
	return f
}

// Attractor returns the named attractor and whether it exists.
func (f Field) Attractor(name AttractorName) (Attractor, bool) {
	for _, a := range f.Attractors {
		if a.Name == name {
			return a, true
		}
	}
	return Attractor{}, false
}

// WithWave returns a copy of f with w added to the in-flight list.
func (f Field) WithWave(w Wave) Field {
	waves := make([]Wave, len(f.Waves), len(f.Waves)+1)
	copy(waves, f.Waves)
	f.Waves = append(waves, w)
	return f
}

// WithoutWave returns a copy of f with the identified wave removed from
// the in-flight list. Removing an absent wave is a no-op.
func (f Field) WithoutWave(id string) Field {
	waves := make([]Wave, 0, len(f.Waves))
	for _, w := range f.Waves {
		if w.ID != id {
			waves = append(waves, w)
		}
	}
	f.Waves = waves
	return f
}

// NewLandmark builds the permanent record of a crystallized wave.
func NewLandmark(w Wave, at time.Time) Landmark {
	return Landmark{
		ID:        uuid.NewString(),
		WaveID:    w.ID,
		Start:     w.Start,
		End:       w.Pos,
		Mass:      w.Mass,
		CreatedAt: at,
	}
}

// WithLandmark returns a copy of f with lm appended, density recomputed
// from the extended landmark list, and the phase reclassified. This is
// the only path by which density grows.
func (f Field) WithLandmark(lm Landmark, at time.Time) Field {
	landmarks := make([]Landmark, len(f.Landmarks), len(f.Landmarks)+1)
	copy(landmarks, f.Landmarks)
	f.Landmarks = append(landmarks, lm)
	f.Density = densityOf(f.Landmarks)
	f.Phase = Classify(f.Density)
	f.Timestamp = at
	return f
}

// densityOf computes min(1, Σ landmark mass / DensityScale).
func densityOf(landmarks []Landmark) float64 {
	sum := 0.0
	for _, lm := range landmarks {
		sum += lm.Mass
	}
	d := sum / DensityScale
	if d > 1 {
		d = 1
	}
	return d
}

// ResetDensity is the one sanctioned break of density monotonicity: it
// zeroes density (and reclassifies) without touching the landmark list.
func (f Field) ResetDensity() Field {
	f.Density = 0
	f.Phase = Classify(0)
	return f
}

// UseLandmark returns a copy of f with the identified landmark's usage
// counter incremented, and whether the landmark exists. The counter is
// the single mutable aspect a landmark has.
func (f Field) UseLandmark(id string) (Field, bool) {
	for i, lm := range f.Landmarks {
		if lm.ID == id {
			landmarks := make([]Landmark, len(f.Landmarks))
			copy(landmarks, f.Landmarks)
			landmarks[i].Uses++
			f.Landmarks = landmarks
			return f, true
		}
	}
	return f, false
}

// Metrics returns the field's aggregate numbers as one read-only value.
func (f Field) Metrics() Metrics {
	return Metrics{
		Density:   f.Density,
		Phase:     f.Phase,
		Landmarks: len(f.Landmarks),
		Waves:     len(f.Waves),
	}
}

// Snapshot returns a deep copy of f: every nested slice (including wave
// histories) is independent of the receiver's.
func (f Field) Snapshot() Field {
	out := f
	out.Attractors = append([]Attractor(nil), f.Attractors...)
	out.Landmarks = append([]Landmark(nil), f.Landmarks...)
	out.Waves = make([]Wave, len(f.Waves))
	for i, w := range f.Waves {
		out.Waves[i] = w
		out.Waves[i].History = w.CloneHistory()
	}
	return out
}
