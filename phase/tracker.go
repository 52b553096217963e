package phase

import "github.com/katalvlaran/fieldwave/field"

// Record samples f — density, phase label, order parameter over its
// landmarks — and appends the observation to the tracker's series. The
// recorded sample is returned for convenience.
func (t *Tracker) Record(f field.Field) Sample {
	s := Sample{
		Density: f.Density,
		Phase:   f.Phase,
		Order:   OrderParameter(f.Landmarks, t.tolerance),
		At:      t.clock(),
	}
	t.samples = append(t.samples, s)
	return s
}

// Samples returns a copy of the recorded series in recording order.
func (t *Tracker) Samples() []Sample {
	out := make([]Sample, len(t.samples))
	copy(out, t.samples)
	return out
}

// Len returns the number of recorded samples.
func (t *Tracker) Len() int { return len(t.samples) }

// Transitions scans the recorded series and returns one entry per pair
// of consecutive samples whose phase labels differ, carrying the
// density and order parameter observed at the crossing.
func (t *Tracker) Transitions() []Transition {
	return transitionsOf(t.samples)
}

// transitionsOf is the shared scan used by the tracker and the
// hysteresis detector.
func transitionsOf(samples []Sample) []Transition {
	var out []Transition
	for i := 1; i < len(samples); i++ {
		if samples[i].Phase == samples[i-1].Phase {
			continue
		}
		out = append(out, Transition{
			From:    samples[i-1].Phase,
			To:      samples[i].Phase,
			Density: samples[i].Density,
			Order:   samples[i].Order,
			At:      samples[i].At,
		})
	}
	return out
}

// SampleDensities builds a bare sample series from a density sweep,
// classifying each density on the way. Order parameters and timestamps
// are zero; the series is meant for transition and hysteresis analysis
// of synthetic sweeps.
func SampleDensities(densities []float64) []Sample {
	out := make([]Sample, len(densities))
	for i, d := range densities {
		out[i] = Sample{Density: d, Phase: field.Classify(d)}
	}
	return out
}
