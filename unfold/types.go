package unfold

import (
	"time"

	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/vecmath"
)

// ActivationThreshold is the minimum attractor strength required to
// emit an event. Attractors below it are dormant sources.
const ActivationThreshold = 0.5

// pullFactor is the fraction of the remaining distance an event pulls
// the probe toward its attractor, before strength weighting.
const pullFactor = 0.5

// Event is one discrete emission from an attractor.
type Event struct {
	// Attractor names the emitting source.
	Attractor field.AttractorName

	// Strength is the derived event strength: the attractor's own
	// strength scaled by how dense the field was at emission time.
	Strength float64

	// Source is a stable label for the emitting source, of the form
	// "attractor/<name>".
	Source string

	// At is the probe position recorded for this event.
	At vecmath.Position
}

// Options tunes unfolding. The zero value is usable; Unfold, Stream
// and Combined accept nil to mean defaults.
type Options struct {
	// Threshold is the minimum attractor strength for emission.
	// Zero or negative means ActivationThreshold.
	Threshold float64

	// Clock stamps successor fields. Nil means time.Now.
	Clock func() time.Time
}

// DefaultOptions returns the canonical unfold settings.
func DefaultOptions() Options {
	return Options{Threshold: ActivationThreshold, Clock: time.Now}
}

// normalized fills zero fields with defaults.
func (o *Options) normalized() Options {
	out := DefaultOptions()
	if o == nil {
		return out
	}
	if o.Threshold > 0 {
		out.Threshold = o.Threshold
	}
	if o.Clock != nil {
		out.Clock = o.Clock
	}
	return out
}
