package unfold_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/unfold"
	"github.com/katalvlaran/fieldwave/vecmath"
)

var pinned = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func pinnedOpts() *unfold.Options {
	return &unfold.Options{Clock: func() time.Time { return pinned }}
}

func attractorNamed(t *testing.T, f field.Field, name field.AttractorName) field.Attractor {
	t.Helper()
	for _, a := range f.Attractors {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("attractor %q not found", name)
	return field.Attractor{}
}

// TestUnfold_DormantAttractor: below the activation threshold nothing
// is emitted and the field comes back untouched.
func TestUnfold_DormantAttractor(t *testing.T) {
	f := field.New()
	horizon := attractorNamed(t, f, field.Horizon) // strength 0.4

	ev, next, ok := unfold.Unfold(horizon, f, vecmath.Position{}, pinnedOpts())

	assert.False(t, ok, "strength 0.4 is below the 0.5 activation threshold")
	assert.Equal(t, unfold.Event{}, ev, "absence must carry the zero event")
	assert.Equal(t, f.Timestamp, next.Timestamp, "a dormant unfold must not advance time")
}

// TestUnfold_EmitsEvent: an active attractor emits one tagged event and
// a successor field with an advanced timestamp.
func TestUnfold_EmitsEvent(t *testing.T) {
	f := field.New()
	meridian := attractorNamed(t, f, field.Meridian) // strength 0.6 at (2,2)
	before := f.Timestamp

	ev, next, ok := unfold.Unfold(meridian, f, vecmath.Position{}, pinnedOpts())

	require.True(t, ok)
	assert.Equal(t, field.Meridian, ev.Attractor)
	assert.Equal(t, "attractor/meridian", ev.Source)
	// Empty field: derived strength is 0.6*(1+0)/2 = 0.3.
	assert.InDelta(t, 0.3, ev.Strength, 1e-12)
	// Half-step weighted by strength: 0 + 0.3*0.5*(2-0) = 0.3 per axis.
	assert.InDelta(t, 0.3, ev.At.A, 1e-12)
	assert.InDelta(t, 0.3, ev.At.B, 1e-12)
	assert.Equal(t, pinned, next.Timestamp, "successor must be stamped by the clock")
	assert.Equal(t, before, f.Timestamp, "input field must be untouched")
}

// TestUnfold_DensityAmplifies: a saturated field passes the attractor
// strength through undamped.
func TestUnfold_DensityAmplifies(t *testing.T) {
	f := field.New()
	f.Density = 1
	origin := attractorNamed(t, f, field.OriginWell) // strength 0.8

	ev, _, ok := unfold.Unfold(origin, f, vecmath.Position{A: 1, B: 1}, pinnedOpts())

	require.True(t, ok)
	assert.InDelta(t, 0.8, ev.Strength, 1e-12, "density 1 means (1+1)/2 = full strength")
}

// TestUnfold_CustomThreshold: lowering the threshold wakes a weak
// attractor.
func TestUnfold_CustomThreshold(t *testing.T) {
	f := field.New()
	horizon := attractorNamed(t, f, field.Horizon) // strength 0.4

	opts := pinnedOpts()
	opts.Threshold = 0.3
	_, _, ok := unfold.Unfold(horizon, f, vecmath.Position{}, opts)

	assert.True(t, ok, "0.4 clears a lowered threshold of 0.3")
}

// TestStream_ThreadsProbe: each event starts from the previous one's
// position, so the stream marches toward the attractor.
func TestStream_ThreadsProbe(t *testing.T) {
	f := field.New()
	meridian := attractorNamed(t, f, field.Meridian)

	events, last := unfold.Stream(meridian, f, vecmath.Position{}, 3, pinnedOpts())

	require.Len(t, events, 3, "an active attractor fills the whole budget")
	assert.InDelta(t, 0.3, events[0].At.A, 1e-12)
	assert.InDelta(t, 0.555, events[1].At.A, 1e-12)
	assert.InDelta(t, 0.77175, events[2].At.A, 1e-12)
	for i := 1; i < len(events); i++ {
		prev := vecmath.Distance(events[i-1].At, meridian.Pos)
		cur := vecmath.Distance(events[i].At, meridian.Pos)
		assert.Less(t, cur, prev, "event %d must move the probe closer", i)
	}
	assert.Equal(t, pinned, last.Timestamp)
}

// TestStream_DormantEmpty: a dormant attractor yields no events and the
// input field back.
func TestStream_DormantEmpty(t *testing.T) {
	f := field.New()
	zenith := attractorNamed(t, f, field.Zenith) // strength 0.2

	events, last := unfold.Stream(zenith, f, vecmath.Position{}, 5, pinnedOpts())

	assert.Empty(t, events)
	assert.Equal(t, f.Timestamp, last.Timestamp)
}

// TestCombined: one stream per attractor, active ones full, dormant
// ones empty, all names present.
func TestCombined(t *testing.T) {
	f := field.New()

	streams := unfold.Combined(f, vecmath.Position{}, 2, pinnedOpts())

	require.Len(t, streams, 4, "every attractor gets an entry")
	assert.Len(t, streams[field.OriginWell], 2)
	assert.Len(t, streams[field.Meridian], 2)
	assert.Empty(t, streams[field.Horizon])
	assert.Empty(t, streams[field.Zenith])
}

// TestMovesToward: true only for streams that actually closed distance.
func TestMovesToward(t *testing.T) {
	f := field.New()
	meridian := attractorNamed(t, f, field.Meridian)
	origin := attractorNamed(t, f, field.OriginWell)

	toward, _ := unfold.Stream(meridian, f, vecmath.Position{}, 3, pinnedOpts())
	assert.True(t, unfold.MovesToward(meridian, toward))

	// A probe already sitting on the attractor never gets closer.
	parked, _ := unfold.Stream(origin, f, origin.Pos, 3, pinnedOpts())
	require.Len(t, parked, 3)
	assert.False(t, unfold.MovesToward(origin, parked))

	assert.False(t, unfold.MovesToward(meridian, toward[:1]), "one event is not movement")
	assert.False(t, unfold.MovesToward(meridian, nil))
}
