package fixpoint_test

import (
	"testing"

	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/fixpoint"
	"github.com/katalvlaran/fieldwave/harvest"
	"github.com/katalvlaran/fieldwave/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fieldWithLandmarks harvests n default seeds into an empty field.
func fieldWithLandmarks(t *testing.T, n int) field.Field {
	t.Helper()
	f := field.New()
	for i := 0; i < n; i++ {
		res := harvest.Harvest(field.NewSeed("setup"), f, nil)
		require.True(t, res.Crystallized())
		f = res.Field
	}
	return f
}

// TestDistance pins the weighted metric: 0.7 on mass, 0.3 on position.
func TestDistance(t *testing.T) {
	before := field.Wave{Pos: vecmath.Position{A: 0, B: 0}, Mass: 0.2}
	after := field.Wave{Pos: vecmath.Position{A: 3, B: 4}, Mass: 0.6}

	// 0.7·|0.2-0.6| + 0.3·5 = 0.28 + 1.5
	assert.InDelta(t, 1.78, fixpoint.Distance(before, after), 1e-12)
	assert.Equal(t, fixpoint.Distance(before, after), fixpoint.Distance(after, before), "the metric is symmetric")
	assert.Equal(t, 0.0, fixpoint.Distance(before, before))
}

// TestIsFixpoint_SeedIsNot: a raw seed moves enormously under one
// harvest and cannot be a fixpoint.
func TestIsFixpoint_SeedIsNot(t *testing.T) {
	assert.False(t, fixpoint.IsFixpoint(field.NewSeed("test"), field.New(), 0))
}

// TestIsFixpoint_CrystallizedIs: a crystallized wave re-harvests into
// nearly the same state.
func TestIsFixpoint_CrystallizedIs(t *testing.T) {
	res := harvest.Harvest(field.NewSeed("test"), field.New(), nil)
	require.True(t, res.Crystallized())

	assert.True(t, fixpoint.IsFixpoint(res.Wave, res.Field, 0))
}

// TestIdempotenceAfterCrystallization is the §two-harvest stability law:
// once a wave carries mass ≥ 0.7, two successive harvests land within
// the default epsilon of each other.
func TestIdempotenceAfterCrystallization(t *testing.T) {
	first := harvest.Harvest(field.NewSeed("test"), field.New(), nil)
	require.True(t, first.Crystallized())
	require.GreaterOrEqual(t, first.Wave.Mass, harvest.DefaultCrystalMass)

	second := harvest.Harvest(first.Wave, first.Field, nil)

	assert.Less(t, fixpoint.Distance(first.Wave, second.Wave), fixpoint.DefaultEpsilon)
}

// TestConverge_CanonicalRun is the §convergence law: from mass 0.4 at
// (0.5, 0.5) against a field with two landmarks, the recorded masses
// are non-decreasing until they reach the crystal mass or the bound.
func TestConverge_CanonicalRun(t *testing.T) {
	f := fieldWithLandmarks(t, 2)
	seed := field.NewSeedAt("test", vecmath.Position{A: 0.5, B: 0.5}).WithMass(0.4)

	conv := fixpoint.Converge(seed, f, nil)

	require.NotEmpty(t, conv.Steps)
	assert.True(t, conv.Converged, "the canonical run settles within the bound")
	assert.LessOrEqual(t, len(conv.Steps), fixpoint.DefaultMaxIterations)

	prev := 0.0
	for i, step := range conv.Steps {
		assert.GreaterOrEqual(t, step.Mass, prev, "mass must not decrease at step %d", i)
		prev = step.Mass
		if step.Mass >= harvest.DefaultCrystalMass {
			break
		}
	}
	assert.GreaterOrEqual(t, conv.Steps[len(conv.Steps)-1].Mass, harvest.DefaultCrystalMass)
}

// TestConverge_StopsEarly verifies the loop stops the moment a delta
// falls under epsilon rather than exhausting the bound.
func TestConverge_StopsEarly(t *testing.T) {
	conv := fixpoint.Converge(field.NewSeed("test"), field.New(), nil)

	require.True(t, conv.Converged)
	assert.Less(t, len(conv.Steps), fixpoint.DefaultMaxIterations)
	last := conv.Steps[len(conv.Steps)-1]
	assert.Less(t, last.Delta, fixpoint.DefaultEpsilon)
}

// TestConverge_BoundRespected: one iteration only, no convergence claim.
func TestConverge_BoundRespected(t *testing.T) {
	opts := fixpoint.DefaultOptions()
	opts.MaxIterations = 1

	conv := fixpoint.Converge(field.NewSeed("test"), field.New(), &opts)

	assert.Len(t, conv.Steps, 1)
	assert.False(t, conv.Converged, "a seed cannot settle in one harvest")
}

// TestConverge_FieldAccumulates verifies the field evolves through the
// run: every crystallizing iteration leaves its landmark.
func TestConverge_FieldAccumulates(t *testing.T) {
	conv := fixpoint.Converge(field.NewSeed("test"), field.New(), nil)

	assert.Equal(t, len(conv.Steps), len(conv.Field.Landmarks),
		"each recorded harvest of this run crystallizes and leaves one landmark")
}
