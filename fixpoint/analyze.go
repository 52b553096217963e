package fixpoint

import (
	"math"

	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/harvest"
)

// reconstruct rebuilds the wave state a landmark crystallized from, so
// the audit can re-run the orchestrator against it.
func reconstruct(lm field.Landmark) field.Wave {
	return field.Wave{
		ID:     lm.WaveID,
		Start:  lm.Start,
		Pos:    lm.End,
		Mass:   lm.Mass,
		Status: field.Crystallized,
	}
}

// AnalyzePopulation audits every landmark of f: it counts the
// crystallized set (mass ≥ the harvest crystal-mass threshold) and the
// fixpoint set (stable under one more harvest at the default epsilon),
// reports their overlap as a Jaccard ratio with the disagreeing wave
// IDs listed explicitly, and computes the Pearson correlation between
// landmark mass and fixpoint distance across the population.
//
// Time: O(n) harvests plus O(n) bookkeeping, n = landmark count.
func AnalyzePopulation(f field.Field) Analysis {
	a := Analysis{Population: len(f.Landmarks)}

	masses := make([]float64, 0, len(f.Landmarks))
	distances := make([]float64, 0, len(f.Landmarks))
	both, either := 0, 0

	for _, lm := range f.Landmarks {
		w := reconstruct(lm)
		res := harvest.Harvest(w, f, nil)
		dist := Distance(w, res.Wave)

		crystallized := lm.Mass >= harvest.DefaultCrystalMass
		stable := dist < DefaultEpsilon

		if crystallized {
			a.CrystallizedCount++
		}
		if stable {
			a.FixpointCount++
		}
		switch {
		case crystallized && stable:
			both++
			either++
		case crystallized || stable:
			either++
			a.Counterexamples = append(a.Counterexamples, lm.WaveID)
		}

		masses = append(masses, lm.Mass)
		distances = append(distances, dist)
	}

	if either == 0 {
		// Both sets empty: vacuous agreement.
		a.Overlap = 1
	} else {
		a.Overlap = float64(both) / float64(either)
	}
	a.MassDistanceCorrelation = pearson(masses, distances)
	return a
}

// pearson computes the Pearson correlation coefficient of two equal-
// length series. A series without variance has no defined correlation;
// 0 is returned for that degenerate case.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/float64(n), sumY/float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// TrajectoryDistance aligns two convergence mass trajectories and
// returns their minimal alignment cost: a dynamic-programming warp over
// |massA - massB| step costs, so runs of different lengths remain
// comparable. Returns ok=false when either trajectory is empty.
//
// Time: O(n·m). Memory: O(min over two rolling rows) = O(m).
func TrajectoryDistance(a, b []Step) (float64, bool) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, false
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			cost := math.Abs(a[i-1].Mass - b[j-1].Mass)
			curr[j] = cost + math.Min(prev[j-1], math.Min(prev[j], curr[j-1]))
		}
		prev, curr = curr, prev
	}
	return prev[m], true
}
