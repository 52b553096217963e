package phase

import (
	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/vecmath"
)

// OrderParameter returns the fraction of landmark pairs whose end
// positions lie within tolerance of each other. With fewer than two
// landmarks there are no pairs and the order parameter is 0.
//
// Time:   O(n²) in landmark count.
// Memory: O(1).
func OrderParameter(landmarks []field.Landmark, tolerance float64) float64 {
	n := len(landmarks)
	if n < 2 {
		return 0
	}
	near, pairs := 0, 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs++
			if vecmath.Distance(landmarks[i].End, landmarks[j].End) <= tolerance {
				near++
			}
		}
	}
	return float64(near) / float64(pairs)
}

// ProximityComponents groups landmark indices into connected components
// of the pairwise proximity relation: two landmarks join a component
// when their end positions lie within tolerance. Components are emitted
// in order of their lowest landmark index; singleton landmarks form
// singleton components.
//
// This is the cluster structure behind the OrderParameter scalar; like
// it, a read-only diagnostic.
//
// Time:   O(n²), Memory: O(n).
func ProximityComponents(landmarks []field.Landmark, tolerance float64) [][]int {
	n := len(landmarks)
	seen := make([]bool, n)
	var comps [][]int

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect the component around i0.
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v := 0; v < n; v++ {
				if seen[v] || vecmath.Distance(landmarks[u].End, landmarks[v].End) > tolerance {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
