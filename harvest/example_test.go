// File: harvest/example_test.go
package harvest_test

import (
	"fmt"

	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/harvest"
)

// ExampleHarvest walks the canonical lifecycle: a fresh seed against an
// empty field collapses into the bridge, re-expands along the reference
// line, and crystallizes into the field's first landmark.
func ExampleHarvest() {
	f := field.New()
	seed := field.NewSeed("demo")

	res := harvest.Harvest(seed, f, nil)

	fmt.Println("status:   ", res.Wave.Status)
	fmt.Println("landmarks:", len(res.Field.Landmarks))
	fmt.Printf("mass:      %.2f (was %.2f)\n", res.Wave.Mass, seed.Mass)

	// Output:
	// status:    Crystallized
	// landmarks: 1
	// mass:      1.00 (was 0.10)
}
