// File: vecmath/example_test.go
package vecmath_test

import (
	"fmt"

	"github.com/katalvlaran/fieldwave/vecmath"
)

// ExampleMass demonstrates the coherence formula: a position on the
// diagonal reference line has full mass 1, and mass decays smoothly as
// the position drifts off the diagonal.
func ExampleMass() {
	onLine := vecmath.Position{A: 2, B: 2}
	offLine := vecmath.Position{A: 0, B: 2}

	fmt.Printf("on the line:  %.4f\n", vecmath.Mass(onLine))
	fmt.Printf("off the line: %.4f\n", vecmath.Mass(offLine))

	// Output:
	// on the line:  1.0000
	// off the line: 0.4142
}
