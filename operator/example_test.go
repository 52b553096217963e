// File: operator/example_test.go
package operator_test

import (
	"fmt"

	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/operator"
	"github.com/katalvlaran/fieldwave/vecmath"
)

// ExampleThen demonstrates ⊕ sequencing: the deconstruction phase first
// contracts a wave toward the origin, then decays the recomputed mass.
func ExampleThen() {
	f := field.New()
	w := field.NewSeedAt("demo", vecmath.Position{A: 1, B: 2})

	out := operator.Then(operator.Decompose(), operator.Forget()).Apply(w, f)

	fmt.Printf("position: (%.2f, %.2f)\n", out.Pos.A, out.Pos.B)
	fmt.Printf("mass:     %.4f\n", out.Mass)
	fmt.Printf("traced:   %s\n", out.History[0].Operator)

	// Output:
	// position: (0.90, 1.80)
	// mass:     0.5805
	// traced:   decompose⊕forget
}

// ExampleClassify demonstrates the property → hierarchy decision table.
func ExampleClassify() {
	fmt.Println(operator.Classify(operator.Properties{}))
	fmt.Println(operator.Classify(operator.Properties{Associative: true, HasIdentity: true}))
	fmt.Println(operator.Classify(operator.Properties{
		Associative: true, HasIdentity: true, HasInverse: true, Commutative: true,
	}))

	// Output:
	// Magma
	// Monoid
	// AbelianGroup
}

// ExamplePair demonstrates composing two fold functions of different
// accumulator types into one paired fold.
func ExamplePair() {
	zero, one := 0.0, 1.0
	sum := operator.Accumulator[float64]{
		Name: "sum", Fold: func(a, b float64) float64 { return a + b }, Identity: &zero,
		Props: operator.Properties{Associative: true, Commutative: true, HasIdentity: true},
	}
	product := operator.Accumulator[float64]{
		Name: "product", Fold: func(a, b float64) float64 { return a * b }, Identity: &one,
		Props: operator.Properties{Associative: true, Commutative: true, HasIdentity: true},
	}

	paired, ok := operator.Pair(sum, product)
	got := paired.Fold(
		operator.Tuple[float64, float64]{First: 2, Second: 3},
		operator.Tuple[float64, float64]{First: 4, Second: 5},
	)
	fmt.Println(ok, got.First, got.Second, paired.Classify())

	// Output:
	// true 6 15 CommutativeMonoid
}
