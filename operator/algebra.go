package operator

// Classify assigns a Properties record its rung in the fixed algebraic
// hierarchy. The decision table is total: every combination of the five
// booleans lands on exactly one class.
//
//	!associative                      → Magma
//	associative, !has-identity        → Semigroup
//	…, has-inverse, commutative       → AbelianGroup
//	…, has-inverse                    → Group
//	…, commutative, idempotent        → IdempotentCommutativeMonoid
//	…, commutative                    → CommutativeMonoid
//	otherwise                         → Monoid
func Classify(p Properties) Class {
	if !p.Associative {
		return Magma
	}
	if !p.HasIdentity {
		return Semigroup
	}
	if p.HasInverse {
		if p.Commutative {
			return AbelianGroup
		}
		return Group
	}
	if p.Commutative {
		if p.Idempotent {
			return IdempotentCommutativeMonoid
		}
		return CommutativeMonoid
	}
	return Monoid
}

// Accumulator is a named fold-style binary function over T with an
// explicitly declared identity element and property metadata. A nil
// Identity means "no identity element declared", which blocks pairing.
type Accumulator[T any] struct {
	Name     string
	Fold     func(T, T) T
	Identity *T
	Props    Properties
}

// Classify returns the accumulator's rung in the algebraic hierarchy.
func (a Accumulator[T]) Classify() Class { return Classify(a.Props) }

// Tuple pairs two accumulator values of independent types.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair composes two accumulators into one over Tuple[A, B], folding
// component-wise. The paired identity is the tuple of the operands'
// identities, so composition is refused (ok=false, zero accumulator)
// whenever either operand lacks a declared identity element — "not
// composable" is an explicit absence, not an error.
//
// The paired declaration is component-wise AND for associativity,
// commutativity, idempotence and invertibility; HasIdentity is true by
// construction.
func Pair[A, B any](x Accumulator[A], y Accumulator[B]) (Accumulator[Tuple[A, B]], bool) {
	if x.Identity == nil || y.Identity == nil {
		return Accumulator[Tuple[A, B]]{}, false
	}
	id := Tuple[A, B]{First: *x.Identity, Second: *y.Identity}
	return Accumulator[Tuple[A, B]]{
		Name: x.Name + "⊗" + y.Name,
		Fold: func(p, q Tuple[A, B]) Tuple[A, B] {
			return Tuple[A, B]{
				First:  x.Fold(p.First, q.First),
				Second: y.Fold(p.Second, q.Second),
			}
		},
		Identity: &id,
		Props: Properties{
			Associative: x.Props.Associative && y.Props.Associative,
			Commutative: x.Props.Commutative && y.Props.Commutative,
			Idempotent:  x.Props.Idempotent && y.Props.Idempotent,
			HasIdentity: true,
			HasInverse:  x.Props.HasInverse && y.Props.HasInverse,
		},
	}, true
}
