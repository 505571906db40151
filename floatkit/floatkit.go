// Package floatkit provides float wrapper types that take part in the
// approxkit comparison contracts.
//
// NotNaN guarantees the wrapped float is never the not-a-number sentinel,
// Ordered imposes a total order on floats so they can serve as keys in
// ordered containers. Both implement approxkit.RelativeComparable
// against their own type, and additionally support the narrow
// heterogeneous comparison against the raw primitive they wrap.
package floatkit

import (
	"go.llib.dev/approxkit"
	"go.llib.dev/approxkit/internal/constant"
)

// ErrNaN is returned when a NotNaN would be created from a NaN value.
const ErrNaN constant.Error = "floatkit: NaN is not an accepted value"

var (
	_ approxkit.RelativeComparable[NotNaN[float64], float64]  = NotNaN[float64]{}
	_ approxkit.RelativeComparable[Ordered[float32], float32] = Ordered[float32]{}
)

// NotNaN is a float wrapper whose contained value is guaranteed to
// never be NaN.
type NotNaN[F approxkit.Float] struct{ v F }

// MakeNotNaN wraps the given value, or returns ErrNaN if it is NaN.
func MakeNotNaN[F approxkit.Float](v F) (NotNaN[F], error) {
	if isNaN(v) {
		return NotNaN[F]{}, ErrNaN
	}
	return NotNaN[F]{v: v}, nil
}

// MustNotNaN wraps the given value and panics with ErrNaN if it is NaN.
func MustNotNaN[F approxkit.Float](v F) NotNaN[F] {
	n, err := MakeNotNaN(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Get returns the wrapped value.
func (n NotNaN[F]) Get() F { return n.v }

// DefaultEpsilon returns the wrapped type's default absolute tolerance.
func (n NotNaN[F]) DefaultEpsilon() F { return approxkit.DefaultEpsilon[F]() }

// AbsDiffEq forwards the absolute comparison to the wrapped values.
func (n NotNaN[F]) AbsDiffEq(other NotNaN[F], epsilon F) bool {
	return approxkit.AbsDiffEq(n.v, other.v, epsilon)
}

// DefaultMaxRelative returns the wrapped type's default relative tolerance.
func (n NotNaN[F]) DefaultMaxRelative() F { return approxkit.DefaultMaxRelative[F]() }

// RelativeEq forwards the relative comparison to the wrapped values.
func (n NotNaN[F]) RelativeEq(other NotNaN[F], epsilon, maxRelative F) bool {
	return approxkit.RelativeEq(n.v, other.v, epsilon, maxRelative)
}

// AbsDiffEqFloat compares the wrapper against a raw primitive without
// wrapping the other side. The comparison is symmetric in its operands,
// so it covers both the wrapper-first and the primitive-first call site.
func (n NotNaN[F]) AbsDiffEqFloat(raw F, epsilon F) bool {
	return approxkit.AbsDiffEq(n.v, raw, epsilon)
}

// RelativeEqFloat compares the wrapper against a raw primitive without
// wrapping the other side. The comparison is symmetric in its operands,
// so it covers both the wrapper-first and the primitive-first call site.
func (n NotNaN[F]) RelativeEqFloat(raw F, epsilon, maxRelative F) bool {
	return approxkit.RelativeEq(n.v, raw, epsilon, maxRelative)
}

// Ordered is a float wrapper with a total order:
// NaN sorts after every number and is equal to itself.
type Ordered[F approxkit.Float] struct{ v F }

// OrderedOf wraps the given value. Any float is accepted, including NaN.
func OrderedOf[F approxkit.Float](v F) Ordered[F] {
	return Ordered[F]{v: v}
}

// Get returns the wrapped value.
func (o Ordered[F]) Get() F { return o.v }

// Compare returns -1, 0 or +1 depending on how the receiver orders
// against other. Unlike the native float order, this one is total:
// NaN placements compare equal to each other and greater than everything
// else, and -0 compares equal to +0.
func (o Ordered[F]) Compare(other Ordered[F]) int {
	a, b := o.v, other.v
	switch {
	case isNaN(a) && isNaN(b):
		return 0
	case isNaN(a):
		return 1
	case isNaN(b):
		return -1
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

// DefaultEpsilon returns the wrapped type's default absolute tolerance.
func (o Ordered[F]) DefaultEpsilon() F { return approxkit.DefaultEpsilon[F]() }

// AbsDiffEq forwards the absolute comparison to the wrapped values.
func (o Ordered[F]) AbsDiffEq(other Ordered[F], epsilon F) bool {
	return approxkit.AbsDiffEq(o.v, other.v, epsilon)
}

// DefaultMaxRelative returns the wrapped type's default relative tolerance.
func (o Ordered[F]) DefaultMaxRelative() F { return approxkit.DefaultMaxRelative[F]() }

// RelativeEq forwards the relative comparison to the wrapped values.
// The approximate comparison keeps the primitive float semantics,
// a NaN carrying Ordered is unequal even to itself.
func (o Ordered[F]) RelativeEq(other Ordered[F], epsilon, maxRelative F) bool {
	return approxkit.RelativeEq(o.v, other.v, epsilon, maxRelative)
}

// AbsDiffEqFloat compares the wrapper against a raw primitive without
// wrapping the other side.
func (o Ordered[F]) AbsDiffEqFloat(raw F, epsilon F) bool {
	return approxkit.AbsDiffEq(o.v, raw, epsilon)
}

// RelativeEqFloat compares the wrapper against a raw primitive without
// wrapping the other side.
func (o Ordered[F]) RelativeEqFloat(raw F, epsilon, maxRelative F) bool {
	return approxkit.RelativeEq(o.v, raw, epsilon, maxRelative)
}

func isNaN[F approxkit.Float](v F) bool { return v != v }
