package approxkit

import (
	"math"
	"unsafe"
)

// AbsComparable is the absolute-difference comparison capability.
//
// Types implementing this interface define what absolute deviation is
// acceptable between two of their values, expressed in their own
// tolerance type E. For plain floats E is the float type itself;
// composite types inherit E from the type they contain.
//
// Implementations must be pure: deterministic for fixed inputs and free
// of operand mutation.
type AbsComparable[T, E any] interface {
	// DefaultEpsilon returns the type's standard absolute tolerance,
	// used when the caller has no better one.
	DefaultEpsilon() E
	// AbsDiffEq reports whether the receiver and other are equal within
	// the given absolute tolerance.
	AbsDiffEq(other T, epsilon E) bool
}

// DefaultEpsilon returns the machine epsilon of F: the distance between
// 1.0 and the next representable value at F's width.
func DefaultEpsilon[F Float]() F {
	var zero F
	if unsafe.Sizeof(zero) == 4 {
		return F(math.Nextafter32(1, 2) - 1)
	}
	return F(math.Nextafter(1, 2) - 1)
}

// AbsDiffEq reports whether |a-b| is within the given absolute tolerance.
func AbsDiffEq[F Float](a, b, epsilon F) bool {
	return abs(a-b) <= epsilon
}

// AbsDiffNe is the strict negation of AbsDiffEq.
func AbsDiffNe[F Float](a, b, epsilon F) bool {
	return !AbsDiffEq(a, b, epsilon)
}

// AbsDiffNeOf is the strict negation of T's AbsDiffEq.
//
// It is the only negation entry point for AbsComparable types,
// which keeps eq and ne consistent by construction.
func AbsDiffNeOf[T AbsComparable[T, E], E any](a, b T, epsilon E) bool {
	return !a.AbsDiffEq(b, epsilon)
}

func abs[F Float](v F) F {
	if v < 0 {
		return -v
	}
	return v
}
