package approxkit

import "math"

// RelativeComparable is the relative-difference comparison capability.
//
// It refines AbsComparable rather than replacing it: the relative
// comparison falls back to the absolute comparison for values close to
// zero, so every type providing the relative contract must provide the
// absolute one as well, with the same tolerance type E.
type RelativeComparable[T, E any] interface {
	AbsComparable[T, E]
	// DefaultMaxRelative returns the type's standard relative tolerance,
	// used when the caller has no better one.
	DefaultMaxRelative() E
	// RelativeEq reports whether the receiver and other are equal,
	// using epsilon as the absolute tolerance for values near zero and
	// maxRelative as the relative tolerance for values that are far apart.
	RelativeEq(other T, epsilon, maxRelative E) bool
}

// DefaultMaxRelative returns the machine epsilon of F,
// the smallest relative increment representable at magnitude 1.0.
func DefaultMaxRelative[F Float]() F {
	return DefaultEpsilon[F]()
}

// RelativeEq reports whether a and b are approximately equal,
// blending an absolute and a relative tolerance.
//
// The comparison is evaluated in this order:
//
//  1. a == b under native equality, which makes +0 equal -0 and each
//     infinity equal itself, while NaN can never pass;
//  2. any remaining infinite operand is unequal to everything else;
//  3. |a-b| <= epsilon, the absolute fast path for values near zero;
//  4. |a-b| <= max(|a|,|b|) * maxRelative.
//
// All arithmetic happens at the width of F.
//
// Implementation based on: Comparing Floating Point Numbers, 2012 Edition
// (https://randomascii.wordpress.com/2012/02/25/comparing-floating-point-numbers-2012-edition/)
func RelativeEq[F Float](a, b, epsilon, maxRelative F) bool {
	if a == b {
		return true
	}
	if isInf(a) || isInf(b) {
		return false
	}
	absDiff := abs(a - b)
	if absDiff <= epsilon {
		return true
	}
	absA, absB := abs(a), abs(b)
	largest := absA
	if absA < absB {
		largest = absB
	}
	return absDiff <= largest*maxRelative
}

// RelativeNe is the strict negation of RelativeEq.
func RelativeNe[F Float](a, b, epsilon, maxRelative F) bool {
	return !RelativeEq(a, b, epsilon, maxRelative)
}

// RelativeNeOf is the strict negation of T's RelativeEq.
//
// It is the only negation entry point for RelativeComparable types,
// which keeps eq and ne consistent by construction.
func RelativeNeOf[T RelativeComparable[T, E], E any](a, b T, epsilon, maxRelative E) bool {
	return !a.RelativeEq(b, epsilon, maxRelative)
}

// a finite float32 stays finite when widened, so the check is width safe
func isInf[F Float](v F) bool {
	return math.IsInf(float64(v), 0)
}
