// Package approxkit provides approximate equality comparisons for
// floating-point values and for values derived from them.
//
// Exact equality is unreliable for values produced by numeric computation,
// as rounding makes mathematically equal expressions yield slightly
// different bit patterns. approxkit expresses "close enough" as a contract:
// an absolute-difference comparison (AbsComparable) for values near zero,
// refined by a relative-difference comparison (RelativeComparable) for
// values that are far apart.
//
// The package-level functions implement both contracts for the native
// float types, while the role interfaces let any type participate in the
// same comparisons. The composition helpers derive the contracts for
// slices, pointers and complex numbers; the cellkit and floatkit
// subpackages do the same for mutable cells and float wrapper types.
package approxkit

import "golang.org/x/exp/constraints"

type (
	// Float is a constraint that permits the IEEE-754 binary
	// floating-point types and any type whose underlying type is one.
	Float constraints.Float
	// Complex is a constraint that permits the complex numeric types
	// and any type whose underlying type is one.
	Complex constraints.Complex
)
