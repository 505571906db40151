package approxkit

// AbsDiffEqSlice reports whether a and b are pairwise equal within the
// given absolute tolerance. Slices of different length are never equal,
// regardless of the tolerance.
func AbsDiffEqSlice[F Float](a, b []F, epsilon F) bool {
	return AbsDiffEqSliceFunc(a, b, epsilon, AbsDiffEq[F])
}

// AbsDiffNeSlice is the strict negation of AbsDiffEqSlice.
func AbsDiffNeSlice[F Float](a, b []F, epsilon F) bool {
	return !AbsDiffEqSlice(a, b, epsilon)
}

// AbsDiffEqSliceFunc is the general sequence rule of the absolute
// contract, with the element comparison supplied as a function value.
// Each element comparison receives its own copy of the tolerance.
func AbsDiffEqSliceFunc[T, E any](a, b []T, epsilon E, eq func(a, b T, epsilon E) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// RelativeEqSlice reports whether a and b are pairwise relative-equal,
// short-circuiting on the first mismatching index.
// Slices of different length are never equal, regardless of the
// tolerances; this is a hard equality rule, not subject to tolerance.
func RelativeEqSlice[F Float](a, b []F, epsilon, maxRelative F) bool {
	return RelativeEqSliceFunc(a, b, epsilon, maxRelative, RelativeEq[F])
}

// RelativeNeSlice is the strict negation of RelativeEqSlice.
func RelativeNeSlice[F Float](a, b []F, epsilon, maxRelative F) bool {
	return !RelativeEqSlice(a, b, epsilon, maxRelative)
}

// RelativeEqSliceFunc is the general sequence rule of the relative
// contract, with the element comparison supplied as a function value.
// Any element type composes this way: pass RelativeEq for plain floats,
// RelativeEqComplex for complex elements, or a method expression such as
// floatkit.NotNaN[float64].RelativeEq for contract-implementing types.
// Each element comparison receives its own copy of the tolerances.
func RelativeEqSliceFunc[T, E any](a, b []T, epsilon, maxRelative E, eq func(a, b T, epsilon, maxRelative E) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i], epsilon, maxRelative) {
			return false
		}
	}
	return true
}
