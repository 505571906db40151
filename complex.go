package approxkit

import "unsafe"

// AbsDiffEqComplex reports whether two complex values are equal within
// the given absolute tolerance: both the real and the imaginary parts
// must be, each compared at the component width of C with its own copy
// of the tolerance.
func AbsDiffEqComplex[C Complex, F Float](a, b C, epsilon F) bool {
	if unsafe.Sizeof(a) == 8 {
		x, y := complex64(a), complex64(b)
		e := float32(epsilon)
		return AbsDiffEq(real(x), real(y), e) && AbsDiffEq(imag(x), imag(y), e)
	}
	x, y := complex128(a), complex128(b)
	e := float64(epsilon)
	return AbsDiffEq(real(x), real(y), e) && AbsDiffEq(imag(x), imag(y), e)
}

// AbsDiffNeComplex is the strict negation of AbsDiffEqComplex.
func AbsDiffNeComplex[C Complex, F Float](a, b C, epsilon F) bool {
	return !AbsDiffEqComplex(a, b, epsilon)
}

// RelativeEqComplex reports whether two complex values are
// relative-equal: both the real and the imaginary parts must be,
// each compared at the component width of C with its own copy of the
// tolerances.
func RelativeEqComplex[C Complex, F Float](a, b C, epsilon, maxRelative F) bool {
	if unsafe.Sizeof(a) == 8 {
		x, y := complex64(a), complex64(b)
		e, m := float32(epsilon), float32(maxRelative)
		return RelativeEq(real(x), real(y), e, m) && RelativeEq(imag(x), imag(y), e, m)
	}
	x, y := complex128(a), complex128(b)
	e, m := float64(epsilon), float64(maxRelative)
	return RelativeEq(real(x), real(y), e, m) && RelativeEq(imag(x), imag(y), e, m)
}

// RelativeNeComplex is the strict negation of RelativeEqComplex.
func RelativeNeComplex[C Complex, F Float](a, b C, epsilon, maxRelative F) bool {
	return !RelativeEqComplex(a, b, epsilon, maxRelative)
}
