package approxkit

// AbsDiffEqPtr forwards the absolute comparison to the referenced values.
// The pointers must not be nil; a nil operand is a caller error and
// faults immediately.
func AbsDiffEqPtr[F Float](a, b *F, epsilon F) bool {
	return AbsDiffEq(*a, *b, epsilon)
}

// AbsDiffNePtr is the strict negation of AbsDiffEqPtr.
func AbsDiffNePtr[F Float](a, b *F, epsilon F) bool {
	return !AbsDiffEqPtr(a, b, epsilon)
}

// RelativeEqPtr forwards the relative comparison to the referenced
// values, without mutating or retaining them.
// The pointers must not be nil; a nil operand is a caller error and
// faults immediately.
func RelativeEqPtr[F Float](a, b *F, epsilon, maxRelative F) bool {
	return RelativeEq(*a, *b, epsilon, maxRelative)
}

// RelativeNePtr is the strict negation of RelativeEqPtr.
func RelativeNePtr[F Float](a, b *F, epsilon, maxRelative F) bool {
	return !RelativeEqPtr(a, b, epsilon, maxRelative)
}
