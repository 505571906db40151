// Package cellkit provides mutable value cells together with their
// approximate comparison rules.
//
// Cell is a plain single-owner container, Shared is a container meant to
// be reachable from multiple goroutines. Shared follows a runtime-checked
// access discipline: acquiring access never blocks, a conflicting
// acquisition faults with ErrAccessConflict instead of waiting or
// silently reading torn data.
package cellkit

import (
	"sync"

	"go.llib.dev/approxkit"
	"go.llib.dev/approxkit/internal/constant"
)

// ErrAccessConflict is the fault raised when accessing a Shared cell
// would conflict with an access that is currently held.
const ErrAccessConflict constant.Error = "cellkit: conflicting access to a shared cell"

// Cell is a single-owner mutable value container.
// It is not safe for concurrent use; use Shared for that.
type Cell[T any] struct{ v T }

// CellOf returns a Cell holding the given value.
func CellOf[T any](v T) Cell[T] {
	return Cell[T]{v: v}
}

// Get returns a copy of the cell's current value.
func (c *Cell[T]) Get() T { return c.v }

// Set replaces the cell's value.
func (c *Cell[T]) Set(v T) { c.v = v }

// Shared is a mutable value container that may be shared between
// goroutines. Every access is a short-lived scoped acquisition;
// on conflict the access panics with ErrAccessConflict.
type Shared[T any] struct {
	mu sync.RWMutex
	v  T
}

// SharedOf returns a Shared cell holding the given value.
func SharedOf[T any](v T) *Shared[T] {
	return &Shared[T]{v: v}
}

// Get acquires shared read access, takes a snapshot of the current
// value, and releases the access before returning the snapshot.
// It panics with ErrAccessConflict if a writer currently holds the cell.
func (c *Shared[T]) Get() T {
	if !c.mu.TryRLock() {
		panic(ErrAccessConflict)
	}
	defer c.mu.RUnlock()
	return c.v
}

// Set replaces the cell's value under exclusive access.
// It panics with ErrAccessConflict if any reader or writer currently
// holds the cell.
func (c *Shared[T]) Set(v T) {
	if !c.mu.TryLock() {
		panic(ErrAccessConflict)
	}
	defer c.mu.Unlock()
	c.v = v
}

// Update applies blk to the cell's value under exclusive access,
// held for the duration of blk.
// It panics with ErrAccessConflict if any reader or writer currently
// holds the cell.
func (c *Shared[T]) Update(blk func(v T) T) {
	if !c.mu.TryLock() {
		panic(ErrAccessConflict)
	}
	defer c.mu.Unlock()
	c.v = blk(c.v)
}

// AbsDiffEq reads both cells' current values and compares them within
// the given absolute tolerance.
func AbsDiffEq[F approxkit.Float](a, b *Cell[F], epsilon F) bool {
	return approxkit.AbsDiffEq(a.Get(), b.Get(), epsilon)
}

// AbsDiffNe is the strict negation of AbsDiffEq.
func AbsDiffNe[F approxkit.Float](a, b *Cell[F], epsilon F) bool {
	return !AbsDiffEq(a, b, epsilon)
}

// RelativeEq reads both cells' current values and compares them by the
// relative comparison rules.
func RelativeEq[F approxkit.Float](a, b *Cell[F], epsilon, maxRelative F) bool {
	return approxkit.RelativeEq(a.Get(), b.Get(), epsilon, maxRelative)
}

// RelativeNe is the strict negation of RelativeEq.
func RelativeNe[F approxkit.Float](a, b *Cell[F], epsilon, maxRelative F) bool {
	return !RelativeEq(a, b, epsilon, maxRelative)
}

// AbsDiffEqFunc is the general cell rule of the absolute contract,
// with the inner comparison supplied as a function value.
func AbsDiffEqFunc[T, E any](a, b *Cell[T], epsilon E, eq func(a, b T, epsilon E) bool) bool {
	return eq(a.Get(), b.Get(), epsilon)
}

// RelativeEqFunc is the general cell rule of the relative contract,
// with the inner comparison supplied as a function value.
func RelativeEqFunc[T, E any](a, b *Cell[T], epsilon, maxRelative E, eq func(a, b T, epsilon, maxRelative E) bool) bool {
	return eq(a.Get(), b.Get(), epsilon, maxRelative)
}

// SharedAbsDiffEq snapshots both shared cells under their access
// discipline and compares the snapshots within the given absolute
// tolerance. It panics with ErrAccessConflict if either cell is held by
// a writer.
func SharedAbsDiffEq[F approxkit.Float](a, b *Shared[F], epsilon F) bool {
	return approxkit.AbsDiffEq(a.Get(), b.Get(), epsilon)
}

// SharedAbsDiffNe is the strict negation of SharedAbsDiffEq.
func SharedAbsDiffNe[F approxkit.Float](a, b *Shared[F], epsilon F) bool {
	return !SharedAbsDiffEq(a, b, epsilon)
}

// SharedRelativeEq snapshots both shared cells under their access
// discipline and compares the snapshots by the relative comparison
// rules. It panics with ErrAccessConflict if either cell is held by a
// writer.
func SharedRelativeEq[F approxkit.Float](a, b *Shared[F], epsilon, maxRelative F) bool {
	return approxkit.RelativeEq(a.Get(), b.Get(), epsilon, maxRelative)
}

// SharedRelativeNe is the strict negation of SharedRelativeEq.
func SharedRelativeNe[F approxkit.Float](a, b *Shared[F], epsilon, maxRelative F) bool {
	return !SharedRelativeEq(a, b, epsilon, maxRelative)
}

// SharedAbsDiffEqFunc is the general shared cell rule of the absolute
// contract, with the inner comparison supplied as a function value.
func SharedAbsDiffEqFunc[T, E any](a, b *Shared[T], epsilon E, eq func(a, b T, epsilon E) bool) bool {
	return eq(a.Get(), b.Get(), epsilon)
}

// SharedRelativeEqFunc is the general shared cell rule of the relative
// contract, with the inner comparison supplied as a function value.
func SharedRelativeEqFunc[T, E any](a, b *Shared[T], epsilon, maxRelative E, eq func(a, b T, epsilon, maxRelative E) bool) bool {
	return eq(a.Get(), b.Get(), epsilon, maxRelative)
}
