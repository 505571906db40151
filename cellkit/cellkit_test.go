package cellkit_test

import (
	"testing"

	"go.llib.dev/approxkit"
	"go.llib.dev/approxkit/cellkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestCell(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("holds and replaces its value", func(t *testcase.T) {
		v := t.Random.Float64()
		c := cellkit.CellOf(v)
		assert.Equal(t, v, c.Get())

		nv := t.Random.Float64()
		c.Set(nv)
		assert.Equal(t, nv, c.Get())
	})

	s.Test("comparison reads the current values", func(t *testcase.T) {
		a := cellkit.CellOf(1.0)
		b := cellkit.CellOf(2.0)

		epsilon := approxkit.DefaultEpsilon[float64]()
		maxRelative := approxkit.DefaultMaxRelative[float64]()

		assert.True(t, cellkit.RelativeNe(&a, &b, epsilon, maxRelative))

		b.Set(1.0)
		assert.True(t, cellkit.RelativeEq(&a, &b, epsilon, maxRelative))
		assert.True(t, cellkit.AbsDiffEq(&a, &b, epsilon))
	})

	s.Test("comparison doesn't mutate the cells", func(t *testcase.T) {
		av, bv := t.Random.Float64(), t.Random.Float64()
		a := cellkit.CellOf(av)
		b := cellkit.CellOf(bv)
		cellkit.RelativeEq(&a, &b, 0, 0)
		assert.Equal(t, av, a.Get())
		assert.Equal(t, bv, b.Get())
	})

	s.Test("inner comparison is pluggable", func(t *testcase.T) {
		a := cellkit.CellOf([]float64{1.0, 2.0})
		b := cellkit.CellOf([]float64{1.0, 2.0})
		assert.True(t, cellkit.RelativeEqFunc(&a, &b, 0.0, 0.0,
			approxkit.RelativeEqSlice[float64]))

		b.Set([]float64{1.0})
		assert.False(t, cellkit.RelativeEqFunc(&a, &b, 0.0, 0.0,
			approxkit.RelativeEqSlice[float64]))

		assert.False(t, cellkit.AbsDiffEqFunc(&a, &b, 0.0,
			approxkit.AbsDiffEqSlice[float64]))
	})
}

func TestShared(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("holds and replaces its value", func(t *testcase.T) {
		v := t.Random.Float64()
		c := cellkit.SharedOf(v)
		assert.Equal(t, v, c.Get())

		nv := t.Random.Float64()
		c.Set(nv)
		assert.Equal(t, nv, c.Get())
	})

	s.Test("update runs under exclusive access", func(t *testcase.T) {
		c := cellkit.SharedOf(1.0)
		c.Update(func(v float64) float64 { return v + 1 })
		assert.Equal(t, 2.0, c.Get())
	})

	s.Test("comparison snapshots both cells", func(t *testcase.T) {
		a := cellkit.SharedOf(1.0)
		b := cellkit.SharedOf(1.0)

		epsilon := approxkit.DefaultEpsilon[float64]()
		maxRelative := approxkit.DefaultMaxRelative[float64]()

		assert.True(t, cellkit.SharedRelativeEq(a, b, epsilon, maxRelative))
		assert.True(t, cellkit.SharedAbsDiffEq(a, b, epsilon))

		b.Set(2.0)
		assert.True(t, cellkit.SharedRelativeNe(a, b, epsilon, maxRelative))
		assert.True(t, cellkit.SharedAbsDiffNe(a, b, epsilon))
	})

	s.Test("inner comparison is pluggable", func(t *testcase.T) {
		a := cellkit.SharedOf(complex(1.0, 2.0))
		b := cellkit.SharedOf(complex(1.0, 2.0))
		assert.True(t, cellkit.SharedRelativeEqFunc(a, b, 0.0, 0.0,
			approxkit.RelativeEqComplex[complex128, float64]))
		assert.True(t, cellkit.SharedAbsDiffEqFunc(a, b, 0.0,
			approxkit.AbsDiffEqComplex[complex128, float64]))
	})

	s.Test("reading while a writer holds the cell faults loudly", func(t *testcase.T) {
		c := cellkit.SharedOf(1.0)
		c.Update(func(v float64) float64 {
			pv := assert.Panic(t, func() { _ = c.Get() })
			err, ok := pv.(error)
			assert.True(t, ok)
			assert.ErrorIs(t, err, cellkit.ErrAccessConflict)
			return v
		})
	})

	s.Test("comparing while a writer holds either cell faults loudly", func(t *testcase.T) {
		a := cellkit.SharedOf(1.0)
		b := cellkit.SharedOf(1.0)
		b.Update(func(v float64) float64 {
			assert.Panic(t, func() { cellkit.SharedRelativeEq(a, b, 0, 0) })
			return v
		})
	})

	s.Test("writing while another writer holds the cell faults loudly", func(t *testcase.T) {
		c := cellkit.SharedOf(1.0)
		c.Update(func(v float64) float64 {
			assert.Panic(t, func() { c.Set(42.0) })
			assert.Panic(t, func() { c.Update(func(v float64) float64 { return v }) })
			return v
		})
	})

	s.Test("concurrent readers do not conflict", func(t *testcase.T) {
		c := cellkit.SharedOf(1.0)
		assert.NotPanic(t, func() {
			testcase.Race(
				func() { _ = c.Get() },
				func() { _ = c.Get() },
				func() { _ = c.Get() },
			)
		})
	})
}
