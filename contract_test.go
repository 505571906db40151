package approxkit_test

import (
	"testing"

	"go.llib.dev/approxkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// vector is an example composite type that takes part in the comparison
// contracts by capability delegation to its float components.
type vector struct{ X, Y float64 }

var _ approxkit.RelativeComparable[vector, float64] = vector{}

func (v vector) DefaultEpsilon() float64 {
	return approxkit.DefaultEpsilon[float64]()
}

func (v vector) AbsDiffEq(oth vector, epsilon float64) bool {
	return approxkit.AbsDiffEq(v.X, oth.X, epsilon) &&
		approxkit.AbsDiffEq(v.Y, oth.Y, epsilon)
}

func (v vector) DefaultMaxRelative() float64 {
	return approxkit.DefaultMaxRelative[float64]()
}

func (v vector) RelativeEq(oth vector, epsilon, maxRelative float64) bool {
	return approxkit.RelativeEq(v.X, oth.X, epsilon, maxRelative) &&
		approxkit.RelativeEq(v.Y, oth.Y, epsilon, maxRelative)
}

func TestRelativeComparable(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		a = testcase.Let(s, func(t *testcase.T) vector {
			return vector{X: t.Random.Float64(), Y: t.Random.Float64()}
		})
		b = testcase.Let(s, func(t *testcase.T) vector {
			return vector{X: t.Random.Float64(), Y: t.Random.Float64()}
		})
	)

	s.Test("the contract methods drive the comparison", func(t *testcase.T) {
		v := a.Get(t)
		assert.True(t, v.RelativeEq(v, v.DefaultEpsilon(), v.DefaultMaxRelative()))
	})

	s.Test("RelativeNeOf is the strict negation of the type's RelativeEq", func(t *testcase.T) {
		var (
			epsilon     = t.Random.Float64()
			maxRelative = t.Random.Float64()
		)
		assert.Equal(t,
			a.Get(t).RelativeEq(b.Get(t), epsilon, maxRelative),
			!approxkit.RelativeNeOf(a.Get(t), b.Get(t), epsilon, maxRelative))
	})

	s.Test("AbsDiffNeOf is the strict negation of the type's AbsDiffEq", func(t *testcase.T) {
		epsilon := t.Random.Float64()
		assert.Equal(t,
			a.Get(t).AbsDiffEq(b.Get(t), epsilon),
			!approxkit.AbsDiffNeOf(a.Get(t), b.Get(t), epsilon))
	})

	s.Test("composite types compose through the slice rule", func(t *testcase.T) {
		vs := []vector{a.Get(t), b.Get(t)}
		assert.True(t, approxkit.RelativeEqSliceFunc(vs, vs, 0, 0, vector.RelativeEq))
		assert.False(t, approxkit.RelativeEqSliceFunc(vs, vs[:1], 0, 0, vector.RelativeEq))
	})
}
