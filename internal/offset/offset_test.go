package offset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cjr29/corewar/internal/offset"
)

func TestNewNormalizes(t *testing.T) {
	o := offset.New(-1, 10)
	assert.Equal(t, 9, o.Value())
	assert.Equal(t, 10, o.Modulus())

	o = offset.New(23, 10)
	assert.Equal(t, 3, o.Value())
}

func TestInvariantRange(t *testing.T) {
	for _, v := range []int{-1000, -1, 0, 1, 9999, 123456} {
		o := offset.New(v, 8000)
		assert.GreaterOrEqual(t, o.Value(), 0)
		assert.Less(t, o.Value(), o.Modulus())
	}
}

func TestIdempotent(t *testing.T) {
	o := offset.New(-37, 100)
	o2 := offset.New(o.Value(), 100)
	assert.Equal(t, o, o2)
}

func TestArithmeticMatchesEuclid(t *testing.T) {
	a := offset.New(7, 10)
	b := offset.New(4, 10)

	assert.Equal(t, 1, a.Add(b).Value())
	assert.Equal(t, 3, a.Sub(b).Value())
	assert.Equal(t, 8, a.Mul(b).Value())
	assert.Equal(t, 1, a.Div(b).Value())
	assert.Equal(t, 3, a.Rem(b).Value())
}

func TestMismatchedModulusPanics(t *testing.T) {
	a := offset.New(1, 10)
	b := offset.New(1, 20)
	assert.Panics(t, func() { a.Add(b) })
}

func TestDivideByZeroPanics(t *testing.T) {
	a := offset.New(5, 10)
	z := offset.New(0, 10)
	assert.Panics(t, func() { a.Div(z) })
	assert.Panics(t, func() { a.Rem(z) })
}
