// Package offset implements modular integer arithmetic over a fixed
// core size, as used for every address and program counter in the
// simulator.
package offset

import "fmt"

// Offset is a non-negative integer taken modulo a fixed modulus. The
// zero value is not meaningful; use New.
type Offset struct {
	value   int
	modulus int
}

// New builds an Offset, reducing v to the Euclidean representative in
// [0, modulus). Panics if modulus <= 0.
func New(v, modulus int) Offset {
	if modulus <= 0 {
		panic(fmt.Sprintf("offset: invalid modulus %d", modulus))
	}
	return Offset{value: euclidMod(v, modulus), modulus: modulus}
}

// Value returns the normalized representative, 0 <= Value() < Modulus().
func (o Offset) Value() int { return o.value }

// Modulus returns the modulus this offset was constructed with.
func (o Offset) Modulus() int { return o.modulus }

func euclidMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// checkModulus panics if a and b were not built over the same modulus;
// combining offsets from different cores is a programming error, never
// a runtime condition a caller can recover from.
func checkModulus(a, b Offset) {
	if a.modulus != b.modulus {
		panic(fmt.Sprintf("offset: modulus mismatch %d != %d", a.modulus, b.modulus))
	}
}

// Add returns a+b modulo their shared modulus.
func (a Offset) Add(b Offset) Offset {
	checkModulus(a, b)
	return New(a.value+b.value, a.modulus)
}

// Sub returns a-b modulo their shared modulus.
func (a Offset) Sub(b Offset) Offset {
	checkModulus(a, b)
	return New(a.value-b.value, a.modulus)
}

// Mul returns a*b modulo their shared modulus.
func (a Offset) Mul(b Offset) Offset {
	checkModulus(a, b)
	return New(a.value*b.value, a.modulus)
}

// Div returns a/b (truncating integer division on the representatives)
// modulo their shared modulus. Panics if b.Value() == 0; callers dealing
// with caller-controlled divisors must check first.
func (a Offset) Div(b Offset) Offset {
	checkModulus(a, b)
	if b.value == 0 {
		panic("offset: division by zero")
	}
	return New(a.value/b.value, a.modulus)
}

// Rem returns a%b (Euclidean remainder) modulo their shared modulus.
func (a Offset) Rem(b Offset) Offset {
	checkModulus(a, b)
	if b.value == 0 {
		panic("offset: division by zero")
	}
	return New(a.value%b.value, a.modulus)
}

// AddInt returns o+v modulo o's modulus.
func (o Offset) AddInt(v int) Offset { return New(o.value+v, o.modulus) }

// SubInt returns o-v modulo o's modulus.
func (o Offset) SubInt(v int) Offset { return New(o.value-v, o.modulus) }

// MulInt returns o*v modulo o's modulus.
func (o Offset) MulInt(v int) Offset { return New(o.value*v, o.modulus) }

// String renders the offset's normalized value.
func (o Offset) String() string { return fmt.Sprintf("%d", o.value) }
