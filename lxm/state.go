// Package lxm implements an LXM-family pseudo-random generator: a 64-bit LCG
// and a xoroshiro128 XorShift component advanced in lockstep and combined by
// a mix function.
//
// The generator is a pure function of State. State is a comparable value with
// no hidden or shared component, so copying a State forks an independent
// future and two equal States always produce the same output.
package lxm

import (
	"fmt"
	"math/bits"
)

// LCG multiplier of the L64 variants.
const m64 = 0xd1342543de82ef95

// Replacement registers for an all-zero xorshift pair, which is a fixed point.
const (
	defaultX0 = 0x9e3779b97f4a7c15
	defaultX1 = 0x6a09e667f3bcc909
)

// State is an immutable generator state.
type State struct {
	a   uint64 // LCG addend, always odd
	s   uint64 // LCG accumulator
	x0  uint64 // xorshift registers, never both zero
	x1  uint64
	mix Mix
}

// NewState builds a State from raw fields. The addend is forced odd, an
// all-zero xorshift pair is replaced with a fixed non-zero one, and an
// unknown mixer becomes MixLea64.
func NewState(a, s, x0, x1 uint64, m Mix) State {
	if x0|x1 == 0 {
		x0, x1 = defaultX0, defaultX1
	}
	if m >= numMix {
		m = MixLea64
	}
	return State{
		a:   a | 1,
		s:   s,
		x0:  x0,
		x1:  x1,
		mix: m,
	}
}

// Step returns the next output word and the successor state.
func Step(st State) (uint64, State) {
	z := st.mix.Apply(st.s + st.x0)

	next := st
	next.s = m64*st.s + st.a

	q0, q1 := st.x0, st.x1
	q1 ^= q0
	next.x0 = bits.RotateLeft64(q0, 24) ^ q1 ^ (q1 << 16)
	next.x1 = bits.RotateLeft64(q1, 37)

	return z, next
}

// Next is Step as a method.
func (st State) Next() (uint64, State) {
	return Step(st)
}

// Bit maps an output word to a boolean using its most significant bit.
func Bit(word uint64) bool {
	return word>>63 == 1
}

// Mix returns the mixer the state was seeded with.
func (st State) Mix() Mix {
	return st.mix
}

// Fields returns the raw LCG addend, LCG accumulator and xorshift registers.
func (st State) Fields() (a, s, x0, x1 uint64) {
	return st.a, st.s, st.x0, st.x1
}

func (st State) String() string {
	return fmt.Sprintf("lxm{a:%016x s:%016x x0:%016x x1:%016x mix:%s}", st.a, st.s, st.x0, st.x1, st.mix)
}
