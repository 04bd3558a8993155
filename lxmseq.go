// Package lxmseq exposes LXM generator states as memoized lazy sequences.
//
//	st := lxm.MustSeed("a seed of any length")
//	bits := lxmseq.Bits(st)
//	first, _ := seq.Take(10, bits)
//	again, _ := seq.Take(10, bits) // equal to first
package lxmseq

import (
	"github.com/tutils/lxmseq/lxm"
	"github.com/tutils/lxmseq/seq"
)

func step(st lxm.State) (uint64, lxm.State, bool) {
	v, next := lxm.Step(st)
	return v, next, true
}

// FromState returns the infinite sequence of output words starting at st.
// Each node captures its own copy of the generator state.
func FromState(st lxm.State) seq.Seq[uint64] {
	return seq.Unfold(st, step)
}

// FromStateIn is FromState with the nodes allocated in a.
func FromStateIn(a *seq.Arena[uint64], st lxm.State) seq.Seq[uint64] {
	return seq.UnfoldIn(a, st, step)
}

// Bits returns the infinite sequence of output bits starting at st.
func Bits(st lxm.State) seq.Seq[bool] {
	return seq.Map(FromState(st), lxm.Bit)
}

// SeedSequence seeds a generator from s and returns its word sequence along
// with the initial state, which callers can keep to rebuild the sequence.
func SeedSequence(s string, opts ...lxm.SeedOption) (seq.Seq[uint64], lxm.State, error) {
	st, err := lxm.Seed(s, opts...)
	if err != nil {
		return seq.Seq[uint64]{}, lxm.State{}, err
	}
	return FromState(st), st, nil
}
