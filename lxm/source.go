package lxm

import "math/rand"

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source is a mutable cursor over a State for use with math/rand.
//
// Every call advances the cursor in place, so a Source is single-owner and
// destructive: two readers sharing one *Source see interleaved, not repeated,
// output. Use State to snapshot the position and NewSourceFromState to fork.
type Source struct {
	state State
}

// NewSource returns a Source seeded from an integer, matching rand.NewSource.
func NewSource(seed int64) rand.Source {
	return &Source{state: FromUint64(uint64(seed))}
}

// NewSourceFromState returns a Source positioned at st.
func NewSourceFromState(st State) *Source {
	return &Source{state: st}
}

// Seed implements rand.Source.
func (src *Source) Seed(seed int64) {
	src.state = FromUint64(uint64(seed))
}

// Uint64 implements rand.Source64.
func (src *Source) Uint64() uint64 {
	var v uint64
	v, src.state = Step(src.state)
	return v
}

// Int63 implements rand.Source.
func (src *Source) Int63() int64 {
	return int64(src.Uint64() >> 1)
}

// Bool draws one output bit.
func (src *Source) Bool() bool {
	return Bit(src.Uint64())
}

// State returns a snapshot of the cursor position.
func (src *Source) State() State {
	return src.state
}
