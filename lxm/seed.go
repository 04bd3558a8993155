package lxm

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// ErrInvalidSeed is returned when a seed fails a precondition imposed by a
// SeedOption. Seed never fails without options.
var ErrInvalidSeed = errors.New("invalid seed")

const golden64 = 0x9e3779b97f4a7c15

// seed options
type SeedOptions struct {
	minLen   int
	utf8Only bool
	mix      Mix
}

// seed option
type SeedOption func(*SeedOptions)

func newSeedOptions(opts ...SeedOption) *SeedOptions {
	opt := &SeedOptions{}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// WithMinLength rejects seeds shorter than n bytes.
func WithMinLength(n int) SeedOption {
	return func(opts *SeedOptions) {
		opts.minLen = n
	}
}

// WithValidUTF8 rejects seeds that are not valid UTF-8.
func WithValidUTF8() SeedOption {
	return func(opts *SeedOptions) {
		opts.utf8Only = true
	}
}

// WithMix selects the mixer of the derived state.
func WithMix(m Mix) SeedOption {
	return func(opts *SeedOptions) {
		opts.mix = m
	}
}

// Seed derives a State from an arbitrary string. The string is hashed into
// four independent XXH64 lanes, one per state field, so the result depends on
// every byte of s and is identical across runs and processes.
func Seed(s string, opts ...SeedOption) (State, error) {
	opt := newSeedOptions(opts...)
	if len(s) < opt.minLen {
		return State{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidSeed, len(s), opt.minLen)
	}
	if opt.utf8Only && !utf8.ValidString(s) {
		return State{}, fmt.Errorf("%w: not valid UTF-8", ErrInvalidSeed)
	}

	var lanes [4]uint64
	d := xxhash.New()
	for i := range lanes {
		d.ResetWithSeed(uint64(i+1) * golden64)
		d.WriteString(s)
		lanes[i] = d.Sum64()
	}
	return NewState(lanes[0], lanes[1], lanes[2], lanes[3], opt.mix), nil
}

// MustSeed is like Seed but panics if the seed is rejected.
func MustSeed(s string, opts ...SeedOption) State {
	st, err := Seed(s, opts...)
	if err != nil {
		panic(err)
	}
	return st
}

// FromUint64 expands a 64-bit value into a State with SplitMix64.
func FromUint64(v uint64) State {
	var f [4]uint64
	for i := range f {
		v += golden64
		f[i] = stafford13(v)
	}
	return NewState(f[0], f[1], f[2], f[3], MixLea64)
}
