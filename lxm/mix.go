package lxm

import (
	"fmt"
	"strings"
)

// Mix names one of the fixed 64-bit finalizers that combine the LCG and
// XorShift outputs. It is an identifier rather than a function value so that
// State stays comparable.
type Mix uint8

const (
	MixLea64 Mix = iota
	MixStafford13
	MixMurmur3

	numMix
)

var mixNames = [...]string{
	MixLea64:      "lea64",
	MixStafford13: "stafford13",
	MixMurmur3:    "murmur3",
}

// Apply runs the mixer over z. Unknown ids fall back to lea64.
func (m Mix) Apply(z uint64) uint64 {
	switch m {
	case MixStafford13:
		return stafford13(z)
	case MixMurmur3:
		return murmur3(z)
	default:
		return lea64(z)
	}
}

func (m Mix) String() string {
	if m < numMix {
		return mixNames[m]
	}
	return fmt.Sprintf("mix(%d)", uint8(m))
}

// ParseMix resolves a mixer by name, case-insensitively.
func ParseMix(name string) (Mix, error) {
	for i, n := range mixNames {
		if strings.EqualFold(n, name) {
			return Mix(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mix %q (want one of %s)", name, strings.Join(mixNames[:], ", "))
}

// Doug Lea's mixer from the JDK LXM generators.
func lea64(z uint64) uint64 {
	z = (z ^ (z >> 32)) * 0xdaba0b6eb09322e3
	z = (z ^ (z >> 32)) * 0xdaba0b6eb09322e3
	return z ^ (z >> 32)
}

// Stafford's variant 13, the SplitMix64 finalizer.
func stafford13(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// MurmurHash3 fmix64.
func murmur3(z uint64) uint64 {
	z ^= z >> 33
	z *= 0xff51afd7ed558ccd
	z ^= z >> 33
	z *= 0xc4ceb9fe1a85ec53
	return z ^ (z >> 33)
}
