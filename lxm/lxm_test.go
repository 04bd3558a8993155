package lxm

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

const goldenSeed = "the lazy sequence must replay the same bits"

func draw(st State, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i], st = Step(st)
	}
	return out
}

func TestSeedGolden(t *testing.T) {
	st := MustSeed(goldenSeed)
	a, s, x0, x1 := st.Fields()
	if a != 0x76a53f36a30e95c1 || s != 0x845f18f712b6618c || x0 != 0x4dae1216dc7e452a || x1 != 0xded92c6815b5b9cf {
		t.Fatalf("unexpected state %v", st)
	}

	want := []uint64{
		0x325f47b8415b7814, 0x666c4781a9a417d0, 0x962b6476292d2bc8, 0xf9a2db955b24b872, 0xc8ef4b1e271c2ec7,
		0x6b10b922da328e9b, 0x7eebac69f8df720b, 0x469dacb32c57913f, 0x5e80509f3930ab14, 0x85169293f34fd668,
	}
	got := draw(st, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("word %d: got %#x, want %#x", i, got[i], want[i])
		}
	}

	bits := ""
	for _, w := range got {
		if Bit(w) {
			bits += "1"
		} else {
			bits += "0"
		}
	}
	if bits != "0011100001" {
		t.Fatalf("bits: got %s, want 0011100001", bits)
	}
}

func TestMixGolden(t *testing.T) {
	tests := []struct {
		mix  Mix
		want []uint64
	}{
		{MixStafford13, []uint64{0x0de905086c648744, 0x7d7d53b55b4a891c, 0xd9784f19baf2e00b}},
		{MixMurmur3, []uint64{0xc8eb76fc3c27e75f, 0xec6a8b0c7e4d90c1, 0x55bb81493a66abd7}},
	}
	for _, test := range tests {
		st := MustSeed(goldenSeed, WithMix(test.mix))
		if st.Mix() != test.mix {
			t.Fatalf("mix: got %v, want %v", st.Mix(), test.mix)
		}
		got := draw(st, len(test.want))
		for i := range test.want {
			if got[i] != test.want[i] {
				t.Errorf("%v word %d: got %#x, want %#x", test.mix, i, got[i], test.want[i])
			}
		}
	}
}

func TestStepIsPure(t *testing.T) {
	st := MustSeed(goldenSeed)
	v1, n1 := Step(st)
	v2, n2 := st.Next()
	if v1 != v2 || n1 != n2 {
		t.Fatalf("step differs on the same state: %#x/%v vs %#x/%v", v1, n1, v2, n2)
	}
	if n1 == st {
		t.Fatal("step did not advance")
	}
	// advancing a copy leaves the original untouched
	cp := st
	for i := 0; i < 100; i++ {
		_, cp = Step(cp)
	}
	if v, _ := Step(st); v != v1 {
		t.Fatalf("original state changed: %#x vs %#x", v, v1)
	}
}

func TestSeedDeterminism(t *testing.T) {
	for _, s := range []string{"", "a", goldenSeed, "日本語のシード", string(make([]byte, 300))} {
		a := draw(MustSeed(s), 64)
		b := draw(MustSeed(s), 64)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %q diverged at %d", s, i)
			}
		}
	}
}

func TestSeedEmpty(t *testing.T) {
	st, err := Seed("")
	if err != nil {
		t.Fatal(err)
	}
	a, s, x0, x1 := st.Fields()
	if a != 0xc4349fc93c010001 || s != 0x90772f46c14bc03e || x0 != 0x9722fadb22b7497a || x1 != 0xe9987252d1e8a089 {
		t.Fatalf("unexpected state %v", st)
	}
	if v, _ := Step(st); v != 0x9f1f9685300eb86b {
		t.Fatalf("first word %#x", v)
	}
}

func TestSeedSensitivity(t *testing.T) {
	seen := make(map[[10]uint64]string)
	for i := 0; i < 1000; i++ {
		s := fmt.Sprintf("seed-%04d", i)
		var key [10]uint64
		copy(key[:], draw(MustSeed(s), 10))
		if prev, ok := seen[key]; ok {
			t.Fatalf("seeds %q and %q share a prefix", prev, s)
		}
		seen[key] = s
	}

	// one extra byte changes the 10-bit prefix
	for i := 0; i < 200; i++ {
		a := draw(MustSeed(fmt.Sprintf("seed-%04d", i)), 10)
		b := draw(MustSeed(fmt.Sprintf("seed-%04dx", i)), 10)
		same := true
		for j := range a {
			if Bit(a[j]) != Bit(b[j]) {
				same = false
				break
			}
		}
		if same {
			t.Errorf("seed-%04d: bit prefix unchanged by an extra byte", i)
		}
	}
}

func TestSeedOptions(t *testing.T) {
	if _, err := Seed("short", WithMinLength(30)); !errors.Is(err, ErrInvalidSeed) {
		t.Fatalf("expected ErrInvalidSeed, got %v", err)
	}
	if _, err := Seed(goldenSeed, WithMinLength(30)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := Seed("\xff\xfe", WithValidUTF8()); !errors.Is(err, ErrInvalidSeed) {
		t.Fatalf("expected ErrInvalidSeed, got %v", err)
	}
	if _, err := Seed("\xff\xfe"); err != nil {
		t.Fatalf("raw bytes should be accepted by default: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustSeed did not panic")
		}
	}()
	MustSeed("", WithMinLength(1))
}

func TestNewStateNormalizes(t *testing.T) {
	st := NewState(0, 0, 0, 0, MixLea64)
	a, s, x0, x1 := st.Fields()
	if a != 1 || s != 0 || x0 != defaultX0 || x1 != defaultX1 {
		t.Fatalf("unexpected state %v", st)
	}
	got := draw(st, 2)
	if got[0] != 0xf75225a9650de9e7 || got[1] != 0x8ceb0aa953db0f29 {
		t.Fatalf("unexpected words %#x", got)
	}
}

func TestNewStateUnknownMix(t *testing.T) {
	st := NewState(1, 2, 3, 4, Mix(9))
	if st != NewState(1, 2, 3, 4, MixLea64) {
		t.Fatalf("unknown mix kept: %v", st)
	}
	if st.Mix() != MixLea64 {
		t.Fatalf("mix: got %v", st.Mix())
	}
	if MustSeed(goldenSeed, WithMix(Mix(200))) != MustSeed(goldenSeed) {
		t.Fatal("seeding with an unknown mix should fall back to lea64")
	}
}

func TestFromUint64(t *testing.T) {
	st := FromUint64(42)
	a, s, x0, x1 := st.Fields()
	if a != 0xbdd732262feb6e95 || s != 0x28efe333b266f103 || x0 != 0x47526757130f9f52 || x1 != 0x581ce1ff0e4ae394 {
		t.Fatalf("unexpected state %v", st)
	}

	r := rand.New(NewSource(42))
	if v := r.Uint64(); v != 0x7a57219026cac06b {
		t.Fatalf("first word %#x", v)
	}
	if v := r.Uint64(); v != 0x7de0c9ac3a79ea4c {
		t.Fatalf("second word %#x", v)
	}
}

func TestSourceIsDestructive(t *testing.T) {
	st := MustSeed(goldenSeed)
	src := NewSourceFromState(st)
	alias := src

	first := src.Uint64()
	second := alias.Uint64()
	if first == second {
		t.Fatal("aliases of one Source must not replay")
	}
	if src.State() == st {
		t.Fatal("cursor did not advance")
	}

	// a snapshot forks an independent cursor
	fork := NewSourceFromState(st)
	if v := fork.Uint64(); v != first {
		t.Fatalf("fork: got %#x, want %#x", v, first)
	}

	src.Seed(42)
	if src.State() != FromUint64(42) {
		t.Fatal("Seed did not reset the cursor")
	}
	if v := src.Int63(); v < 0 {
		t.Fatalf("Int63 returned negative %d", v)
	}
}

func TestParseMix(t *testing.T) {
	for _, m := range []Mix{MixLea64, MixStafford13, MixMurmur3} {
		got, err := ParseMix(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMix(%q) = %v, %v", m.String(), got, err)
		}
	}
	if m, err := ParseMix("LEA64"); err != nil || m != MixLea64 {
		t.Fatalf("case-insensitive parse failed: %v, %v", m, err)
	}
	if _, err := ParseMix("pcg"); err == nil {
		t.Fatal("expected error")
	}
	if s := Mix(9).String(); s != "mix(9)" {
		t.Fatalf("unexpected name %q", s)
	}
}

func BenchmarkStep(b *testing.B) {
	st := MustSeed(goldenSeed)
	var v uint64
	for i := 0; i < b.N; i++ {
		v, st = Step(st)
	}
	_ = v
}
