package replay

import (
	"fmt"
	"sync"

	"github.com/tutils/lxmseq/counter"
	"github.com/tutils/lxmseq/lxm"
	"github.com/tutils/lxmseq/seq"
)

// Mode names a representation of "the sequence starting here".
type Mode string

const (
	// ModeMemo re-reads a memoized seq.Seq handle.
	ModeMemo Mode = "memo"
	// ModeCursor re-reads a handle backed by one shared mutable lxm.Source,
	// the representation that turns replay into consumption.
	ModeCursor Mode = "cursor"
)

// ParseMode resolves a mode by name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeMemo, ModeCursor:
		return m, nil
	}
	return "", fmt.Errorf("unknown replay mode %q (want %s or %s)", s, ModeMemo, ModeCursor)
}

// handle is a re-readable starting point.
type handle interface {
	take(n int) []bool
}

func newHandle(m Mode, st lxm.State, steps counter.Counter) handle {
	if m == ModeCursor {
		return &cursorHandle{src: lxm.NewSourceFromState(st), steps: steps}
	}
	counted := func(st lxm.State) (uint64, lxm.State, bool) {
		steps.Add(1)
		v, next := lxm.Step(st)
		return v, next, true
	}
	return memoHandle{s: seq.Map(seq.Unfold(st, counted), lxm.Bit)}
}

type memoHandle struct {
	s seq.Seq[bool]
}

func (h memoHandle) take(n int) []bool {
	out, _ := seq.Take(n, h.s)
	return out
}

type cursorHandle struct {
	mu    sync.Mutex
	src   *lxm.Source
	steps counter.Counter
}

func (h *cursorHandle) take(n int) []bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = h.src.Bool()
	}
	h.steps.Add(int64(n))
	return out
}
