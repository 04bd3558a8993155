// Package seq provides memoizing lazy sequences.
//
// A sequence is a chain of nodes held in an Arena. A node starts unforced,
// holding a Producer. The first Force runs the producer once and publishes
// the (value, next) pair into the node's one-shot cell; every later Force of
// that node, through any copy of its handle, returns the published pair. A
// node's meaning therefore never changes after its first force, whatever
// runs in between.
//
// Producers must only close over immutable values. Unfold enforces this for
// the common case by threading a value-typed state through a pure step
// function.
package seq

import (
	"errors"
	"iter"
)

// ErrExhausted is returned by Head on a sequence with no more elements.
var ErrExhausted = errors.New("sequence exhausted")

// Producer computes one element and the producer of the elements after it.
// ok is false when the sequence has ended. A nil next with ok true makes the
// returned element the last one.
type Producer[T any] func() (v T, next Producer[T], ok bool)

// Seq is a handle to a sequence node. Handles are small comparable values;
// copies refer to the same node. The zero Seq is the empty sequence.
type Seq[T any] struct {
	arena *Arena[T]
	id    int
}

// Empty returns the empty sequence.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Force evaluates the node s refers to. It is idempotent: any number of calls
// on the same node return the same value and continuation.
func Force[T any](s Seq[T]) (T, Seq[T], bool) {
	if s.arena == nil {
		var zero T
		return zero, Seq[T]{}, false
	}
	return s.arena.force(s.id)
}

// Force is the method form of Force.
func (s Seq[T]) Force() (T, Seq[T], bool) {
	return Force(s)
}

// Head returns the first element of s, or ErrExhausted.
func Head[T any](s Seq[T]) (T, error) {
	v, _, ok := Force(s)
	if !ok {
		return v, ErrExhausted
	}
	return v, nil
}

// IsForced reports whether the node has published its result.
func (s Seq[T]) IsForced() bool {
	if s.arena == nil {
		return true
	}
	return s.arena.node(s.id).cell.Load() != nil
}

// ID returns the node's index in its arena, or -1 for the empty sequence.
func (s Seq[T]) ID() int {
	if s.arena == nil {
		return -1
	}
	return s.id
}

// Arena returns the arena holding the node, nil for the empty sequence.
func (s Seq[T]) Arena() *Arena[T] {
	return s.arena
}

// All iterates the elements of s, forcing as it goes. Every forced node stays
// in the arena while any handle into it is live, so ranging far over an
// infinite sequence grows memory with the number of elements visited.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := s
		for {
			v, next, ok := Force(cur)
			if !ok || !yield(v) {
				return
			}
			cur = next
		}
	}
}

// Unfold builds a sequence from an initial state and a step function. The
// state is captured by value at every node, so S should be a value type (or
// otherwise immutable) for forcing to be reproducible.
func Unfold[S, T any](seed S, step func(S) (T, S, bool)) Seq[T] {
	return UnfoldIn(NewArena[T](), seed, step)
}

// UnfoldIn is Unfold with the nodes allocated in a.
func UnfoldIn[S, T any](a *Arena[T], seed S, step func(S) (T, S, bool)) Seq[T] {
	return a.New(unfold(seed, step))
}

func unfold[S, T any](st S, step func(S) (T, S, bool)) Producer[T] {
	return func() (T, Producer[T], bool) {
		v, next, ok := step(st)
		if !ok {
			var zero T
			return zero, nil, false
		}
		return v, unfold(next, step), true
	}
}

// FromSlice returns a finite sequence over a copy of xs.
func FromSlice[T any](xs []T) Seq[T] {
	snap := append([]T(nil), xs...)
	return Unfold(0, func(i int) (T, int, bool) {
		if i >= len(snap) {
			var zero T
			return zero, i, false
		}
		return snap[i], i + 1, true
	})
}

// Map returns a lazy sequence of f applied to each element of s. Elements of
// s are forced only when the corresponding mapped node is.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return Unfold(s, func(cur Seq[T]) (U, Seq[T], bool) {
		v, next, ok := Force(cur)
		if !ok {
			var zero U
			return zero, next, false
		}
		return f(v), next, true
	})
}
