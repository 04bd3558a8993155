package seq

import (
	"sync"
	"sync/atomic"
)

// Arena is an append-only table of sequence nodes indexed by id. Nodes are
// never removed; an arena keeps every node it allocated alive for as long as
// the arena itself is reachable, which is as long as any handle into it is.
// A forced node drops its producer and keeps only the published result.
type Arena[T any] struct {
	mu     sync.RWMutex
	nodes  []*node[T]
	forced atomic.Int64
}

type node[T any] struct {
	produce atomic.Pointer[Producer[T]] // nil once the result is published
	cell    atomic.Pointer[result[T]]
}

// frozen outcome of forcing a node
type result[T any] struct {
	value T
	next  Seq[T]
	ok    bool
}

// NewArena returns an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// New allocates an unforced node for p. A nil producer yields the empty
// sequence.
func (a *Arena[T]) New(p Producer[T]) Seq[T] {
	if p == nil {
		return Seq[T]{}
	}
	n := &node[T]{}
	n.produce.Store(&p)

	a.mu.Lock()
	id := len(a.nodes)
	a.nodes = append(a.nodes, n)
	a.mu.Unlock()
	return Seq[T]{arena: a, id: id}
}

// Len returns the number of nodes allocated.
func (a *Arena[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.nodes)
}

// Forced returns the number of nodes that have published a result.
func (a *Arena[T]) Forced() int {
	return int(a.forced.Load())
}

func (a *Arena[T]) node(id int) *node[T] {
	a.mu.RLock()
	n := a.nodes[id]
	a.mu.RUnlock()
	return n
}

// force publishes the node's result exactly once. Racing forcers may each run
// the producer, but only the first compare-and-swap wins and everyone returns
// the winner's result; a loser's continuation node is left unreferenced.
func (a *Arena[T]) force(id int) (T, Seq[T], bool) {
	n := a.node(id)
	if r := n.cell.Load(); r != nil {
		return r.value, r.next, r.ok
	}

	produce := n.produce.Load()
	if produce == nil {
		// cleared by a winner that has already published
		r := n.cell.Load()
		return r.value, r.next, r.ok
	}

	v, p, ok := (*produce)()
	r := &result[T]{ok: ok}
	if ok {
		r.value = v
		r.next = a.New(p)
	}
	if n.cell.CompareAndSwap(nil, r) {
		a.forced.Add(1)
		n.produce.Store(nil)
	} else {
		r = n.cell.Load()
	}
	return r.value, r.next, r.ok
}
