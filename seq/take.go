package seq

// Take returns the first n elements of s and the sequence after them. For
// n <= 0 it forces nothing and returns s unchanged. A finite sequence that
// ends early yields a shorter list. Because forcing is idempotent, calling
// Take twice on the same handle returns equal lists.
func Take[T any](n int, s Seq[T]) ([]T, Seq[T]) {
	if n <= 0 {
		return nil, s
	}
	out := make([]T, 0, min(n, 1024))
	for len(out) < n {
		v, next, ok := Force(s)
		if !ok {
			break
		}
		out = append(out, v)
		s = next
	}
	return out, s
}

// Drop forces and discards the first n elements of s. The dropped nodes are
// not freed: the returned handle shares their arena and keeps them alive.
func Drop[T any](n int, s Seq[T]) Seq[T] {
	for ; n > 0; n-- {
		_, next, ok := Force(s)
		if !ok {
			break
		}
		s = next
	}
	return s
}
