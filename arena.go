package slist

const degree = 32

// none is the link terminating the chain. Slots are numbered from 1 so zero values of
// both list and node carry no link.
const none = 0

type node[T Ordered] struct {
	Value T
	Next  int
}

// arena stores nodes in fixed-size chunks so growing it never moves existing nodes.
type arena[T Ordered] struct {
	chunks [][]node[T]
	free   []int
}

func newArena[T Ordered]() *arena[T] {
	return &arena[T]{}
}

func (a *arena[T]) Alloc(v T) int {
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]
		*a.Node(slot) = node[T]{Value: v}
		return slot
	}

	last := len(a.chunks) - 1
	if last < 0 || len(a.chunks[last]) == degree {
		a.chunks = append(a.chunks, make([]node[T], 0, degree))
		last++
	}
	a.chunks[last] = append(a.chunks[last], node[T]{Value: v})
	return last*degree + len(a.chunks[last])
}

func (a *arena[T]) Node(slot int) *node[T] {
	return &a.chunks[(slot-1)/degree][(slot-1)%degree]
}

func (a *arena[T]) Release(slot int) {
	*a.Node(slot) = node[T]{}
	a.free = append(a.free, slot)
}
