package slist

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// List is a singly linked list of ordered values.
// The zero value is an empty list ready to use. It is not safe for concurrent use.
type List[T Ordered] struct {
	nodes *arena[T]
	head  int
	count int
}

// New returns an empty list.
func New[T Ordered]() *List[T] {
	return &List[T]{}
}

// Add appends value to the end of the list.
func (l *List[T]) Add(value T) {
	if l.nodes == nil {
		l.nodes = newArena[T]()
	}

	slot := l.nodes.Alloc(value)
	l.count++

	if l.head == none {
		l.head = slot
		return
	}

	tail := l.head
	for next := l.nodes.Node(tail).Next; next != none; next = l.nodes.Node(tail).Next {
		tail = next
	}
	l.nodes.Node(tail).Next = slot
}

// Remove deletes the element at index.
func (l *List[T]) Remove(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}

	prev := none
	slot := l.head
	for i := 0; i < index; i++ {
		prev = slot
		slot = l.nodes.Node(slot).Next
	}

	*l.link(prev) = l.nodes.Node(slot).Next
	l.nodes.Release(slot)
	l.count--

	return nil
}

// Contains reports whether value is stored in the list.
// Values are compared with ==, so NaN is never found.
func (l *List[T]) Contains(value T) bool {
	return l.Find(value) >= 0
}

// Find returns the index of the first element equal to value or -1 if there is none.
// Values are compared with ==, so Find(NaN) always returns -1.
func (l *List[T]) Find(value T) int {
	for i, slot := 0, l.head; slot != none; i, slot = i+1, l.nodes.Node(slot).Next {
		if l.nodes.Node(slot).Value == value {
			return i
		}
	}
	return -1
}

// Size returns the number of elements.
func (l *List[T]) Size() int {
	return l.count
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var v T
		return v, err
	}

	slot := l.head
	for i := 0; i < index; i++ {
		slot = l.nodes.Node(slot).Next
	}
	return l.nodes.Node(slot).Value, nil
}

// Copy returns new list containing the same values in the same order.
func (l *List[T]) Copy() *List[T] {
	c := &List[T]{nodes: newArena[T]()}

	tail := none
	for slot := l.head; slot != none; slot = l.nodes.Node(slot).Next {
		newSlot := c.nodes.Alloc(l.nodes.Node(slot).Value)
		*c.link(tail) = newSlot
		tail = newSlot
	}
	c.count = l.count

	return c
}

// Sort orders the list ascending.
//
// Values never move between nodes. For each position the minimum of the remaining suffix
// is unlinked and linked back in front of that position, so only the links change.
func (l *List[T]) Sort() {
	sortedTail := none
	for i := 0; i < l.count; i++ {
		start := *l.link(sortedTail)

		minSlot, minPrev := start, none
		prev := start
		for slot := l.nodes.Node(start).Next; slot != none; slot = l.nodes.Node(slot).Next {
			if l.nodes.Node(slot).Value < l.nodes.Node(minSlot).Value {
				minSlot, minPrev = slot, prev
			}
			prev = slot
		}

		if minSlot != start {
			minNode := l.nodes.Node(minSlot)
			l.nodes.Node(minPrev).Next = minNode.Next
			minNode.Next = start
			*l.link(sortedTail) = minSlot
		}
		sortedTail = minSlot
	}
}

// String renders values in list order.
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for slot := l.head; slot != none; slot = l.nodes.Node(slot).Next {
		if slot != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, l.nodes.Node(slot).Value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// link returns the link pointing to the node following prev, head if prev is none.
func (l *List[T]) link(prev int) *int {
	if prev == none {
		return &l.head
	}
	return &l.nodes.Node(prev).Next
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.count {
		return errors.Wrapf(ErrIndexOutOfBounds, "index %d, size %d", index, l.count)
	}
	return nil
}
