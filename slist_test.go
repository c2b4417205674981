package slist_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/slist"
)

func newList(values ...int) *slist.List[int] {
	l := slist.New[int]()
	for _, v := range values {
		l.Add(v)
	}
	return l
}

func requireValues[T slist.Ordered](requireT *require.Assertions, l *slist.List[T], expected ...T) {
	requireT.Equal(len(expected), l.Size())
	for i, v := range expected {
		actual, err := l.Get(i)
		requireT.NoError(err)
		requireT.Equal(v, actual, "index %d", i)
	}
}

func TestAdd(t *testing.T) {
	requireT := require.New(t)

	l := slist.New[int]()
	requireT.Equal(0, l.Size())

	l.Add(10)
	v, err := l.Get(0)
	requireT.NoError(err)
	requireT.Equal(10, v)

	l.Add(30)
	l.Add(5)
	l.Add(20)
	requireValues(requireT, l, 10, 30, 5, 20)
}

func TestZeroValue(t *testing.T) {
	requireT := require.New(t)

	var l slist.List[int]
	requireT.Equal(0, l.Size())
	requireT.False(l.Contains(1))
	requireT.Equal(-1, l.Find(1))
	requireT.Equal("[]", l.String())
	l.Sort()

	_, err := l.Get(0)
	requireT.ErrorIs(err, slist.ErrIndexOutOfBounds)
	requireT.ErrorIs(l.Remove(0), slist.ErrIndexOutOfBounds)
	requireT.Equal(0, l.Copy().Size())

	l.Add(10)
	l.Add(30)
	l.Add(5)
	requireValues(requireT, &l, 10, 30, 5)

	c := l.Copy()
	requireT.NoError(l.Remove(0))
	requireValues(requireT, &l, 30, 5)
	requireValues(requireT, c, 10, 30, 5)
}

func TestNaNIsNeverFound(t *testing.T) {
	requireT := require.New(t)

	l := slist.New[float64]()
	l.Add(1)
	l.Add(math.NaN())

	requireT.Equal(2, l.Size())
	requireT.False(l.Contains(math.NaN()))
	requireT.Equal(-1, l.Find(math.NaN()))
	requireT.Equal(0, l.Find(1))
}

func TestGet(t *testing.T) {
	requireT := require.New(t)

	l := newList(10, 30, 5, 20)
	v, err := l.Get(1)
	requireT.NoError(err)
	requireT.Equal(30, v)

	v, err = l.Get(3)
	requireT.NoError(err)
	requireT.Equal(20, v)
}

func TestOutOfBounds(t *testing.T) {
	requireT := require.New(t)

	empty := slist.New[int]()
	full := newList(10, 30, 5, 20)

	for _, tc := range []struct {
		list  *slist.List[int]
		index int
	}{
		{list: empty, index: 0},
		{list: empty, index: -1},
		{list: empty, index: 1},
		{list: full, index: -1},
		{list: full, index: 4},
		{list: full, index: 100},
	} {
		_, err := tc.list.Get(tc.index)
		requireT.Error(err)
		requireT.True(errors.Is(err, slist.ErrIndexOutOfBounds))
		requireT.Contains(err.Error(), "index out of bounds")

		err = tc.list.Remove(tc.index)
		requireT.True(errors.Is(err, slist.ErrIndexOutOfBounds))
	}

	requireValues(requireT, full, 10, 30, 5, 20)
	requireT.Equal(0, empty.Size())
}

func TestRemove(t *testing.T) {
	requireT := require.New(t)

	l := newList(10, 30, 5, 20)
	requireT.NoError(l.Remove(1))
	requireValues(requireT, l, 10, 5, 20)

	requireT.NoError(l.Remove(0))
	requireValues(requireT, l, 5, 20)

	requireT.NoError(l.Remove(1))
	requireValues(requireT, l, 5)

	_, err := l.Get(1)
	requireT.True(errors.Is(err, slist.ErrIndexOutOfBounds))

	requireT.NoError(l.Remove(0))
	requireT.Equal(0, l.Size())
	requireT.Equal("[]", l.String())

	l.Add(7)
	requireValues(requireT, l, 7)
}

func TestContainsAndFind(t *testing.T) {
	requireT := require.New(t)

	l := newList(10, 30, 5, 20, 30)
	requireT.True(l.Contains(10))
	requireT.True(l.Contains(20))
	requireT.False(l.Contains(100))

	requireT.Equal(0, l.Find(10))
	requireT.Equal(1, l.Find(30))
	requireT.Equal(3, l.Find(20))
	requireT.Equal(-1, l.Find(100))

	requireT.NoError(l.Remove(1))
	requireT.True(l.Contains(30))
	requireT.Equal(3, l.Find(30))

	requireT.NoError(l.Remove(3))
	requireT.False(l.Contains(30))
	requireT.Equal(-1, l.Find(30))

	requireT.False(slist.New[int]().Contains(0))
	requireT.Equal(-1, slist.New[int]().Find(0))
}

func TestCopy(t *testing.T) {
	requireT := require.New(t)

	l := newList(10, 30, 5, 20)
	c := l.Copy()
	requireValues(requireT, c, 10, 30, 5, 20)

	requireT.NoError(c.Remove(0))
	c.Add(99)
	c.Sort()
	requireValues(requireT, c, 5, 20, 30, 99)
	requireValues(requireT, l, 10, 30, 5, 20)

	l.Add(1)
	requireT.False(c.Contains(1))

	requireT.Equal(0, slist.New[string]().Copy().Size())
}

func TestSort(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "empty", input: []int{}, expected: []int{}},
		{name: "single", input: []int{7}, expected: []int{7}},
		{name: "canonical", input: []int{10, 30, 5, 20}, expected: []int{5, 10, 20, 30}},
		{name: "sorted", input: []int{1, 2, 3, 4, 5}, expected: []int{1, 2, 3, 4, 5}},
		{name: "reversed", input: []int{5, 4, 3, 2, 1}, expected: []int{1, 2, 3, 4, 5}},
		{name: "duplicates", input: []int{3, 1, 3, 2, 1}, expected: []int{1, 1, 2, 3, 3}},
		{name: "negative", input: []int{0, -5, 12, -7}, expected: []int{-7, -5, 0, 12}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			requireT := require.New(t)

			l := newList(tc.input...)
			l.Sort()
			requireValues(requireT, l, tc.expected...)
		})
	}
}

func TestSortStrings(t *testing.T) {
	requireT := require.New(t)

	l := slist.New[string]()
	for _, v := range []string{"delta", "alpha", "charlie", "bravo"} {
		l.Add(v)
	}
	l.Sort()
	requireValues(requireT, l, "alpha", "bravo", "charlie", "delta")
	requireT.Equal("[alpha bravo charlie delta]", l.String())
}

func TestScenario(t *testing.T) {
	requireT := require.New(t)

	l := newList(10, 30, 5, 20)
	requireT.Equal(4, l.Size())
	requireT.Equal("[10 30 5 20]", l.String())

	sorted := l.Copy()
	sorted.Sort()
	requireT.Equal("[5 10 20 30]", sorted.String())

	requireT.NoError(l.Remove(1))
	requireT.Equal(3, l.Size())
	v, err := l.Get(1)
	requireT.NoError(err)
	requireT.Equal(5, v)
	requireT.Equal(-1, l.Find(100))

	l.Sort()
	requireValues(requireT, l, 5, 10, 20)
}
