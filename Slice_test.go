package iterable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/iterable"
)

func TestFromSlice_traversal(t *testing.T) {
	t.Parallel()

	i := iterable.FromSlice([]int{1, 2, 3})

	var got []int
	for ; i.More(); i.Next() {
		got = append(got, i.Value())
	}

	require.Equal(t, []int{1, 2, 3}, got)
	require.False(t, i.More())
}

func TestFromSlice_nextPastEndPanics(t *testing.T) {
	t.Parallel()

	i := iterable.FromSlice([]int{1})
	i.Next()

	require.False(t, i.More())
	require.Panics(t, func() { i.Next() })
	require.Panics(t, func() { _ = i.Value() })
}

func TestFromSlice_size(t *testing.T) {
	t.Parallel()

	i := iterable.FromSlice([]int{1, 2, 3})
	require.Equal(t, 3, i.Size())
	i.Next()
	require.Equal(t, 2, i.Size())
	i.Next()
	i.Next()
	require.Equal(t, 0, i.Size())
}

func TestFromSlice_backAndEnd(t *testing.T) {
	t.Parallel()

	i := iterable.FromSlice([]int{1, 2, 3})

	back := i.Back()
	require.True(t, back.More())
	require.Equal(t, 3, back.Value())

	end := i.End()
	require.False(t, end.More())

	// bidirectional: stepping back from the end reaches the last element
	e := end.Clone().(*iterable.SliceIter[int])
	e.Prev()
	require.True(t, e.Eq(back))
}

func TestFromSlice_eqMeansSameBackingAndPosition(t *testing.T) {
	t.Parallel()

	ns := []int{1, 2, 3}
	a := iterable.FromSlice(ns)
	b := iterable.FromSlice(ns)
	require.True(t, a.Eq(b))

	b.Next()
	require.False(t, a.Eq(b))

	// equal content over different storage is a different logical sequence
	c := iterable.FromSlice([]int{1, 2, 3})
	require.False(t, a.Eq(c))
}

func TestFromSlice_writeThrough(t *testing.T) {
	t.Parallel()

	ns := []int{1, 2, 3}
	i := iterable.FromSlice(ns)
	for ; i.More(); i.Next() {
		i.Put(i.Value() * 10)
	}

	require.Equal(t, []int{10, 20, 30}, ns)
}
