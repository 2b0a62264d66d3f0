package iterable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/iterable"
)

func TestCycle_wrapsAround(t *testing.T) {
	t.Parallel()

	c := iterable.Cycle[int](iterable.FromSlice([]int{1, 2, 3}))
	i := iterable.Take[int](c, 7)

	require.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, iterable.Collect[int](i))
}

func TestCycle_emptySourceStaysEmpty(t *testing.T) {
	t.Parallel()

	c := iterable.Cycle[int](iterable.FromSlice([]int{}))
	require.False(t, c.More())
}

func TestCycle_capturesStartAtConstruction(t *testing.T) {
	t.Parallel()

	src := iterable.FromSlice([]int{1, 2, 3})
	src.Next()

	// the captured start is wherever the source stood when Cycle was built
	c := iterable.Cycle[int](src)
	i := iterable.Take[int](c, 5)

	require.Equal(t, []int{2, 3, 2, 3, 2}, iterable.Collect[int](i))
}

func TestCycle_cloneIsIndependent(t *testing.T) {
	t.Parallel()

	a := iterable.Cycle[int](iterable.FromSlice([]int{1, 2}))
	b := a.Clone()
	b.Next()

	require.Equal(t, 1, a.Value())
	require.Equal(t, 2, b.Value())
}
