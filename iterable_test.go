package iterable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/iterable"
)

// Every handle kind must answer More without mutating: asking twice in a row
// without advancing gives the same answer twice.
func TestMore_idempotent(t *testing.T) {
	t.Parallel()

	ns := []int{1, 2, 3}
	subjects := map[string]iterable.Iter[int]{
		"slice":    iterable.FromSlice(ns),
		"empty":    iterable.Empty[int](),
		"counted":  iterable.Take[int](iterable.FromSlice(ns), 2),
		"cycle":    iterable.Cycle[int](iterable.FromSlice(ns)),
		"iota":     iterable.Iota(1),
		"choose":   iterable.Choose(3),
		"filter":   iterable.Filter[int](iterable.FromSlice(ns), func(n int) bool { return n > 1 }),
		"map":      iterable.Map[int, int](iterable.FromSlice(ns), func(n int) int { return n * n }),
		"until":    iterable.Until[int](iterable.FromSlice(ns), func(n int) bool { return n == 3 }),
		"fold":     iterable.Fold[int](iterable.FromSlice(ns), 0, func(acc, v int) int { return acc + v }),
		"delta":    iterable.Delta[int](iterable.FromSlice(ns)),
		"constant": iterable.Constant(42),
	}

	for name, i := range subjects {
		i := i
		t.Run(name, func(t *testing.T) {
			first := i.More()
			require.Equal(t, first, i.More())
			if !first {
				return
			}
			i.Next()
			require.Equal(t, i.More(), i.More())
		})
	}
}

// Copying a handle and advancing one copy must not affect the other.
func TestClone_independent(t *testing.T) {
	t.Parallel()

	var a iterable.Forward[int] = iterable.FromSlice([]int{1, 2, 3})
	b := a.Clone()

	b.Next()
	b.Next()

	require.Equal(t, 1, a.Value())
	require.Equal(t, 3, b.Value())
	require.False(t, a.Eq(b))

	a.Next()
	a.Next()
	require.True(t, a.Eq(b))
}

func TestRandomAccess_moveRoundTrip(t *testing.T) {
	t.Parallel()

	ns := []int{10, 20, 30, 40}
	subjects := map[string]iterable.RandomAccess[int]{
		"slice":    iterable.FromSlice(ns),
		"ptr":      iterable.Ptr(&ns[0]),
		"constant": iterable.Constant(7),
	}

	for name, i := range subjects {
		i := i
		t.Run(name, func(t *testing.T) {
			before := i.Value()
			i.Move(1)
			i.Move(-1)
			require.Equal(t, before, i.Value())
		})
	}
}

func TestRandomAccess_jumpsMatchSingleSteps(t *testing.T) {
	t.Parallel()

	ns := []int{10, 20, 30, 40}

	stepped := iterable.FromSlice(ns)
	stepped.Next()
	stepped.Next()
	stepped.Next()

	jumped := iterable.FromSlice(ns)
	jumped.Move(3)

	require.True(t, jumped.Eq(stepped))
	require.Equal(t, 3, iterable.FromSlice(ns).Distance(jumped))
	require.Equal(t, 40, jumped.At(0))
	require.Equal(t, 10, jumped.At(-3))
}

func TestContiguous_addrCongruentWithIndexing(t *testing.T) {
	t.Parallel()

	ns := []int{10, 20, 30}
	i := iterable.FromSlice(ns)
	i.Next()

	require.Same(t, &ns[1], i.Addr())
	require.Equal(t, *i.Addr(), i.At(0))

	p := iterable.Ptr(&ns[0])
	p.Next()
	require.Same(t, &ns[1], p.Addr())
}
