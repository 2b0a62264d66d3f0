package iterable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/iterable"
)

func TestIota_arithmeticProgression(t *testing.T) {
	t.Parallel()

	i := iterable.Take[int](iterable.Iota(5), 4)
	require.Equal(t, []int{5, 6, 7, 8}, iterable.Collect[int](i))
}

func TestIota_neverTerminates(t *testing.T) {
	t.Parallel()

	i := iterable.Iota(0)
	for n := 0; n < 1000; n++ {
		require.True(t, i.More())
		i.Next()
	}
}

func TestIota_positionEquality(t *testing.T) {
	t.Parallel()

	a := iterable.Iota(3)
	b := iterable.Iota(0)
	require.False(t, a.Eq(b))

	b.Next()
	b.Next()
	b.Next()
	require.True(t, a.Eq(b))
}
