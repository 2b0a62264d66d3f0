package iterable_test

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/iterable"
)

func TestFilter(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Parallel()

	subject := func(t *testcase.T) iterable.Iter[int] {
		return iterable.Filter[int](
			t.I(`input stream`).(iterable.Iter[int]),
			t.I(`selector`).(func(int) bool))
	}

	s.Let(`input stream`, func(t *testcase.T) interface{} {
		return iterable.Iter[int](iterable.FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}))
	})

	s.When(`the selector allows everything`, func(s *testcase.Spec) {
		s.Let(`selector`, func(t *testcase.T) interface{} {
			return func(int) bool { return true }
		})

		s.Then(`every element is yielded`, func(t *testcase.T) {
			require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, iterable.Collect[int](subject(t)))
		})
	})

	s.When(`the selector disallows part of the value stream`, func(s *testcase.Spec) {
		s.Let(`selector`, func(t *testcase.T) interface{} {
			return func(n int) bool { return 5 < n }
		})

		s.Then(`only matching elements are yielded`, func(t *testcase.T) {
			require.Equal(t, []int{6, 7, 8, 9}, iterable.Collect[int](subject(t)))
		})

		s.Then(`the leading skip already happened when the constructor returned`, func(t *testcase.T) {
			i := subject(t)
			require.True(t, i.More())
			require.Equal(t, 6, i.Value())
		})
	})

	s.When(`the selector disallows everything`, func(s *testcase.Spec) {
		s.Let(`selector`, func(t *testcase.T) interface{} {
			return func(int) bool { return false }
		})

		s.Then(`the iterator is terminated from the start`, func(t *testcase.T) {
			require.False(t, subject(t).More())
		})
	})
}

func TestFilter_composition(t *testing.T) {
	t.Parallel()

	square := func(n int) int { return n * n }
	isEven := func(n int) bool { return n%2 == 0 }

	i := iterable.Filter[int](iterable.Map[int, int](iterable.FromSlice([]int{1, 2, 3, 4}), square), isEven)
	require.Equal(t, []int{4, 16}, iterable.Collect[int](i))
}

func TestFilter_equalityIgnoresSelector(t *testing.T) {
	t.Parallel()

	ns := []int{2, 4, 6}
	a := iterable.Filter[int](iterable.FromSlice(ns), func(n int) bool { return n > 0 })
	b := iterable.Filter[int](iterable.FromSlice(ns), func(n int) bool { return n < 10 })

	require.True(t, a.Eq(b))
}
