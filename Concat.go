package iterable

// Concat yields all elements of the first handle, then all of the second, and
// so on. The variadic form right-folds the two-way primitive, which prefers
// its first handle while it still has data.
func Concat[T any](is ...Iter[T]) Iter[T] {
	switch len(is) {
	case 0:
		return Empty[T]()
	case 1:
		return is[0]
	}
	return concat2(is[0], Concat(is[1:]...))
}

func concat2[T any](i0, i1 Iter[T]) *ConcatIter[T] {
	return &ConcatIter[T]{i0: i0, i1: i1}
}

type ConcatIter[T any] struct {
	i0, i1 Iter[T]
}

func (c *ConcatIter[T]) More() bool {
	return c.i0.More() || c.i1.More()
}

func (c *ConcatIter[T]) Value() T {
	if c.i0.More() {
		return c.i0.Value()
	}
	return c.i1.Value()
}

func (c *ConcatIter[T]) Next() {
	if c.i0.More() {
		c.i0.Next()
		return
	}
	c.i1.Next()
}

func (c *ConcatIter[T]) Clone() Forward[T] {
	return &ConcatIter[T]{i0: asForward(c.i0).Clone(), i1: asForward(c.i1).Clone()}
}

func (c *ConcatIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*ConcatIter[T])
	return ok && eqIter(c.i0, j.i0) && eqIter(c.i1, j.i1)
}

var _ Forward[int] = (*ConcatIter[int])(nil)
