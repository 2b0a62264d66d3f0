package iterable

// Counted bounds a handle by a remaining element count: the range [i, i+n).
// The handle terminates when the count reaches zero or when the inner handle
// runs out of data, whichever happens first; inner exhaustion before the
// count is not an error.
func Counted[T any](i Iter[T], n int) *CountedIter[T] {
	return &CountedIter[T]{src: i, n: n}
}

// Take is Counted with the count clamped to the inner handle's size whenever
// the size is known without consuming it.
func Take[T any](i Iter[T], n int) *CountedIter[T] {
	if s, ok := i.(interface{ Size() int }); ok && s.Size() < n {
		n = s.Size()
	}
	return Counted(i, n)
}

type CountedIter[T any] struct {
	src Iter[T]
	n   int
}

func (c *CountedIter[T]) More() bool {
	return c.n != 0 && c.src.More()
}

func (c *CountedIter[T]) Value() T {
	if !c.More() {
		panic("iterable: Value on a terminated counted range")
	}
	return c.src.Value()
}

func (c *CountedIter[T]) Next() {
	if !c.More() {
		panic("iterable: Next past the end of a counted range")
	}
	c.src.Next()
	c.n--
}

func (c *CountedIter[T]) Clone() Forward[T] {
	return &CountedIter[T]{src: asForward(c.src).Clone(), n: c.n}
}

func (c *CountedIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*CountedIter[T])
	return ok && c.n == j.n && eqIter(c.src, j.src)
}

var _ Forward[int] = (*CountedIter[int])(nil)
