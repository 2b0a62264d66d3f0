package iterable

// Until terminates at the first element that satisfies the stop predicate;
// that element itself is excluded from the produced sequence.
func Until[T any](i Iter[T], stop func(T) bool) *UntilIter[T] {
	return &UntilIter[T]{src: i, stop: stop}
}

type UntilIter[T any] struct {
	src  Iter[T]
	stop func(T) bool
}

func (u *UntilIter[T]) More() bool {
	return u.src.More() && !u.stop(u.src.Value())
}

func (u *UntilIter[T]) Value() T {
	return u.src.Value()
}

func (u *UntilIter[T]) Next() {
	u.src.Next()
}

func (u *UntilIter[T]) Clone() Forward[T] {
	return &UntilIter[T]{src: asForward(u.src).Clone(), stop: u.stop}
}

// Eq compares the inner handles only; the predicate is considered part of the
// handle's type, not its state.
func (u *UntilIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*UntilIter[T])
	return ok && eqIter(u.src, j.src)
}

var _ Forward[int] = (*UntilIter[int])(nil)
