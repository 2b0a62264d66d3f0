package iterable

// Filter yields only the elements that the selector matches. The skip to the
// next matching element happens in the constructor and after every advance,
// so More and Value are always consistent with "next matching element, or
// none".
func Filter[T any](i Iter[T], selector func(T) bool) *FilterIter[T] {
	f := &FilterIter[T]{src: i, match: selector}
	f.skip()
	return f
}

type FilterIter[T any] struct {
	src   Iter[T]
	match func(T) bool
}

func (f *FilterIter[T]) skip() {
	for f.src.More() && !f.match(f.src.Value()) {
		f.src.Next()
	}
}

func (f *FilterIter[T]) More() bool {
	return f.src.More()
}

func (f *FilterIter[T]) Value() T {
	return f.src.Value()
}

func (f *FilterIter[T]) Next() {
	f.src.Next()
	f.skip()
}

func (f *FilterIter[T]) Clone() Forward[T] {
	return &FilterIter[T]{src: asForward(f.src).Clone(), match: f.match}
}

// Eq compares the inner handles only; the selector is considered part of the
// handle's type, not its state.
func (f *FilterIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*FilterIter[T])
	return ok && eqIter(f.src, j.src)
}

var _ Forward[int] = (*FilterIter[int])(nil)
