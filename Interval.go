package iterable

// Interval bounds a handle by a fixed end position of the same kind: the
// range [i, e). The handle terminates once the current position equals e.
func Interval[T any](i, e Forward[T]) *IntervalIter[T] {
	return &IntervalIter[T]{i: i.Clone(), e: e.Clone()}
}

type IntervalIter[T any] struct {
	i, e Forward[T]
}

func (r *IntervalIter[T]) More() bool {
	return !r.i.Eq(r.e)
}

func (r *IntervalIter[T]) Value() T {
	return r.i.Value()
}

func (r *IntervalIter[T]) Next() {
	if !r.More() {
		panic("iterable: Next past the end of an interval")
	}
	r.i.Next()
}

// Begin returns the interval itself.
func (r *IntervalIter[T]) Begin() Forward[T] {
	return r.Clone()
}

// End returns the interval collapsed to (e, e).
func (r *IntervalIter[T]) End() Forward[T] {
	return &IntervalIter[T]{i: r.e.Clone(), e: r.e.Clone()}
}

func (r *IntervalIter[T]) Clone() Forward[T] {
	return &IntervalIter[T]{i: r.i.Clone(), e: r.e.Clone()}
}

func (r *IntervalIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*IntervalIter[T])
	return ok && r.i.Eq(j.i) && r.e.Eq(j.e)
}

var _ Forward[int] = (*IntervalIter[int])(nil)
