package iterable

// Cycle repeats the elements of a handle forever by rewinding to a copy of
// its start whenever an advance would exhaust it. Cycling a handle that is
// already terminated yields a terminated handle rather than looping.
func Cycle[T any](i Forward[T]) *CycleIter[T] {
	return &CycleIter[T]{src: i.Clone(), start: i.Clone()}
}

type CycleIter[T any] struct {
	src, start Forward[T]
}

func (c *CycleIter[T]) More() bool {
	return c.src.More()
}

func (c *CycleIter[T]) Value() T {
	return c.src.Value()
}

func (c *CycleIter[T]) Next() {
	c.src.Next()
	if !c.src.More() {
		c.src = c.start.Clone()
	}
}

func (c *CycleIter[T]) Clone() Forward[T] {
	return &CycleIter[T]{src: c.src.Clone(), start: c.start.Clone()}
}

func (c *CycleIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*CycleIter[T])
	return ok && c.src.Eq(j.src) && c.start.Eq(j.start)
}

var _ Forward[int] = (*CycleIter[int])(nil)
