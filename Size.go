package iterable

// Size returns the number of remaining elements. Handles that know their size
// in O(1) report it through an optional Size() int method (FromSlice does);
// everything else is counted by brute-force advancing an independent copy.
// Never call it on an unbounded handle without such a method.
func Size[T any](i Iter[T]) int {
	if s, ok := i.(interface{ Size() int }); ok {
		return s.Size()
	}
	i = cloneIter(i)
	var n int
	for i.More() {
		i.Next()
		n++
	}
	return n
}

// Drop returns a handle advanced by up to n elements: n steps, or to
// termination, whichever comes first. Works on an independent copy when the
// handle supports cloning.
func Drop[T any](i Iter[T], n int) Iter[T] {
	i = cloneIter(i)
	for ; n > 0 && i.More(); n-- {
		i.Next()
	}
	return i
}

// Back returns a handle positioned on the last reachable element, via the
// optional Back() method when the handle has one, by brute-force advance
// otherwise. On an already terminated handle it returns a clone of it
// unchanged.
func Back[T any](i Forward[T]) Forward[T] {
	if b, ok := i.(interface{ Back() Forward[T] }); ok {
		return b.Back()
	}
	c := i.Clone()
	last := c.Clone()
	for c.More() {
		last = c.Clone()
		c.Next()
	}
	return last
}

// End returns the handle advanced to termination, via the optional End()
// method when the handle has one (Interval, FromSlice), by brute-force
// advance otherwise.
func End[T any](i Forward[T]) Forward[T] {
	if e, ok := i.(interface{ End() Forward[T] }); ok {
		return e.End()
	}
	c := i.Clone()
	for c.More() {
		c.Next()
	}
	return c
}
