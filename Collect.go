package iterable

// Collect drains an independent copy of the handle into a new slice.
// Don't call it on an unbounded handle; bound it with Take or Until first.
func Collect[T any](i Iter[T]) []T {
	var vs []T
	for i = cloneIter(i); i.More(); i.Next() {
		vs = append(vs, i.Value())
	}
	return vs
}

// Count iterates over a copy of the handle and counts the total iterations
// number.
//
// Good when all you want is to count the elements and don't want to do
// anything else with them.
func Count[T any](i Iter[T]) int {
	var total int
	for i = cloneIter(i); i.More(); i.Next() {
		total++
	}
	return total
}

// First returns the first element of the handle, and false when there is
// none.
func First[T any](i Iter[T]) (T, bool) {
	i = cloneIter(i)
	if !i.More() {
		var zero T
		return zero, false
	}
	return i.Value(), true
}

// Last drains a copy of the handle and returns its final element, and false
// when there is none.
func Last[T any](i Iter[T]) (T, bool) {
	i = cloneIter(i)
	var (
		v        T
		iterated bool
	)
	for ; i.More(); i.Next() {
		v = i.Value()
		iterated = true
	}
	return v, iterated
}
