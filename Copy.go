package iterable

// Copy advances a source and a destination handle in lockstep, writing each
// source element through the destination, and stops as soon as either side
// terminates. The source is read from an independent copy when it supports
// cloning; the destination is advanced in place. Returns the number of
// elements written.
func Copy[T any](dst Output[T], src Iter[T]) int {
	src = cloneIter(src)
	var n int
	for src.More() && dst.More() {
		dst.Put(src.Value())
		dst.Next()
		src.Next()
		n++
	}
	return n
}

// CopyN is Copy bounded to at most n writes.
func CopyN[T any](dst Output[T], src Iter[T], n int) int {
	src = cloneIter(src)
	var written int
	for written < n && src.More() && dst.More() {
		dst.Put(src.Value())
		dst.Next()
		src.Next()
		written++
	}
	return written
}
