package iterable

import "unsafe"

// FromSlice wraps a slice as a contiguous, writable range over its elements.
// The handle does not own the backing array and the caller must keep it
// alive; advancing never reallocates or resizes.
func FromSlice[T any](s []T) *SliceIter[T] {
	return &SliceIter[T]{s: s}
}

type SliceIter[T any] struct {
	s []T
	i int
}

func (i *SliceIter[T]) More() bool {
	return 0 <= i.i && i.i < len(i.s)
}

func (i *SliceIter[T]) Value() T {
	return i.s[i.i]
}

// Put writes the current element in place.
func (i *SliceIter[T]) Put(v T) {
	i.s[i.i] = v
}

func (i *SliceIter[T]) Next() {
	if !i.More() {
		panic("iterable: Next past the end of a slice range")
	}
	i.i++
}

func (i *SliceIter[T]) Prev() {
	i.i--
}

func (i *SliceIter[T]) Move(n int) {
	i.i += n
}

func (i *SliceIter[T]) Distance(o RandomAccess[T]) int {
	j, ok := o.(*SliceIter[T])
	if !ok || unsafe.SliceData(i.s) != unsafe.SliceData(j.s) {
		panic("iterable: Distance between unrelated handles")
	}
	return j.i - i.i
}

func (i *SliceIter[T]) At(n int) T {
	return i.s[i.i+n]
}

func (i *SliceIter[T]) Addr() *T {
	return &i.s[i.i]
}

// Size reports the number of remaining elements in O(1),
// the fast path probed by Size and Take.
func (i *SliceIter[T]) Size() int {
	if !i.More() {
		return 0
	}
	return len(i.s) - i.i
}

// Back returns a handle positioned on the last element.
func (i *SliceIter[T]) Back() Forward[T] {
	return &SliceIter[T]{s: i.s, i: len(i.s) - 1}
}

// End returns the handle one past the last element.
func (i *SliceIter[T]) End() Forward[T] {
	return &SliceIter[T]{s: i.s, i: len(i.s)}
}

func (i *SliceIter[T]) Clone() Forward[T] {
	c := *i
	return &c
}

// Eq holds only for handles at the same index over the same backing array.
func (i *SliceIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*SliceIter[T])
	return ok &&
		unsafe.SliceData(i.s) == unsafe.SliceData(j.s) &&
		len(i.s) == len(j.s) &&
		i.i == j.i
}

var (
	_ Contiguous[int] = (*SliceIter[int])(nil)
	_ Output[int]     = (*SliceIter[int])(nil)
)
