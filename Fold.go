package iterable

import "reflect"

// Fold yields the sequence of partial reduction results, not a single final
// value: the current element is the accumulator before the next inner element
// is consumed. Advancing combines the accumulator with the inner handle's
// current element and then advances the inner handle, so the handle
// terminates together with its source. For a source of n elements the first
// n partial results are observable, starting with the seed itself.
//
// Reduction to a single scalar is a plain drain; see Sum and Prod.
func Fold[T any](i Iter[T], seed T, op func(acc, v T) T) *FoldIter[T] {
	return &FoldIter[T]{src: i, acc: seed, op: op}
}

type FoldIter[T any] struct {
	src Iter[T]
	acc T
	op  func(acc, v T) T
}

func (f *FoldIter[T]) More() bool {
	return f.src.More()
}

func (f *FoldIter[T]) Value() T {
	return f.acc
}

func (f *FoldIter[T]) Next() {
	if !f.src.More() {
		panic("iterable: Next past the end of a fold")
	}
	f.acc = f.op(f.acc, f.src.Value())
	f.src.Next()
}

func (f *FoldIter[T]) Clone() Forward[T] {
	return &FoldIter[T]{src: asForward(f.src).Clone(), acc: f.acc, op: f.op}
}

// Eq compares the inner handle and the accumulator; the operation is
// considered part of the handle's type, not its state.
func (f *FoldIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*FoldIter[T])
	return ok && eqIter(f.src, j.src) && reflect.DeepEqual(f.acc, j.acc)
}

// Sum drains a copy of the handle and adds up its elements.
func Sum[T Number](i Iter[T]) T {
	var t T
	for i = cloneIter(i); i.More(); i.Next() {
		t += i.Value()
	}
	return t
}

// Prod drains a copy of the handle and multiplies up its elements.
func Prod[T Number](i Iter[T]) T {
	t := T(1)
	for i = cloneIter(i); i.More(); i.Next() {
		t *= i.Value()
	}
	return t
}

var _ Forward[int] = (*FoldIter[int])(nil)
