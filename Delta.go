package iterable

import "reflect"

// Delta yields the pairwise differences of a sequence: for input elements
// x0, x1, x2, ... it yields x1-x0, x2-x1, ... The first element only seeds
// "previous" and does not appear in the output, so the result is one element
// shorter than the input.
func Delta[T Number](i Iter[T]) *DeltaIter[T, T] {
	return DeltaBy(i, func(cur, prev T) T { return cur - prev })
}

// Uptick is Delta with the difference clamped to be non-negative.
func Uptick[T Number](i Iter[T]) *DeltaIter[T, T] {
	return DeltaBy(i, func(cur, prev T) T { return max(cur-prev, 0) })
}

// Downtick is Delta with the difference clamped to be non-positive.
// Uptick and Downtick sum elementwise back to Delta.
func Downtick[T Number](i Iter[T]) *DeltaIter[T, T] {
	return DeltaBy(i, func(cur, prev T) T { return min(cur-prev, 0) })
}

// DeltaBy generalizes Delta to an arbitrary binary difference operation,
// called as diff(current, previous).
func DeltaBy[T, U any](i Iter[T], diff func(cur, prev T) U) *DeltaIter[T, U] {
	d := &DeltaIter[T, U]{src: i, diff: diff}
	if i.More() {
		d.prev = i.Value()
		i.Next()
	}
	return d
}

type DeltaIter[T, U any] struct {
	src  Iter[T]
	prev T
	diff func(cur, prev T) U
}

func (d *DeltaIter[T, U]) More() bool {
	return d.src.More()
}

func (d *DeltaIter[T, U]) Value() U {
	return d.diff(d.src.Value(), d.prev)
}

func (d *DeltaIter[T, U]) Next() {
	if !d.src.More() {
		panic("iterable: Next past the end of a delta")
	}
	d.prev = d.src.Value()
	d.src.Next()
}

func (d *DeltaIter[T, U]) Clone() Forward[U] {
	return &DeltaIter[T, U]{src: asForward(d.src).Clone(), prev: d.prev, diff: d.diff}
}

// Eq compares the inner handle and the seeded previous element; the
// difference operation is considered part of the handle's type, not its
// state.
func (d *DeltaIter[T, U]) Eq(o Forward[U]) bool {
	j, ok := o.(*DeltaIter[T, U])
	return ok && eqIter(d.src, j.src) && reflect.DeepEqual(d.prev, j.prev)
}

var _ Forward[int] = (*DeltaIter[int, int])(nil)
