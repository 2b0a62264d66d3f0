// Package iterable provides composable sequence-traversal handles.
//
// Every handle bundles its own termination test, so "is there more data" and
// "read / advance" are all properties of the handle itself; there is no
// separate end-marker object to pair it with. The consumption loop is always
// the same three steps:
//
//	for i.More() {
//		v := i.Value()
//		// use v
//		i.Next()
//	}
//
// Handles are small values. Combinators such as Filter, Map or Merge own
// their inner handles and recompute More/Value/Next in terms of them, so
// pipelines are built by plain function composition:
//
//	iterable.Filter(iterable.Map(iterable.FromSlice(ns), square), isEven)
//
// Interface design inspirited by the iterator pattern
// https://en.wikipedia.org/wiki/Iterator_pattern
// and by C++ iterator categories, where each capability tier is a superset of
// the ones below it.
//
// Calling Value or Next on a handle whose More already reported false is a
// caller bug; handles fail loudly (panic) instead of returning stale data.
//
// Handles over externally owned storage (Ptr, FromSlice, Interval) never own
// the backing memory; the caller keeps it alive. Reading the same storage
// through multiple handles is fine as long as nothing writes through any of
// them; the package provides no synchronization of its own.
package iterable

import "golang.org/x/exp/constraints"

// Iter is the input tier: the minimal read-side handle.
type Iter[T any] interface {
	// More reports whether the handle still denotes a valid current element.
	// It is idempotent and never mutates the handle.
	More() bool
	// Value returns the current element. Valid only while More reports true.
	Value() T
	// Next advances to the next element. Valid only while More reports true;
	// More must be re-checked before the next access.
	Next()
}

// Output is the write-side counterpart of Iter, used as the destination of
// Copy style algorithms. Put writes the current element, Next advances.
type Output[T any] interface {
	More() bool
	Put(v T)
	Next()
}

// Forward handles can be copied and re-traversed from the copy, and compared
// by logical position.
type Forward[T any] interface {
	Iter[T]
	// Clone returns an independently advanceable copy of the handle.
	// Advancing the copy must not affect the original.
	Clone() Forward[T]
	// Eq reports whether both handles denote the same logical position in the
	// same logical sequence. Captured callables never participate.
	Eq(o Forward[T]) bool
}

// Bidirectional handles can also retreat.
type Bidirectional[T any] interface {
	Forward[T]
	// Prev moves one step back. Symmetric precondition to Next: the position
	// one step back must exist.
	Prev()
}

// RandomAccess handles support constant-time jumps, consistent with the
// equivalent number of single steps.
type RandomAccess[T any] interface {
	Bidirectional[T]
	// Move advances by n steps; n may be negative.
	Move(n int)
	// Distance returns how many forward steps take this handle to o.
	Distance(o RandomAccess[T]) int
	// At returns the element n steps away without moving.
	At(n int) T
}

// Contiguous handles additionally guarantee the current element occupies a
// stable, arithmetic-addressable location congruent with At.
type Contiguous[T any] interface {
	RandomAccess[T]
	Addr() *T
}

// Number is the constraint used by the arithmetic generators and Delta.
type Number interface {
	constraints.Integer | constraints.Float
}

// asForward is used by combinators when cloning their inner handle.
func asForward[T any](i Iter[T]) Forward[T] {
	f, ok := i.(Forward[T])
	if !ok {
		panic("iterable: inner iterator does not support Clone")
	}
	return f
}

// eqIter compares two inner handles by position, false when either side does
// not support position equality.
func eqIter[T any](a, b Iter[T]) bool {
	af, aok := a.(Forward[T])
	bf, bok := b.(Forward[T])
	return aok && bok && af.Eq(bf)
}

// cloneIter returns an independent copy when the handle supports it, and the
// handle itself otherwise. Algorithms use it so that querying a sequence does
// not consume the caller's handle.
func cloneIter[T any](i Iter[T]) Iter[T] {
	if f, ok := i.(Forward[T]); ok {
		return f.Clone()
	}
	return i
}
