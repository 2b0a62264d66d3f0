package iterable

import "reflect"

// Constant repeats a single value forever. Movement in any direction and by
// any distance is a no-op, which makes it a degenerate random-access range:
// every position is the same position.
func Constant[T any](v T) *ConstantIter[T] {
	return &ConstantIter[T]{v: v}
}

// Once yields a single value, Constant bounded to one element.
func Once[T any](v T) *CountedIter[T] {
	return Take[T](Constant(v), 1)
}

type ConstantIter[T any] struct {
	v T
}

func (c *ConstantIter[T]) More() bool { return true }
func (c *ConstantIter[T]) Value() T   { return c.v }
func (c *ConstantIter[T]) Next()      {}
func (c *ConstantIter[T]) Prev()      {}
func (c *ConstantIter[T]) Move(n int) {}
func (c *ConstantIter[T]) At(n int) T { return c.v }

func (c *ConstantIter[T]) Distance(o RandomAccess[T]) int {
	return 0
}

func (c *ConstantIter[T]) Clone() Forward[T] {
	cc := *c
	return &cc
}

func (c *ConstantIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*ConstantIter[T])
	return ok && reflect.DeepEqual(c.v, j.v)
}

var _ RandomAccess[int] = (*ConstantIter[int])(nil)
