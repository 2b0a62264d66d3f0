package iterable

import "cmp"

// Merge yields the elements of individually sorted handles in sorted order.
// Each input must already be sorted ascending; this is an unchecked
// precondition, and unsorted input produces an unspecified (but well-formed)
// sequence. The variadic form right-folds the two-way primitive.
func Merge[T cmp.Ordered](is ...Iter[T]) Iter[T] {
	switch len(is) {
	case 0:
		return Empty[T]()
	case 1:
		return is[0]
	}
	return MergeBy(is[0], Merge(is[1:]...), func(a, b T) bool { return a < b })
}

// MergeBy is the two-way merge under an explicit strict ordering.
//
// While both handles have data the lesser head is taken. When the heads are
// equivalent (neither less), the side supplying the element alternates: a
// side-preference flag decides the draw and flips after every equivalent pair
// consumed, so duplicate runs interleave deterministically instead of
// favoring one side. When only one side has data it is drained.
func MergeBy[T any](i0, i1 Iter[T], less func(a, b T) bool) *MergeIter[T] {
	m := &MergeIter[T]{i0: i0, i1: i1, less: less}
	switch {
	case i0.More() && i1.More():
		// less or equivalent prefers i0
		m.first = !less(i1.Value(), i0.Value())
	case i0.More():
		m.first = true
	default:
		m.first = false
	}
	return m
}

type MergeIter[T any] struct {
	i0, i1 Iter[T]
	less   func(a, b T) bool
	first  bool // true: the next equivalent draw comes from i0
}

func (m *MergeIter[T]) More() bool {
	return m.i0.More() || m.i1.More()
}

func (m *MergeIter[T]) Value() T {
	if m.i0.More() && m.i1.More() {
		v0, v1 := m.i0.Value(), m.i1.Value()
		switch {
		case m.less(v0, v1):
			return v0
		case m.less(v1, v0):
			return v1
		case m.first:
			return v0
		default:
			return v1
		}
	}
	if m.i0.More() {
		return m.i0.Value()
	}
	return m.i1.Value()
}

func (m *MergeIter[T]) Next() {
	if m.i0.More() && m.i1.More() {
		v0, v1 := m.i0.Value(), m.i1.Value()
		switch {
		case m.less(v0, v1):
			m.i0.Next()
		case m.less(v1, v0):
			m.i1.Next()
		default: // equivalent: draw per the flag, then switch sides
			if m.first {
				m.i0.Next()
			} else {
				m.i1.Next()
			}
			m.first = !m.first
		}
		return
	}
	if m.i0.More() {
		m.i0.Next()
		m.first = true
		return
	}
	m.i1.Next()
	m.first = false
}

func (m *MergeIter[T]) Clone() Forward[T] {
	return &MergeIter[T]{
		i0:    asForward(m.i0).Clone(),
		i1:    asForward(m.i1).Clone(),
		less:  m.less,
		first: m.first,
	}
}

// Eq compares the inner handles and the side-preference flag; the ordering is
// considered part of the handle's type, not its state.
func (m *MergeIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*MergeIter[T])
	return ok && m.first == j.first && eqIter(m.i0, j.i0) && eqIter(m.i1, j.i1)
}

var _ Forward[int] = (*MergeIter[int])(nil)
