package iterable

// Map allows you to do additional transformation on the values.
// This is useful in cases where you have to alter the element,
// or change the type all together.
// The transform must be pure; a failing transform panics synchronously out of
// Value.
func Map[T, U any](i Iter[T], transform func(T) U) *MapIter[T, U] {
	return &MapIter[T, U]{src: i, transform: transform}
}

type MapIter[T, U any] struct {
	src       Iter[T]
	transform func(T) U
}

func (m *MapIter[T, U]) More() bool {
	return m.src.More()
}

func (m *MapIter[T, U]) Value() U {
	return m.transform(m.src.Value())
}

func (m *MapIter[T, U]) Next() {
	m.src.Next()
}

func (m *MapIter[T, U]) Clone() Forward[U] {
	return &MapIter[T, U]{src: asForward(m.src).Clone(), transform: m.transform}
}

// Eq compares the inner handles only; the transform is considered part of
// the handle's type, not its state.
func (m *MapIter[T, U]) Eq(o Forward[U]) bool {
	j, ok := o.(*MapIter[T, U])
	return ok && eqIter(m.src, j.src)
}

var _ Forward[string] = (*MapIter[int, string])(nil)
