package iterable

// Appender turns "append to a slice" into a write-side handle that never
// terminates, for use as the destination of Copy style algorithms. Every Put
// grows the target; Next is a no-op. Unlike the read-side ranges, an Appender
// intentionally shares the target with its copies.
func Appender[T any](s *[]T) *AppendIter[T] {
	return &AppendIter[T]{s: s}
}

type AppendIter[T any] struct {
	s *[]T
}

func (a *AppendIter[T]) More() bool { return true }
func (a *AppendIter[T]) Next()      {}

func (a *AppendIter[T]) Put(v T) {
	*a.s = append(*a.s, v)
}

// Prepender is Appender's front-insertion counterpart: every Put inserts at
// the head of the target slice.
func Prepender[T any](s *[]T) *PrependIter[T] {
	return &PrependIter[T]{s: s}
}

type PrependIter[T any] struct {
	s *[]T
}

func (p *PrependIter[T]) More() bool { return true }
func (p *PrependIter[T]) Next()      {}

func (p *PrependIter[T]) Put(v T) {
	*p.s = append(*p.s, v)
	copy((*p.s)[1:], *p.s)
	(*p.s)[0] = v
}

var (
	_ Output[int] = (*AppendIter[int])(nil)
	_ Output[int] = (*PrependIter[int])(nil)
)
