package iterable

// Power is the geometric progression start, start*ratio, start*ratio², ...
// It never terminates; bound it with Take or Until.
func Power[T Number](ratio, start T) *PowerIter[T] {
	return &PowerIter[T]{ratio: ratio, tn: start}
}

type PowerIter[T Number] struct {
	ratio T
	tn    T // accumulated product
}

func (p *PowerIter[T]) More() bool { return true }
func (p *PowerIter[T]) Value() T   { return p.tn }
func (p *PowerIter[T]) Next()      { p.tn *= p.ratio }

func (p *PowerIter[T]) Clone() Forward[T] {
	c := *p
	return &c
}

func (p *PowerIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*PowerIter[T])
	return ok && p.ratio == j.ratio && p.tn == j.tn
}

var _ Forward[int] = (*PowerIter[int])(nil)
