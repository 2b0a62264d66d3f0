package iterable

// Iota is the arithmetic progression start, start+1, start+2, ...
// It never terminates; bound it with Take or Until.
func Iota[T Number](start T) *IotaIter[T] {
	return &IotaIter[T]{t: start}
}

type IotaIter[T Number] struct {
	t T
}

func (i *IotaIter[T]) More() bool { return true }
func (i *IotaIter[T]) Value() T   { return i.t }
func (i *IotaIter[T]) Next()      { i.t++ }

func (i *IotaIter[T]) Clone() Forward[T] {
	c := *i
	return &c
}

func (i *IotaIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*IotaIter[T])
	return ok && i.t == j.t
}

var _ Forward[int] = (*IotaIter[int])(nil)
