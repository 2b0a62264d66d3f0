package iterable

// Factorial yields 1, 1, 2, 6, 24, ...: the current value times an internal
// counter that increments after every use. It never terminates; large values
// inherit the overflow semantics of T.
func Factorial[T Number]() *FactorialIter[T] {
	return &FactorialIter[T]{t: 1, n: 1}
}

type FactorialIter[T Number] struct {
	t T // current value
	n T // counter, multiplied in on advance
}

func (f *FactorialIter[T]) More() bool { return true }
func (f *FactorialIter[T]) Value() T   { return f.t }

func (f *FactorialIter[T]) Next() {
	f.t *= f.n
	f.n++
}

func (f *FactorialIter[T]) Clone() Forward[T] {
	c := *f
	return &c
}

func (f *FactorialIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*FactorialIter[T])
	return ok && f.t == j.t && f.n == j.n
}

var _ Forward[int] = (*FactorialIter[int])(nil)
