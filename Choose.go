package iterable

import "golang.org/x/exp/constraints"

// Choose yields row n of Pascal's triangle: C(n,0), C(n,1), ..., C(n,n).
// The one generator that terminates naturally, once the internal counter
// passes n. A negative n yields an empty sequence. Overflow of intermediate
// products for large n inherits the semantics of T.
func Choose[T constraints.Integer](n T) *ChooseIter[T] {
	return &ChooseIter[T]{n: n, nk: 1}
}

type ChooseIter[T constraints.Integer] struct {
	n  T
	k  T
	nk T // C(n,k)
}

func (c *ChooseIter[T]) More() bool {
	return c.k <= c.n
}

func (c *ChooseIter[T]) Value() T {
	return c.nk
}

func (c *ChooseIter[T]) Next() {
	if !c.More() {
		panic("iterable: Next past the end of a binomial row")
	}
	// C(n,k+1) = C(n,k)*(n-k)/(k+1); multiply before divide keeps the
	// division exact.
	c.nk *= c.n - c.k
	c.k++
	c.nk /= c.k
}

func (c *ChooseIter[T]) Clone() Forward[T] {
	cc := *c
	return &cc
}

func (c *ChooseIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*ChooseIter[T])
	return ok && c.n == j.n && c.k == j.k && c.nk == j.nk
}

var _ Forward[int] = (*ChooseIter[int])(nil)
