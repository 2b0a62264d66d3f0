package iterable

import (
	"cmp"
	"math"
)

// Compare lexicographically three-way compares two sequences, working on
// independent copies when the handles support cloning. It stops at the first
// differing pair; a strict prefix compares as less; two sequences that
// terminate together compare as equal. The result follows the cmp package
// convention: -1, 0 or +1.
func Compare[T cmp.Ordered](i, j Iter[T]) int {
	return CompareN(i, j, math.MaxInt)
}

// CompareN is Compare bounded to at most n element pairs. The termination
// flags are still compared after the bound, so a sequence that terminates
// within the first n elements compares less than one that does not; two
// sequences that agree on the first n elements and both still have data
// compare as equal.
func CompareN[T cmp.Ordered](i, j Iter[T], n int) int {
	i, j = cloneIter(i), cloneIter(j)
	for ; n > 0 && i.More() && j.More(); n-- {
		if c := cmp.Compare(i.Value(), j.Value()); c != 0 {
			return c
		}
		i.Next()
		j.Next()
	}
	return boolCompare(i.More(), j.More())
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

// Equal reports whether two sequences contain equal elements and terminate
// together.
func Equal[T cmp.Ordered](i, j Iter[T]) bool {
	return Compare(i, j) == 0
}

// EqualTo reports whether the sequence is exactly the literal values:
// every value matches and the handle terminates when the values run out.
func EqualTo[T comparable](i Iter[T], vals ...T) bool {
	i = cloneIter(i)
	for _, v := range vals {
		if !i.More() || i.Value() != v {
			return false
		}
		i.Next()
	}
	return !i.More()
}

// StartsWith reports whether the sequence begins with the literal values;
// unlike EqualTo it does not require the handle to terminate afterwards.
func StartsWith[T comparable](i Iter[T], vals ...T) bool {
	i = cloneIter(i)
	for _, v := range vals {
		if !i.More() || i.Value() != v {
			return false
		}
		i.Next()
	}
	return true
}
