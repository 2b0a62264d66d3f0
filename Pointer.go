package iterable

import "unsafe"

// Ptr wraps a raw address as an unbounded contiguous range. The handle has no
// independent end: it terminates only when the address is nil, so it is
// normally paired with Counted to bound it. The caller keeps the pointed-to
// storage alive for the lifetime of the handle.
func Ptr[T any](p *T) *PtrIter[T] {
	return &PtrIter[T]{p: p}
}

// Empty returns an iterator with no elements, the nil Ptr.
// Can help achieve the Null Object Pattern when no value is logically
// expected but an iterator must be returned.
func Empty[T any]() *PtrIter[T] {
	return Ptr[T](nil)
}

// PtrIter is an unsafe pointer range with span/view semantics: stepping moves
// the address by the element size, with no bounds of any kind.
type PtrIter[T any] struct {
	p *T
}

func (i *PtrIter[T]) More() bool {
	return i.p != nil
}

func (i *PtrIter[T]) Value() T {
	return *i.p
}

// Put writes through the current address.
func (i *PtrIter[T]) Put(v T) {
	*i.p = v
}

func (i *PtrIter[T]) Next() {
	i.Move(1)
}

func (i *PtrIter[T]) Prev() {
	i.Move(-1)
}

func (i *PtrIter[T]) Move(n int) {
	if i.p == nil {
		panic("iterable: Move on a terminated pointer range")
	}
	size := int(unsafe.Sizeof(*i.p))
	i.p = (*T)(unsafe.Add(unsafe.Pointer(i.p), n*size))
}

func (i *PtrIter[T]) Distance(o RandomAccess[T]) int {
	j, ok := o.(*PtrIter[T])
	if !ok {
		panic("iterable: Distance between unrelated handles")
	}
	size := int(unsafe.Sizeof(*i.p))
	return int(uintptr(unsafe.Pointer(j.p))-uintptr(unsafe.Pointer(i.p))) / size
}

func (i *PtrIter[T]) At(n int) T {
	size := int(unsafe.Sizeof(*i.p))
	return *(*T)(unsafe.Add(unsafe.Pointer(i.p), n*size))
}

func (i *PtrIter[T]) Addr() *T {
	return i.p
}

func (i *PtrIter[T]) Clone() Forward[T] {
	c := *i
	return &c
}

func (i *PtrIter[T]) Eq(o Forward[T]) bool {
	j, ok := o.(*PtrIter[T])
	return ok && i.p == j.p
}

var (
	_ Contiguous[int] = (*PtrIter[int])(nil)
	_ Output[int]     = (*PtrIter[int])(nil)
)
