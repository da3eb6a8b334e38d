package rtborrow

import (
	"fmt"
	"reflect"
)

// RefMut is the public exclusive-borrow handle returned by Map and Vec.
//
// It is a thin facade over CellRefMut. It cannot be cloned; at most one may
// be live per entry. Release it on every exit path, typically with defer.
type RefMut[V any] struct {
	inner *CellRefMut[V]
}

func newRefMut[V any](inner *CellRefMut[V]) RefMut[V] {
	return RefMut[V]{inner: inner}
}

// Value returns the exclusively borrowed value. The pointer may be used to
// mutate the value but must not outlive the borrow.
func (r RefMut[V]) Value() *V {
	return r.inner.Value()
}

// Set replaces the borrowed value.
func (r RefMut[V]) Set(v V) {
	*r.inner.Value() = v
}

// Release ends this borrow, returning the entry to unborrowed. Exactly once
// per handle.
func (r RefMut[V]) Release() {
	r.inner.Release()
}

// Equal compares the underlying values. Borrow state never participates.
func (r RefMut[V]) Equal(other RefMut[V]) bool {
	return reflect.DeepEqual(*r.inner.Value(), *other.inner.Value())
}

// String formats the underlying value.
func (r RefMut[V]) String() string {
	return fmt.Sprintf("RefMut(%v)", *r.inner.Value())
}
