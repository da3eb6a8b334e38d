package rtborrow

import (
	"fmt"
	"reflect"
)

// Ref is the public shared-borrow handle returned by Map and Vec.
//
// It is a thin facade over CellRef that adds value formatting and value
// equality. Release it on every exit path, typically with defer.
type Ref[V any] struct {
	inner *CellRef[V]
}

func newRef[V any](inner *CellRef[V]) Ref[V] {
	return Ref[V]{inner: inner}
}

// Value returns the borrowed value. The pointer must not be used to mutate
// the value and must not outlive the borrow.
func (r Ref[V]) Value() *V {
	return r.inner.Value()
}

// Clone mints a second, independent shared handle against the same entry.
// Both must be released for the entry to return to unborrowed.
func (r Ref[V]) Clone() Ref[V] {
	return Ref[V]{inner: r.inner.Clone()}
}

// Release ends this borrow. Exactly once per handle.
func (r Ref[V]) Release() {
	r.inner.Release()
}

// Equal compares the underlying values. Borrow state never participates.
func (r Ref[V]) Equal(other Ref[V]) bool {
	return reflect.DeepEqual(*r.inner.Value(), *other.inner.Value())
}

// String formats the underlying value.
func (r Ref[V]) String() string {
	return fmt.Sprintf("Ref(%v)", *r.inner.Value())
}
