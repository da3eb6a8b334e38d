package rtborrow

import "fmt"

// Vec is the index-addressed counterpart of Map: an ordered sequence whose
// entries can each be borrowed, shared or exclusive, independently.
//
// The borrow contract is the same as Map's. Structural mutation (Push,
// Insert, Remove, SwapRemove, Clear, GetMut) requires exclusive access to the
// Vec; the borrow forms need only the shared handle.
type Vec[V any] struct {
	cells []*Cell[V]
}

// NewVec creates an empty Vec.
func NewVec[V any]() *Vec[V] {
	return &Vec[V]{}
}

// NewVecWithCapacity creates an empty Vec with room for n entries before the
// backing array grows.
func NewVecWithCapacity[V any](n int) *Vec[V] {
	return &Vec[V]{cells: make([]*Cell[V], 0, n)}
}

// Len returns the number of entries.
func (v *Vec[V]) Len() int {
	return len(v.cells)
}

// Cap returns the capacity of the backing array.
func (v *Vec[V]) Cap() int {
	return cap(v.cells)
}

// IsEmpty reports whether the vec contains no entries.
func (v *Vec[V]) IsEmpty() bool {
	return len(v.cells) == 0
}

// Push appends val.
func (v *Vec[V]) Push(val V) {
	v.cells = append(v.cells, NewCell(val))
}

// Insert places val at position i, shifting everything at and after i one to
// the right. Panics if i is negative or greater than Len.
func (v *Vec[V]) Insert(i int, val V) {
	if i < 0 || i > len(v.cells) {
		panic(fmt.Sprintf("insertion index `%d` is out of bounds for length %d", i, len(v.cells)))
	}
	v.cells = append(v.cells, nil)
	copy(v.cells[i+1:], v.cells[i:])
	v.cells[i] = NewCell(val)
}

// Remove deletes and returns the entry at i, shifting everything after it one
// to the left. O(n); use SwapRemove when order does not matter. Panics if i
// is out of range or if the entry still has live borrows.
func (v *Vec[V]) Remove(i int) V {
	if i < 0 || i >= len(v.cells) {
		panic(fmt.Sprintf("removal index `%d` is out of bounds for length %d", i, len(v.cells)))
	}
	cell := v.cells[i]
	copy(v.cells[i:], v.cells[i+1:])
	last := len(v.cells) - 1
	v.cells[last] = nil
	v.cells = v.cells[:last]
	return cell.IntoInner()
}

// SwapRemove deletes and returns the entry at i, moving the last entry into
// the hole. O(1) but reorders the tail. Panics if i is out of range or if the
// entry still has live borrows.
func (v *Vec[V]) SwapRemove(i int) V {
	if i < 0 || i >= len(v.cells) {
		panic(fmt.Sprintf("removal index `%d` is out of bounds for length %d", i, len(v.cells)))
	}
	cell := v.cells[i]
	last := len(v.cells) - 1
	v.cells[i] = v.cells[last]
	v.cells[last] = nil
	v.cells = v.cells[:last]
	return cell.IntoInner()
}

// Clear drops every entry. No entry may have live borrows; nothing is
// dropped if any entry is still borrowed.
func (v *Vec[V]) Clear() {
	for i, cell := range v.cells {
		if !cell.state.IsFree() {
			panic(fmt.Sprintf("tried to clear the vec, but index `%d` is still borrowed", i))
		}
	}
	clear(v.cells)
	v.cells = v.cells[:0]
}

// Borrow takes a shared borrow of the entry at i.
//
// It panics if i is out of range or if the entry is exclusively borrowed; the
// message names the index and states which of the two happened.
func (v *Vec[V]) Borrow(i int) Ref[V] {
	if i < 0 || i >= len(v.cells) {
		panic(fmt.Sprintf("expected to borrow index `%d`, but it does not exist", i))
	}
	ref, err := v.cells[i].TryBorrow()
	if err != nil {
		panic(fmt.Sprintf("tried to borrow index `%d`, but it was already borrowed mutably", i))
	}
	return newRef(ref)
}

// TryBorrow takes a shared borrow of the entry at i.
//
// It returns ErrValueNotFound if i is out of range and ErrBorrowConflictImm
// if the entry is exclusively borrowed. It never panics.
func (v *Vec[V]) TryBorrow(i int) (Ref[V], error) {
	if i < 0 || i >= len(v.cells) {
		return Ref[V]{}, ErrValueNotFound
	}
	ref, err := v.cells[i].TryBorrow()
	if err != nil {
		return Ref[V]{}, err
	}
	return newRef(ref), nil
}

// BorrowMut takes the exclusive borrow of the entry at i.
//
// It panics if i is out of range or if any borrow is live; the message names
// the index and states which of the two happened.
func (v *Vec[V]) BorrowMut(i int) RefMut[V] {
	if i < 0 || i >= len(v.cells) {
		panic(fmt.Sprintf("expected to borrow index `%d`, but it does not exist", i))
	}
	ref, err := v.cells[i].TryBorrowMut()
	if err != nil {
		panic(fmt.Sprintf("tried to mutably borrow index `%d`, but it was already borrowed", i))
	}
	return newRefMut(ref)
}

// TryBorrowMut takes the exclusive borrow of the entry at i.
//
// It returns ErrValueNotFound if i is out of range and ErrBorrowConflictMut
// if any borrow is live. It never panics.
func (v *Vec[V]) TryBorrowMut(i int) (RefMut[V], error) {
	if i < 0 || i >= len(v.cells) {
		return RefMut[V]{}, ErrValueNotFound
	}
	ref, err := v.cells[i].TryBorrowMut()
	if err != nil {
		return RefMut[V]{}, err
	}
	return newRefMut(ref), nil
}

// Get takes a shared borrow of the entry at i, reporting absence with false
// instead of panicking. The borrow accounting itself stays the fatal kind:
// Get panics if the entry is exclusively borrowed.
func (v *Vec[V]) Get(i int) (Ref[V], bool) {
	if i < 0 || i >= len(v.cells) {
		return Ref[V]{}, false
	}
	return newRef(v.cells[i].Borrow()), true
}

// GetMut returns the entry at i without touching its borrow word.
//
// It is for callers that hold the Vec exclusively: no guard can be
// outstanding then, so the flag check would be redundant.
func (v *Vec[V]) GetMut(i int) (*V, bool) {
	if i < 0 || i >= len(v.cells) {
		return nil, false
	}
	return v.cells[i].GetMut(), true
}

// GetRaw returns the underlying cell at i, for callers that want to manage
// borrows at the cell level.
func (v *Vec[V]) GetRaw(i int) (*Cell[V], bool) {
	if i < 0 || i >= len(v.cells) {
		return nil, false
	}
	return v.cells[i], true
}

// Range calls f for every index and its raw cell, in order, until f returns
// false.
func (v *Vec[V]) Range(f func(i int, cell *Cell[V]) bool) {
	for i, cell := range v.cells {
		if !f(i, cell) {
			return
		}
	}
}
