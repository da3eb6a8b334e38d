package rtborrow

import "github.com/kolkov/rtborrow/internal/borrowstate"

// Cell owns a single value together with its borrow accounting word.
//
// Map and Vec store one Cell per entry, which is what lets disjoint entries
// be borrowed independently: each Cell consults only its own word.
//
// A Cell hands out guards rather than bare pointers. The guard records the
// borrow on acquisition and undoes it on Release; the word rejects any
// acquisition that conflicts with live guards.
type Cell[V any] struct {
	state borrowstate.State
	value V
}

// NewCell creates a cell owning v, in the unborrowed state.
func NewCell[V any](v V) *Cell[V] {
	return &Cell[V]{value: v}
}

// Borrow acquires a shared borrow.
//
// It panics if the value is exclusively borrowed. Use TryBorrow when the
// conflict must be handled rather than treated as a programming error.
func (c *Cell[V]) Borrow() *CellRef[V] {
	c.state.AcquireShared()
	return &CellRef[V]{cell: c}
}

// TryBorrow acquires a shared borrow, reporting ErrBorrowConflictImm if the
// value is exclusively borrowed. Shared borrows never conflict with each
// other.
func (c *Cell[V]) TryBorrow() (*CellRef[V], error) {
	if !c.state.TryAcquireShared() {
		return nil, ErrBorrowConflictImm
	}
	return &CellRef[V]{cell: c}, nil
}

// BorrowMut acquires the exclusive borrow.
//
// It panics if any borrow, shared or exclusive, is live.
func (c *Cell[V]) BorrowMut() *CellRefMut[V] {
	c.state.AcquireExclusive()
	return &CellRefMut[V]{cell: c}
}

// TryBorrowMut acquires the exclusive borrow, reporting ErrBorrowConflictMut
// if any borrow is live.
func (c *Cell[V]) TryBorrowMut() (*CellRefMut[V], error) {
	if !c.state.TryAcquireExclusive() {
		return nil, ErrBorrowConflictMut
	}
	return &CellRefMut[V]{cell: c}, nil
}

// GetMut returns the value without touching the borrow word.
//
// It is for callers that hold the owning container exclusively: under
// exclusive container access no guard can be outstanding, so the flag check
// would be redundant. Calling it while guards are live breaks the aliasing
// contract the cell exists to enforce.
func (c *Cell[V]) GetMut() *V {
	return &c.value
}

// IntoInner detaches and returns the owned value, consuming the cell.
//
// The borrow word must be unborrowed. Go cannot prove the absence of live
// guards the way an ownership type system can, so the precondition is checked
// here: taking the value out from under a live guard panics.
func (c *Cell[V]) IntoInner() V {
	if !c.state.IsFree() {
		panic("tried to take the value out of its cell, but it is still borrowed")
	}
	return c.value
}
