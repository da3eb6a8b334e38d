package rtborrow

// CellRefMut is the exclusive-borrow guard handed out by a Cell.
//
// At most one may be live per cell, and it excludes all shared guards. It
// cannot be cloned. As with CellRef, Release is explicit:
//
//	ref := cell.BorrowMut()
//	defer ref.Release()
type CellRefMut[V any] struct {
	cell *Cell[V]
}

// Value returns the exclusively borrowed value. The pointer may be used to
// mutate the value but must not outlive the guard. Panics if the guard was
// released.
func (r *CellRefMut[V]) Value() *V {
	if r.cell == nil {
		panic("used an exclusive borrow after it was released")
	}
	return &r.cell.value
}

// Release undoes the exclusive acquisition, returning the cell to unborrowed.
// Exactly once per guard; a second Release panics.
func (r *CellRefMut[V]) Release() {
	if r.cell == nil {
		panic("released an exclusive borrow twice")
	}
	r.cell.state.ReleaseExclusive()
	r.cell = nil
}
