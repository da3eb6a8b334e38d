package rtborrow

// CellRef is the shared-borrow guard handed out by a Cell.
//
// The guard brackets exactly one shared acquisition: it is created with the
// borrow recorded and Release undoes it. Go has no destructors, so Release
// must be called explicitly on every exit path, typically:
//
//	ref := cell.Borrow()
//	defer ref.Release()
//
// Any number of CellRefs may be live for the same cell at once. Clone mints
// another one against the same cell.
type CellRef[V any] struct {
	cell *Cell[V]
}

// Value returns the borrowed value. The pointer must not be used to mutate
// the value and must not outlive the guard. Panics if the guard was released.
func (r *CellRef[V]) Value() *V {
	if r.cell == nil {
		panic("used a shared borrow after it was released")
	}
	return &r.cell.value
}

// Clone mints a second, independent shared guard for the same cell,
// incrementing the borrow count. Both guards must be released for the cell to
// return to unborrowed.
func (r *CellRef[V]) Clone() *CellRef[V] {
	if r.cell == nil {
		panic("cloned a shared borrow after it was released")
	}
	r.cell.state.DuplicateShared()
	return &CellRef[V]{cell: r.cell}
}

// Release undoes this guard's acquisition. Exactly once per guard: a second
// Release panics, because an unbalanced release would corrupt the borrow
// accounting for every other guard on the cell.
func (r *CellRef[V]) Release() {
	if r.cell == nil {
		panic("released a shared borrow twice")
	}
	r.cell.state.ReleaseShared()
	r.cell = nil
}
