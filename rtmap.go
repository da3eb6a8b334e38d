package rtborrow

import "fmt"

// Map is a hash-keyed container whose entries can each be borrowed, shared or
// exclusive, independently of every other entry.
//
// Borrow, TryBorrow, BorrowMut and TryBorrowMut need only a shared view of
// the Map handle, so callers holding the same Map can take exclusive borrows
// of different keys at the same time. Conflicts on one key are detected at
// run time through the entry's borrow word.
//
// Structural mutation (Insert, Remove, Clear, Entry, GetMut) requires the
// caller to hold the Map exclusively, exactly like writing to a plain Go map.
// The Map does not serialize structural access internally; the per-entry
// borrow words guard entries, not the table.
type Map[K comparable, V any] struct {
	cells map[K]*Cell[V]
}

// NewMap creates an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{cells: make(map[K]*Cell[V])}
}

// NewMapWithCapacity creates an empty Map with a size hint of n entries.
// Go maps expose no capacity getter, so the hint is best-effort only.
func NewMapWithCapacity[K comparable, V any](n int) *Map[K, V] {
	return &Map[K, V]{cells: make(map[K]*Cell[V], n)}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.cells)
}

// IsEmpty reports whether the map contains no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return len(m.cells) == 0
}

// ContainsKey reports whether k has an entry.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.cells[k]
	return ok
}

// Insert stores v under k, returning the previous value and whether one
// existed. Replacing an entry that still has live borrows panics, since the
// old value would be freed out from under its guards.
func (m *Map[K, V]) Insert(k K, v V) (V, bool) {
	prev, ok := m.cells[k]
	if !ok {
		m.cells[k] = NewCell(v)
		var zero V
		return zero, false
	}
	// Take the old value out before the slot is overwritten, so a live
	// borrow is caught while the map is still intact.
	old := prev.IntoInner()
	m.cells[k] = NewCell(v)
	return old, true
}

// Remove deletes the entry for k, returning its value and whether it existed.
// Removing an entry that still has live borrows panics.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	cell, ok := m.cells[k]
	if !ok {
		var zero V
		return zero, false
	}
	delete(m.cells, k)
	return cell.IntoInner(), true
}

// Clear drops every entry. No entry may have live borrows; nothing is
// dropped if any entry is still borrowed.
func (m *Map[K, V]) Clear() {
	for k, cell := range m.cells {
		if !cell.state.IsFree() {
			panic(fmt.Sprintf("tried to clear the map, but key `%v` is still borrowed", k))
		}
	}
	clear(m.cells)
}

// Entry returns the insert-or-borrow handle for k.
func (m *Map[K, V]) Entry(k K) Entry[K, V] {
	return Entry[K, V]{m: m, key: k}
}

// Borrow takes a shared borrow of the value under k.
//
// It panics if the key does not exist or if the value is exclusively
// borrowed; the message names the key and states which of the two happened.
// Use TryBorrow when absence or contention must be handled.
func (m *Map[K, V]) Borrow(k K) Ref[V] {
	cell, ok := m.cells[k]
	if !ok {
		panic(fmt.Sprintf("tried to borrow key `%v` from the map, but the value does not exist", k))
	}
	ref, err := cell.TryBorrow()
	if err != nil {
		panic(fmt.Sprintf("tried to borrow key `%v` from the map, but it was already borrowed mutably", k))
	}
	return newRef(ref)
}

// TryBorrow takes a shared borrow of the value under k.
//
// It returns ErrValueNotFound if the key is absent and ErrBorrowConflictImm
// if the value is exclusively borrowed. It never panics.
func (m *Map[K, V]) TryBorrow(k K) (Ref[V], error) {
	cell, ok := m.cells[k]
	if !ok {
		return Ref[V]{}, ErrValueNotFound
	}
	ref, err := cell.TryBorrow()
	if err != nil {
		return Ref[V]{}, err
	}
	return newRef(ref), nil
}

// BorrowMut takes the exclusive borrow of the value under k.
//
// It panics if the key does not exist or if any borrow is live; the message
// names the key and states which of the two happened. Use TryBorrowMut when
// absence or contention must be handled.
func (m *Map[K, V]) BorrowMut(k K) RefMut[V] {
	cell, ok := m.cells[k]
	if !ok {
		panic(fmt.Sprintf("tried to mutably borrow key `%v` from the map, but the value does not exist", k))
	}
	ref, err := cell.TryBorrowMut()
	if err != nil {
		panic(fmt.Sprintf("tried to mutably borrow key `%v` from the map, but it was already borrowed", k))
	}
	return newRefMut(ref)
}

// TryBorrowMut takes the exclusive borrow of the value under k.
//
// It returns ErrValueNotFound if the key is absent and ErrBorrowConflictMut
// if any borrow is live. It never panics.
func (m *Map[K, V]) TryBorrowMut(k K) (RefMut[V], error) {
	cell, ok := m.cells[k]
	if !ok {
		return RefMut[V]{}, ErrValueNotFound
	}
	ref, err := cell.TryBorrowMut()
	if err != nil {
		return RefMut[V]{}, err
	}
	return newRefMut(ref), nil
}

// GetMut returns the value under k without touching its borrow word.
//
// It is for callers that hold the Map exclusively: no guard can be
// outstanding then, so the flag check would be redundant.
func (m *Map[K, V]) GetMut(k K) (*V, bool) {
	cell, ok := m.cells[k]
	if !ok {
		return nil, false
	}
	return cell.GetMut(), true
}

// GetRaw returns the underlying cell for k, for callers that want to manage
// borrows at the cell level.
func (m *Map[K, V]) GetRaw(k K) (*Cell[V], bool) {
	cell, ok := m.cells[k]
	return cell, ok
}

// Range calls f for every key and its raw cell until f returns false.
// Iteration order is unspecified, as with any Go map.
func (m *Map[K, V]) Range(f func(k K, cell *Cell[V]) bool) {
	for k, cell := range m.cells {
		if !f(k, cell) {
			return
		}
	}
}
