package rtborrow

// Entry is the insert-or-borrow handle for one key of a Map, in the manner of
// the hash-map entry APIs: look the key up once, then either use the existing
// value or fill the slot, ending with an exclusive borrow either way.
//
// Like the other structural operations, Entry requires exclusive access to
// the Map while OrInsert / OrInsertWith runs.
type Entry[K comparable, V any] struct {
	m   *Map[K, V]
	key K
}

// Key returns the key this entry addresses.
func (e Entry[K, V]) Key() K {
	return e.key
}

// OrInsert stores v if the key is absent, then exclusively borrows the slot.
// Prefer OrInsertWith when constructing the value is expensive, since v is
// evaluated at the call site regardless.
func (e Entry[K, V]) OrInsert(v V) RefMut[V] {
	return e.OrInsertWith(func() V { return v })
}

// OrInsertWith stores f() if the key is absent, then exclusively borrows the
// slot. f is not called when the key is present.
//
// The borrow is the fatal form: a live borrow on the slot is a programming
// error here, since the caller holds the Map exclusively.
func (e Entry[K, V]) OrInsertWith(f func() V) RefMut[V] {
	if _, ok := e.m.cells[e.key]; !ok {
		e.m.cells[e.key] = NewCell(f())
	}
	return e.m.BorrowMut(e.key)
}
