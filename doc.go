// Package rtborrow provides containers with runtime-managed borrowing: a
// keyed Map and an index-addressed Vec whose entries can each be borrowed,
// shared or exclusive, independently and at the same time.
//
// A static borrow checker cannot express "many independent exclusive borrows
// into disjoint entries of one shared structure", and Go's type system does
// not try. This package enforces the discipline at run time instead: every
// entry carries its own atomic borrow word, and borrowing an entry returns a
// guard that records the borrow on acquisition and undoes it on Release.
//
//	m := rtborrow.NewMap[rune, int]()
//	m.Insert('a', 1)
//	m.Insert('b', 2)
//
//	// Two exclusive borrows of different entries are fine.
//	a := m.BorrowMut('a')
//	b := m.BorrowMut('b')
//	*a.Value() = 2
//	*b.Value() = 3
//	a.Release()
//	b.Release()
//
//	// Any number of shared borrows of one entry are fine.
//	r0 := m.Borrow('a')
//	r1 := m.Borrow('a')
//	defer r0.Release()
//	defer r1.Release()
//
//	// A conflicting borrow is reported immediately.
//	if _, err := m.TryBorrowMut('a'); errors.Is(err, rtborrow.ErrBorrowConflictMut) {
//	    // 'a' is still borrowed above
//	}
//
// Every borrow operation comes in two forms. Borrow and BorrowMut treat
// absence and conflict as programming errors and panic with a message naming
// the offending key or index; TryBorrow and TryBorrowMut report
// ErrValueNotFound, ErrBorrowConflictImm or ErrBorrowConflictMut instead and
// never panic.
//
// # What this is not
//
// The borrow words are atomic, so two goroutines racing conflicting borrows
// of one entry cannot both succeed, but the package is an aliasing
// discipline, not a synchronization primitive. Nothing blocks or waits, and
// structural mutation of a container (Insert, Remove, Push, Clear, ...)
// requires exclusive access to the whole container, exactly like writing to a
// plain map or slice.
package rtborrow
