package rtborrow

import "github.com/go-faster/errors"

// Borrow failures returned by the Try* forms. The panicking forms never
// surface these; they format a diagnostic naming the offending key or index
// instead.
//
// The Try* forms return these sentinels unwrapped, so both errors.Is and
// direct comparison hold.
var (
	// ErrValueNotFound reports that the requested key or index is absent.
	ErrValueNotFound = errors.New("value not found")

	// ErrBorrowConflictImm reports that a shared borrow was requested while
	// the value was exclusively borrowed.
	ErrBorrowConflictImm = errors.New("requested a shared borrow, but the value is already borrowed mutably")

	// ErrBorrowConflictMut reports that an exclusive borrow was requested
	// while the value was borrowed, whether shared or exclusive.
	ErrBorrowConflictMut = errors.New("requested an exclusive borrow, but the value is already borrowed")
)
