// Package borrowstate implements the per-value borrow accounting word.
//
// Every value stored in a runtime-borrow container carries one State. The
// word is a single atomic counter with three readings:
//
//   - 0: unborrowed
//   - n > 0: n live shared borrows
//   - exclusive (-1): exactly one live exclusive borrow
//
// The word is never simultaneously shared and exclusive, and transitions are
// the only mutators. All transitions are lock-free compare-and-swap loops, so
// two goroutines racing conflicting acquisitions on the same word cannot both
// succeed. A rejected acquisition leaves the word unchanged and reports the
// conflict immediately; nothing blocks, waits, or retries.
//
// This is an aliasing discipline, not a synchronization primitive: it tells
// the caller that a conflicting borrow exists, it does not make the guarded
// value safe to touch from multiple goroutines.
package borrowstate

import (
	"strconv"
	"sync/atomic"
)

// exclusive is the sentinel word value for a live exclusive borrow.
const exclusive = -1

// State is the borrow accounting word for a single value.
//
// The zero value is unborrowed and ready to use.
type State struct {
	word atomic.Int64
}

// TryAcquireShared records one more shared borrow.
//
// It fails (returning false, word unchanged) only if an exclusive borrow is
// live. Shared borrows are always compatible with more shared borrows.
func (s *State) TryAcquireShared() bool {
	for {
		cur := s.word.Load()
		if cur == exclusive {
			return false
		}
		if s.word.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// AcquireShared is TryAcquireShared for call sites that treat a conflict as a
// programming error. It panics if an exclusive borrow is live.
func (s *State) AcquireShared() {
	if !s.TryAcquireShared() {
		panic("tried to borrow the value, but it was already borrowed mutably")
	}
}

// DuplicateShared records the clone of an existing shared guard.
//
// The transition is identical to AcquireShared; the separate name keeps the
// intent visible at guard-clone call sites. A live shared guard implies the
// word is in the shared range, so a conflict here is a guard implementation
// bug, not a user-facing condition.
func (s *State) DuplicateShared() {
	if !s.TryAcquireShared() {
		panic("tried to clone a shared borrow, but the value was already borrowed mutably")
	}
}

// ReleaseShared undoes one shared acquisition.
//
// It panics if the word is not in the shared range: releasing a borrow that
// was never acquired (or releasing one twice) is a bug in the guard holding
// this state, and is never recoverable.
func (s *State) ReleaseShared() {
	for {
		cur := s.word.Load()
		if cur <= 0 {
			panic("released a shared borrow that was not acquired")
		}
		if s.word.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

// TryAcquireExclusive records the one exclusive borrow.
//
// It succeeds only when the word is exactly unborrowed.
func (s *State) TryAcquireExclusive() bool {
	return s.word.CompareAndSwap(0, exclusive)
}

// AcquireExclusive is TryAcquireExclusive for call sites that treat a
// conflict as a programming error. It panics if any borrow is live.
func (s *State) AcquireExclusive() {
	if !s.TryAcquireExclusive() {
		panic("tried to mutably borrow the value, but it was already borrowed")
	}
}

// ReleaseExclusive resets the word to unborrowed.
//
// It panics if the word does not hold the exclusive sentinel, for the same
// reason ReleaseShared does.
func (s *State) ReleaseExclusive() {
	if !s.word.CompareAndSwap(exclusive, 0) {
		panic("released an exclusive borrow that was not acquired")
	}
}

// IsFree reports whether no borrow is live.
func (s *State) IsFree() bool {
	return s.word.Load() == 0
}

// Snapshot returns the raw word for diagnostics. The value may be stale by
// the time the caller looks at it.
func (s *State) Snapshot() int64 {
	return s.word.Load()
}

// String returns a debug rendering of the word: "free", "shared(n)" or
// "exclusive". Not used on any hot path.
func (s *State) String() string {
	switch cur := s.word.Load(); {
	case cur == 0:
		return "free"
	case cur == exclusive:
		return "exclusive"
	default:
		return "shared(" + strconv.FormatInt(cur, 10) + ")"
	}
}
