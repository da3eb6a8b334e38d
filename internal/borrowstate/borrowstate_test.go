package borrowstate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAcquireShared(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(s *State)
		want    bool
	}{
		{
			name:    "unborrowed",
			prepare: func(s *State) {},
			want:    true,
		},
		{
			name:    "already shared",
			prepare: func(s *State) { s.AcquireShared() },
			want:    true,
		},
		{
			name:    "many shared",
			prepare: func(s *State) { s.AcquireShared(); s.AcquireShared(); s.AcquireShared() },
			want:    true,
		},
		{
			name:    "exclusive",
			prepare: func(s *State) { s.AcquireExclusive() },
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			tt.prepare(&s)

			assert.Equal(t, tt.want, s.TryAcquireShared())
		})
	}
}

func TestTryAcquireExclusive(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(s *State)
		want    bool
	}{
		{
			name:    "unborrowed",
			prepare: func(s *State) {},
			want:    true,
		},
		{
			name:    "shared",
			prepare: func(s *State) { s.AcquireShared() },
			want:    false,
		},
		{
			name:    "exclusive",
			prepare: func(s *State) { s.AcquireExclusive() },
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			tt.prepare(&s)

			assert.Equal(t, tt.want, s.TryAcquireExclusive())
		})
	}
}

func TestSharedCountTracksLiveBorrows(t *testing.T) {
	var s State

	s.AcquireShared()
	s.AcquireShared()
	s.DuplicateShared()
	require.EqualValues(t, 3, s.Snapshot())

	s.ReleaseShared()
	s.ReleaseShared()
	require.EqualValues(t, 1, s.Snapshot())
	require.False(t, s.IsFree())

	s.ReleaseShared()
	require.True(t, s.IsFree())
}

func TestExclusiveAfterAllSharedReleased(t *testing.T) {
	var s State

	s.AcquireShared()
	s.AcquireShared()
	require.False(t, s.TryAcquireExclusive())

	s.ReleaseShared()
	require.False(t, s.TryAcquireExclusive())

	s.ReleaseShared()
	require.True(t, s.TryAcquireExclusive())

	s.ReleaseExclusive()
	require.True(t, s.IsFree())
}

func TestRejectedAcquireLeavesWordUnchanged(t *testing.T) {
	var s State

	s.AcquireExclusive()
	require.False(t, s.TryAcquireShared())
	require.False(t, s.TryAcquireExclusive())
	assert.EqualValues(t, exclusive, s.Snapshot())

	s.ReleaseExclusive()
	s.AcquireShared()
	require.False(t, s.TryAcquireExclusive())
	assert.EqualValues(t, 1, s.Snapshot())
}

func TestAcquirePanicMessages(t *testing.T) {
	t.Run("shared over exclusive", func(t *testing.T) {
		var s State
		s.AcquireExclusive()

		assert.PanicsWithValue(t,
			"tried to borrow the value, but it was already borrowed mutably",
			func() { s.AcquireShared() })
	})

	t.Run("exclusive over shared", func(t *testing.T) {
		var s State
		s.AcquireShared()

		assert.PanicsWithValue(t,
			"tried to mutably borrow the value, but it was already borrowed",
			func() { s.AcquireExclusive() })
	})

	t.Run("exclusive over exclusive", func(t *testing.T) {
		var s State
		s.AcquireExclusive()

		assert.PanicsWithValue(t,
			"tried to mutably borrow the value, but it was already borrowed",
			func() { s.AcquireExclusive() })
	})
}

func TestReleaseInvariantViolationsPanic(t *testing.T) {
	t.Run("shared release on free word", func(t *testing.T) {
		var s State

		assert.Panics(t, func() { s.ReleaseShared() })
	})

	t.Run("shared release on exclusive word", func(t *testing.T) {
		var s State
		s.AcquireExclusive()

		assert.Panics(t, func() { s.ReleaseShared() })
	})

	t.Run("exclusive release on free word", func(t *testing.T) {
		var s State

		assert.Panics(t, func() { s.ReleaseExclusive() })
	})

	t.Run("exclusive release on shared word", func(t *testing.T) {
		var s State
		s.AcquireShared()

		assert.Panics(t, func() { s.ReleaseExclusive() })
	})
}

// Two goroutines racing conflicting exclusive acquisitions on one word must
// not both succeed. The word is a CAS loop, so this holds under arbitrary
// interleaving; the test hammers it to give the race detector something to
// chew on.
func TestConcurrentExclusiveSingleWinner(t *testing.T) {
	const goroutines = 32
	const rounds = 1000

	var s State
	for round := 0; round < rounds; round++ {
		var (
			wg   sync.WaitGroup
			wins = make(chan struct{}, goroutines)
		)
		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if s.TryAcquireExclusive() {
					wins <- struct{}{}
				}
			}()
		}
		wg.Wait()
		close(wins)

		won := 0
		for range wins {
			won++
		}
		require.Equal(t, 1, won, "round %d: conflicting exclusive acquisitions both succeeded", round)
		s.ReleaseExclusive()
	}
}

func TestConcurrentSharedAllSucceed(t *testing.T) {
	const goroutines = 64

	var (
		s  State
		wg sync.WaitGroup
	)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, s.TryAcquireShared())
		}()
	}
	wg.Wait()

	require.EqualValues(t, goroutines, s.Snapshot())

	for g := 0; g < goroutines; g++ {
		s.ReleaseShared()
	}
	require.True(t, s.IsFree())
}

func TestString(t *testing.T) {
	var s State
	assert.Equal(t, "free", s.String())

	s.AcquireShared()
	s.AcquireShared()
	assert.Equal(t, "shared(2)", s.String())

	s.ReleaseShared()
	s.ReleaseShared()
	s.AcquireExclusive()
	assert.Equal(t, "exclusive", s.String())
}
