package rtborrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefCloneIsIndependent(t *testing.T) {
	m := NewMap[rune, int]()
	m.Insert('a', 1)

	r0 := m.Borrow('a')
	r1 := r0.Clone()

	// The original can go away; the clone still holds the entry shared.
	r0.Release()
	_, err := m.TryBorrowMut('a')
	require.ErrorIs(t, err, ErrBorrowConflictMut)

	r1.Release()
	ref, err := m.TryBorrowMut('a')
	require.NoError(t, err)
	ref.Release()
}

func TestRefEqualComparesValuesOnly(t *testing.T) {
	m := NewMap[rune, int]()
	m.Insert('a', 1)
	m.Insert('b', 1)
	m.Insert('c', 2)

	a := m.Borrow('a')
	b := m.Borrow('b')
	c := m.Borrow('c')
	defer a.Release()
	defer b.Release()
	defer c.Release()

	// Distinct entries, same value: equal. Borrow counts differ between the
	// doubly-borrowed 'a' and singly-borrowed 'b', which must not matter.
	a2 := m.Borrow('a')
	defer a2.Release()

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a2))
	assert.False(t, a.Equal(c))
}

func TestRefMutSetAndEqual(t *testing.T) {
	m := NewMap[rune, int]()
	m.Insert('a', 1)
	m.Insert('b', 2)

	a := m.BorrowMut('a')
	b := m.BorrowMut('b')
	defer a.Release()
	defer b.Release()

	assert.False(t, a.Equal(b))

	a.Set(2)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 2, *a.Value())
}

func TestRefStringFormatsValue(t *testing.T) {
	m := NewMap[rune, int]()
	m.Insert('a', 42)

	r := m.Borrow('a')
	assert.Equal(t, "Ref(42)", r.String())
	r.Release()

	rm := m.BorrowMut('a')
	defer rm.Release()
	assert.Equal(t, "RefMut(42)", rm.String())
}
