package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	{ // Lexicographic neighbor key order
		a := NeighborKey{0, 0, 5}
		b := NeighborKey{0, 0, 2}
		c := NeighborKey{1, 0, 1}
		d := NeighborKey{0, 1, 0}
		assert.True(t, b.Less(a))
		assert.True(t, a.Less(d))
		assert.True(t, d.Less(c))
		assert.Equal(t, 0, a.Compare(a))
		assert.True(t, a.SameOwner(b))
		assert.False(t, a.SameOwner(d))
		assert.Equal(t, Owner{1, 0}, c.Owner())
		assert.Equal(t, "1/0/1", c.String())
		assert.Equal(t, "1/0", c.Owner().String())
	}
	{ // Flat decoding
		keys, err := NeighborKeysFromFlat([]int32{0, 0, 5, 1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, []NeighborKey{{0, 0, 5}, {1, 2, 3}}, keys)
		_, err = NeighborKeysFromFlat([]int{0, 0})
		assert.Error(t, err)
	}
	{ // Canonical pairs are orientation independent
		assert.Equal(t, CanonicalPair{25, 40}, NewCanonicalPair(40, 25))
		assert.Equal(t, NewCanonicalPair(40, 25), NewCanonicalPair(25, 40))
		assert.Equal(t, CanonicalPair{7, 7}, NewCanonicalPair(7, 7))
		assert.Equal(t, -1, NewCanonicalPair(5, 20).Compare(NewCanonicalPair(10, 15)))
		assert.Equal(t, -1, NewCanonicalPair(5, 20).Compare(NewCanonicalPair(5, 21)))
		assert.Equal(t, 1, NewCanonicalPair(35, 30).Compare(NewCanonicalPair(25, 40)))
		assert.Equal(t, "[25,40]", NewCanonicalPair(40, 25).String())
	}
}
