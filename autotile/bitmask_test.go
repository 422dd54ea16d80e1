package autotile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tables := []struct {
		code, want NeighborCode
	}{
		{0x00, 0x00},
		{North | NorthEast, North},
		{North | East | NorthEast, North | East | NorthEast},
		{NorthWest, 0x00},
		{NorthEast | SouthWest, 0x00},
		{East | South | SouthEast | NorthWest, East | South | SouthEast},
		{North | East | South | West, North | East | South | West},
		{0xff, 0xff},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, Normalize(table.code), "code %#02x", uint8(table.code))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for code := 0; code < 256; code++ {
		c := Normalize(NeighborCode(code))
		assert.Equal(t, c, Normalize(c), "code %#02x", code)
	}
}

func TestNormalizeKeepsCardinals(t *testing.T) {
	cardinals := North | East | South | West
	for code := 0; code < 256; code++ {
		c := NeighborCode(code)
		assert.Equal(t, c&cardinals, Normalize(c)&cardinals, "code %#02x", code)
	}
}

func TestNormalizeCardinality(t *testing.T) {
	seen := make(map[NeighborCode]struct{})
	for code := 0; code < 256; code++ {
		seen[Normalize(NeighborCode(code))] = struct{}{}
	}
	assert.Len(t, seen, CanonicalCount)
}

func TestCanonicalTable(t *testing.T) {
	table := CanonicalTable()
	require.Len(t, table, CanonicalCount)

	for i, c := range table {
		assert.Equal(t, c, Normalize(c), "index %d", i)
		if i > 0 {
			assert.Greater(t, c, table[i-1], "index %d", i)
		}
	}
}

func TestCanonicalIndex(t *testing.T) {
	table := CanonicalTable()
	for code := 0; code < 256; code++ {
		c := NeighborCode(code)
		i := CanonicalIndex(c)
		require.Less(t, i, CanonicalCount, "code %#02x", code)
		assert.Equal(t, Normalize(c), table[i], "code %#02x", code)
	}
}
