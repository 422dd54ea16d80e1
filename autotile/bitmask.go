package autotile

import (
	"fmt"
	"sort"
)

// CanonicalCount is the number of distinct canonical adjacency values.
// It is a structural property of the normalization rule, not a tunable.
const CanonicalCount = 47

var (
	canonical      = makeCanonicalTable()
	canonicalIndex = makeCanonicalIndex()
)

// Normalize reduces a raw adjacency code to canonical form by clearing
// every diagonal flag whose two adjacent cardinal flags are not both
// set. Cardinal flags are never cleared, and the function is idempotent.
func Normalize(code NeighborCode) NeighborCode {
	if code&(North|East) != North|East {
		code &^= NorthEast
	}
	if code&(East|South) != East|South {
		code &^= SouthEast
	}
	if code&(South|West) != South|West {
		code &^= SouthWest
	}
	if code&(West|North) != West|North {
		code &^= NorthWest
	}
	return code
}

func makeCanonicalTable() [CanonicalCount]NeighborCode {
	var seen [256]bool
	values := make([]int, 0, CanonicalCount)
	for code := 0; code < 256; code++ {
		c := Normalize(NeighborCode(code))
		if !seen[c] {
			seen[c] = true
			values = append(values, int(c))
		}
	}
	if len(values) != CanonicalCount {
		panic(fmt.Sprintf("autotile: normalization yields %d canonical values, want %d", len(values), CanonicalCount))
	}
	sort.Ints(values)

	var t [CanonicalCount]NeighborCode
	for i, v := range values {
		t[i] = NeighborCode(v)
	}
	return t
}

func makeCanonicalIndex() [256]uint8 {
	var idx [256]uint8
	for i, c := range canonical {
		idx[c] = uint8(i)
	}
	for code := 0; code < 256; code++ {
		idx[code] = idx[Normalize(NeighborCode(code))]
	}
	return idx
}

// CanonicalTable returns the canonical adjacency values in ascending
// order. The returned slice is a copy; the table itself is immutable
// process-wide state built at init.
func CanonicalTable() []NeighborCode {
	t := make([]NeighborCode, CanonicalCount)
	copy(t, canonical[:])
	return t
}

// CanonicalIndex returns the position of Normalize(code) within the
// canonical table, which is the tile's slot in the 47-tile atlas.
func CanonicalIndex(code NeighborCode) int {
	return int(canonicalIndex[code])
}
