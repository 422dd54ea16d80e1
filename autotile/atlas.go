package autotile

import (
	"fmt"
	"image"
)

// labels16 names the 16 cardinal-scheme tiles, indexed by bitmask.
var labels16 = [16]string{
	"isolated", "cap-N", "cap-E", "corner-NE",
	"cap-S", "strip-V", "corner-SE", "T-E",
	"cap-W", "corner-NW", "strip-H", "T-N",
	"corner-SW", "T-W", "T-S", "cross",
}

// TileDescriptor locates one generated tile within its atlas. Index is
// the tile's stable id; consumers find its pixels through Bounds and
// the fixed grid layout, never by scanning the raster. Descriptors are
// immutable once produced and labels are unique within an atlas.
type TileDescriptor struct {
	Index    int
	Cardinal CardinalCode
	Mask     NeighborCode // canonical 8-bit code; zero in the 16-tile scheme
	Col, Row int
	Size     int
	Label    string
}

// Bounds returns the tile's pixel rectangle within the atlas raster.
func (d TileDescriptor) Bounds() image.Rectangle {
	return image.Rect(d.Col*d.Size, d.Row*d.Size, (d.Col+1)*d.Size, (d.Row+1)*d.Size)
}

// Adjacency returns the tile's adjacency code as an 8-bit NeighborCode.
// Tiles from the 16-tile scheme carry no diagonal data, so only their
// cardinal bits are ever set.
func (d TileDescriptor) Adjacency() NeighborCode {
	if d.Mask != 0 {
		return d.Mask
	}
	var code NeighborCode
	if d.Cardinal&CardinalNorth != 0 {
		code |= North
	}
	if d.Cardinal&CardinalEast != 0 {
		code |= East
	}
	if d.Cardinal&CardinalSouth != 0 {
		code |= South
	}
	if d.Cardinal&CardinalWest != 0 {
		code |= West
	}
	return code
}

// Atlas packs every tile of one scheme into a single raster, tile i at
// cell (i mod columns, i div columns), together with the ordered tile
// descriptors.
type Atlas struct {
	Scheme   Scheme
	TileSize int
	Raster   *image.NRGBA
	Tiles    []TileDescriptor
}

func newAtlas(scheme Scheme, size int) *Atlas {
	return &Atlas{
		Scheme:   scheme,
		TileSize: size,
		Raster:   image.NewNRGBA(image.Rect(0, 0, scheme.Columns()*size, scheme.Rows()*size)),
		Tiles:    make([]TileDescriptor, 0, scheme.Tiles()),
	}
}

// build16 enumerates the 16 cardinal bitmasks directly; no diagonal
// data exists in this scheme, so concave corners are disabled.
func build16(s Sources, size int) *Atlas {
	a := newAtlas(Scheme16, size)
	for i := 0; i < 16; i++ {
		d := TileDescriptor{
			Index:    i,
			Cardinal: CardinalCode(i),
			Col:      i % 4,
			Row:      i / 4,
			Size:     size,
			Label:    labels16[i],
		}
		composeTileInto(a.Raster, d.Bounds(), s, d.Cardinal, 0, false)
		a.Tiles = append(a.Tiles, d)
	}
	return a
}

// build47 enumerates the canonical table in ascending order; each tile
// carries its full 8-bit code so the compositor can see the diagonals.
func build47(s Sources, size int) *Atlas {
	a := newAtlas(Scheme47, size)
	for i, mask := range canonical {
		d := TileDescriptor{
			Index:    i,
			Cardinal: mask.Cardinals(),
			Mask:     mask,
			Col:      i % 8,
			Row:      i / 8,
			Size:     size,
			Label:    fmt.Sprintf("tile-47-%d", i),
		}
		composeTileInto(a.Raster, d.Bounds(), s, d.Cardinal, mask, true)
		a.Tiles = append(a.Tiles, d)
	}
	return a
}
