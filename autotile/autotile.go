/*
Package autotile implements the tile compositing engine behind the
BaconTileSetter generator.

A terrain tile's appearance is selected by an adjacency code recording
which of its neighbors hold the same terrain. The 4-neighbor scheme
consults only the cardinal directions, giving 16 tile variants laid out
on a 4x4 atlas. The 8-neighbor scheme also consults diagonals; its 256
raw codes collapse to 47 canonical tiles once diagonals lacking both
adjacent cardinals are discarded, laid out on an 8x6 atlas.

Every tile is composited quadrant by quadrant from up to five square
source images: an interior variant (main) and four single-edge variants
(top, bottom, left, right). Quadrant (qc,qr) of a source image always
maps to quadrant (qc,qr) of the output tile, scaled when the sizes
differ. Missing sources degrade to transparency and are never an error.
*/
package autotile

import "image"

// NeighborCode is an 8-bit adjacency code with one flag per direction.
// Raw codes may hold any bit combination; Normalize reduces them to
// canonical form.
type NeighborCode uint8

// Direction flags of a NeighborCode.
const (
	North     NeighborCode = 0x01
	NorthEast NeighborCode = 0x02
	East      NeighborCode = 0x04
	SouthEast NeighborCode = 0x08
	South     NeighborCode = 0x10
	SouthWest NeighborCode = 0x20
	West      NeighborCode = 0x40
	NorthWest NeighborCode = 0x80
)

// CardinalCode is a 4-bit adjacency code over the cardinal directions
// only. It indexes the 16-tile scheme directly.
type CardinalCode uint8

// Cardinal flags of a CardinalCode.
const (
	CardinalNorth CardinalCode = 0x01
	CardinalEast  CardinalCode = 0x02
	CardinalSouth CardinalCode = 0x04
	CardinalWest  CardinalCode = 0x08
)

// Cardinals packs the four cardinal flags of c into a CardinalCode.
func (c NeighborCode) Cardinals() CardinalCode {
	var card CardinalCode
	if c&North != 0 {
		card |= CardinalNorth
	}
	if c&East != 0 {
		card |= CardinalEast
	}
	if c&South != 0 {
		card |= CardinalSouth
	}
	if c&West != 0 {
		card |= CardinalWest
	}
	return card
}

// MinTileSize is the smallest tile edge Generate will produce; smaller
// configured sizes are silently raised to it.
const MinTileSize = 8

// quadRect returns quadrant (qc,qr) of r. qc selects the left (0) or
// right (1) half, qr the top (0) or bottom (1) half. Odd dimensions give
// the extra pixel to the right/bottom quadrants.
func quadRect(r image.Rectangle, qc, qr int) image.Rectangle {
	x0, x1 := r.Min.X, r.Min.X+r.Dx()/2
	if qc == 1 {
		x0, x1 = x1, r.Max.X
	}
	y0, y1 := r.Min.Y, r.Min.Y+r.Dy()/2
	if qr == 1 {
		y0, y1 = y1, r.Max.Y
	}
	return image.Rect(x0, y0, x1, y1)
}
