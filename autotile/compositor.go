package autotile

import (
	"image"

	"golang.org/x/image/draw"
)

// quadrants describes the four output quadrants: their vertical and
// horizontal cardinal flags and the diagonal between them. The vertical
// edge source is Top for the top row and Bottom for the bottom row; the
// horizontal edge source is Left for the left column and Right for the
// right column.
var quadrants = [4]struct {
	qc, qr int
	vbit   CardinalCode
	hbit   CardinalCode
	diag   NeighborCode
}{
	{0, 0, CardinalNorth, CardinalWest, NorthWest},
	{1, 0, CardinalNorth, CardinalEast, NorthEast},
	{0, 1, CardinalSouth, CardinalWest, SouthWest},
	{1, 1, CardinalSouth, CardinalEast, SouthEast},
}

// ComposeTile renders the single tile selected by the given cardinal
// flags into a fresh raster of edge length size. For the 8-neighbor
// scheme innerCorner is true and mask carries the full canonical code so
// concave corners can be detected; the 16-tile scheme passes mask 0 and
// innerCorner false. Missing sources leave their quadrants transparent.
func ComposeTile(s Sources, size int, cardinals CardinalCode, mask NeighborCode, innerCorner bool) *image.NRGBA {
	if size < MinTileSize {
		size = MinTileSize
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	composeTileInto(dst, dst.Bounds(), s, cardinals, mask, innerCorner)
	return dst
}

// composeTileInto renders one tile into the cell rectangle of dst, which
// may be a whole atlas raster. Each quadrant is rendered independently.
func composeTileInto(dst *image.NRGBA, cell image.Rectangle, s Sources, cardinals CardinalCode, mask NeighborCode, innerCorner bool) {
	for _, q := range quadrants {
		vsrc, hsrc := s.Top, s.Left
		if q.qr == 1 {
			vsrc = s.Bottom
		}
		if q.qc == 1 {
			hsrc = s.Right
		}
		composeQuadrant(dst, cell, q.qc, q.qr, quadrantInputs{
			main:       s.Main,
			vertical:   vsrc,
			horizontal: hsrc,
			vflag:      cardinals&q.vbit != 0,
			hflag:      cardinals&q.hbit != 0,
			diagonal:   mask&q.diag != 0,
			inner:      innerCorner,
		})
	}
}

type quadrantInputs struct {
	main       image.Image
	vertical   image.Image
	horizontal image.Image
	vflag      bool // cardinal neighbor on the quadrant's vertical side
	hflag      bool // cardinal neighbor on the quadrant's horizontal side
	diagonal   bool // diagonal neighbor between the two sides
	inner      bool // concave corners enabled (8-neighbor scheme)
}

// composeQuadrant renders quadrant (qc,qr) of the tile occupying cell.
//
// Interior quadrants (both cardinal flags set) show main, with the two
// edge sources blended on top when the quadrant forms a concave corner.
// All other quadrants layer main, then the vertical edge when its flag is
// clear, then the horizontal edge when its flag is clear; the horizontal
// edge is drawn last, so it wins wherever both overlays are opaque.
func composeQuadrant(dst *image.NRGBA, cell image.Rectangle, qc, qr int, in quadrantInputs) {
	if in.main == nil && in.vertical == nil && in.horizontal == nil {
		return
	}

	if in.vflag && in.hflag {
		base := in.main
		if base == nil {
			if base = in.vertical; base == nil {
				base = in.horizontal
			}
		}
		drawQuadrant(dst, cell, qc, qr, base)

		if in.inner && !in.diagonal {
			switch {
			case in.vertical != nil && in.horizontal != nil:
				blendQuadrant(dst, cell, qc, qr, in.vertical, in.horizontal)
			case in.vertical != nil:
				drawQuadrant(dst, cell, qc, qr, in.vertical)
			case in.horizontal != nil:
				drawQuadrant(dst, cell, qc, qr, in.horizontal)
			}
		}
		return
	}

	drawQuadrant(dst, cell, qc, qr, in.main)
	if !in.vflag {
		drawQuadrant(dst, cell, qc, qr, in.vertical)
	}
	if !in.hflag {
		drawQuadrant(dst, cell, qc, qr, in.horizontal)
	}
}

// drawQuadrant source-over composites quadrant (qc,qr) of src onto the
// same quadrant of cell, scaling when the two regions differ in size.
func drawQuadrant(dst *image.NRGBA, cell image.Rectangle, qc, qr int, src image.Image) {
	if src == nil {
		return
	}
	sr := quadRect(src.Bounds(), qc, qr)
	dr := quadRect(cell, qc, qr)
	if sr.Dx() == dr.Dx() && sr.Dy() == dr.Dy() {
		draw.Draw(dst, dr, src, sr.Min, draw.Over)
		return
	}
	draw.NearestNeighbor.Scale(dst, dr, src, sr, draw.Over, nil)
}

// blendQuadrant writes the concave-corner blend of the two edge sources
// into quadrant (qc,qr) of cell. Where both sources carry alpha the
// output color is their alpha-weighted average and the output alpha the
// larger of the two; pixels covered by one source only are left as the
// base drew them.
func blendQuadrant(dst *image.NRGBA, cell image.Rectangle, qc, qr int, vertical, horizontal image.Image) {
	dr := quadRect(cell, qc, qr)
	va := scaleQuadrant(vertical, qc, qr, dr.Dx(), dr.Dy())
	ha := scaleQuadrant(horizontal, qc, qr, dr.Dx(), dr.Dy())

	for y := 0; y < dr.Dy(); y++ {
		vi := va.PixOffset(0, y)
		hi := ha.PixOffset(0, y)
		di := dst.PixOffset(dr.Min.X, dr.Min.Y+y)
		for x := 0; x < dr.Dx(); x++ {
			av := uint32(va.Pix[vi+3])
			ah := uint32(ha.Pix[hi+3])
			if av != 0 && ah != 0 {
				sum := av + ah
				for c := 0; c < 3; c++ {
					dst.Pix[di+c] = uint8((uint32(va.Pix[vi+c])*av + uint32(ha.Pix[hi+c])*ah + sum/2) / sum)
				}
				if ah > av {
					av = ah
				}
				dst.Pix[di+3] = uint8(av)
			}
			vi += 4
			hi += 4
			di += 4
		}
	}
}

// scaleQuadrant copies quadrant (qc,qr) of src into a fresh w x h buffer,
// scaling when necessary.
func scaleQuadrant(src image.Image, qc, qr, w, h int) *image.NRGBA {
	tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
	sr := quadRect(src.Bounds(), qc, qr)
	if sr.Dx() == w && sr.Dy() == h {
		draw.Draw(tmp, tmp.Bounds(), src, sr.Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(tmp, tmp.Bounds(), src, sr, draw.Src, nil)
	}
	return tmp
}
