/*
Package preview renders a contact sheet of a generated atlas for human
inspection: the atlas over a checkerboard, a cell grid, one dot per set
neighbor flag and the tile label where it fits.
*/
package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
)

const (
	checkerSize = 8
	dotInset    = 2
)

var (
	checkerLight = image.NewUniform(color.NRGBA{0xc0, 0xc0, 0xc0, 0xff})
	checkerDark  = image.NewUniform(color.NRGBA{0x90, 0x90, 0x90, 0xff})
	gridColor    = image.NewUniform(color.NRGBA{0x30, 0x30, 0x30, 0xff})
	dotColor     = image.NewUniform(color.NRGBA{0x00, 0xe0, 0x40, 0xff})
	labelColor   = image.NewUniform(color.NRGBA{0xff, 0xff, 0xff, 0xff})
	shadowColor  = image.NewUniform(color.NRGBA{0x00, 0x00, 0x00, 0xff})
)

// dirOffsets maps each neighbor flag to its unit offset from the tile
// center, y growing downward.
var dirOffsets = [8]struct {
	bit    autotile.NeighborCode
	dx, dy int
}{
	{autotile.North, 0, -1},
	{autotile.NorthEast, 1, -1},
	{autotile.East, 1, 0},
	{autotile.SouthEast, 1, 1},
	{autotile.South, 0, 1},
	{autotile.SouthWest, -1, 1},
	{autotile.West, -1, 0},
	{autotile.NorthWest, -1, -1},
}

// Render draws the contact sheet for an atlas. The result has the same
// bounds as the atlas raster.
func Render(a *autotile.Atlas) *image.NRGBA {
	dst := image.NewNRGBA(a.Raster.Bounds())

	drawCheckerboard(dst)
	draw.Draw(dst, dst.Bounds(), a.Raster, image.Point{}, draw.Over)
	drawGrid(dst, a.TileSize)

	for _, t := range a.Tiles {
		drawDots(dst, t)
		drawLabel(dst, t)
	}

	return dst
}

func drawCheckerboard(dst *image.NRGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += checkerSize {
		for x := b.Min.X; x < b.Max.X; x += checkerSize {
			src := checkerLight
			if (x/checkerSize+y/checkerSize)%2 == 1 {
				src = checkerDark
			}
			cell := image.Rect(x, y, x+checkerSize, y+checkerSize).Intersect(b)
			draw.Draw(dst, cell, src, image.Point{}, draw.Src)
		}
	}
}

func drawGrid(dst *image.NRGBA, tileSize int) {
	b := dst.Bounds()
	for x := b.Min.X + tileSize; x < b.Max.X; x += tileSize {
		draw.Draw(dst, image.Rect(x, b.Min.Y, x+1, b.Max.Y), gridColor, image.Point{}, draw.Src)
	}
	for y := b.Min.Y + tileSize; y < b.Max.Y; y += tileSize {
		draw.Draw(dst, image.Rect(b.Min.X, y, b.Max.X, y+1), gridColor, image.Point{}, draw.Src)
	}
}

// drawDots marks each set neighbor flag of the tile with a 2x2 dot
// placed toward that direction from the cell center.
func drawDots(dst *image.NRGBA, t autotile.TileDescriptor) {
	code := t.Adjacency()
	b := t.Bounds()
	cx := b.Min.X + t.Size/2
	cy := b.Min.Y + t.Size/2
	reach := t.Size/2 - dotInset

	for _, d := range dirOffsets {
		if code&d.bit == 0 {
			continue
		}
		x := cx + d.dx*reach
		y := cy + d.dy*reach
		draw.Draw(dst, image.Rect(x-1, y-1, x+1, y+1), dotColor, image.Point{}, draw.Src)
	}
}

// drawLabel writes the tile label with a 1px shadow. Inconsolata glyphs
// are 8x16, so labels only appear in cells they fit.
func drawLabel(dst *image.NRGBA, t autotile.TileDescriptor) {
	b := t.Bounds()
	if len(t.Label)*8 > t.Size-2 || t.Size < 20 {
		return
	}

	shadow := font.Drawer{
		Dst:  dst,
		Src:  shadowColor,
		Face: inconsolata.Regular8x16,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + 3), Y: fixed.I(b.Min.Y + 15)},
	}
	shadow.DrawString(t.Label)

	label := font.Drawer{
		Dst:  dst,
		Src:  labelColor,
		Face: inconsolata.Regular8x16,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + 2), Y: fixed.I(b.Min.Y + 14)},
	}
	label.DrawString(t.Label)
}
