package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = 256

// writeIndexed encodes a palette-quantized copy of m as PNG. Median-cut
// quantization with a reserved transparent entry keeps the blank atlas
// cells empty.
func writeIndexed(w io.Writer, m image.Image) error {
	q := quantize.MedianCutQuantizer{AddTransparent: true}
	p := q.Quantize(make(color.Palette, 0, maxColors), m)

	pm := image.NewPaletted(m.Bounds(), p)
	draw.Draw(pm, pm.Bounds(), m, m.Bounds().Min, draw.Src)

	return png.Encode(w, pm)
}
