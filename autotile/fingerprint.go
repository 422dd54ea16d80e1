package autotile

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"image"
	"io"
)

// Fingerprint returns a stable hex digest identifying one generation
// call. Identical sources and configuration always hash alike, and
// Generate is deterministic, so callers can cache or deduplicate
// bundles by fingerprint without comparing pixels. Tile sizes below
// MinTileSize hash as MinTileSize, matching what Generate produces.
func Fingerprint(s Sources, cfg Config) string {
	h := sha1.New()
	fmt.Fprintf(h, "%s/%d", cfg.Scheme, cfg.tileSize())
	for _, slot := range s.slots() {
		io.WriteString(h, slot.name)
		if slot.img != nil {
			hashImage(h, slot.img)
		}
	}
	return fmt.Sprintf("%X", h.Sum(nil))
}

func hashImage(w io.Writer, m image.Image) {
	b := m.Bounds()

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(b.Dx()))
	binary.LittleEndian.PutUint32(buf[4:], uint32(b.Dy()))
	w.Write(buf[:])

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := m.At(x, y).RGBA()
			binary.LittleEndian.PutUint16(buf[0:], uint16(r))
			binary.LittleEndian.PutUint16(buf[2:], uint16(g))
			binary.LittleEndian.PutUint16(buf[4:], uint16(bl))
			binary.LittleEndian.PutUint16(buf[6:], uint16(a))
			w.Write(buf[:])
		}
	}
}
