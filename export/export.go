/*
Package export packages a generated atlas into a portable bundle: a
zip archive holding the atlas PNG, a JSON tile manifest and a Tiled
tileset description, plus optionally a palette-quantized copy of the
atlas for retro pipelines.

Archives are byte-for-byte reproducible. Entries appear in a fixed
order with a fixed timestamp, so identical atlases always produce
identical bundles regardless of when or where they were written.
*/
package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"time"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
)

// Entry names within a bundle, in the order written.
const (
	AtlasEntry    = "atlas.png"
	ManifestEntry = "tiles.json"
	TilesetEntry  = "tileset.tsx"
	IndexedEntry  = "atlas-indexed.png"
)

// fixedModTime is the oldest timestamp zip can represent; every entry
// carries it so archives stay reproducible.
var fixedModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options select optional bundle contents.
type Options struct {
	// Indexed adds a palette-quantized copy of the atlas (at most 256
	// colors) alongside the true-color one.
	Indexed bool
}

// Manifest is the JSON document stored as tiles.json.
type Manifest struct {
	Scheme   string         `json:"scheme"`
	TileSize int            `json:"tileSize"`
	Columns  int            `json:"columns"`
	Rows     int            `json:"rows"`
	Tiles    []ManifestTile `json:"tiles"`
}

// ManifestTile records one tile descriptor: its stable id, adjacency
// codes, label and top-left pixel position within the atlas.
type ManifestTile struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Cardinal uint8  `json:"cardinal"`
	Mask     uint8  `json:"mask,omitempty"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Size     int    `json:"size"`
}

// NewManifest builds the manifest for an atlas.
func NewManifest(a *autotile.Atlas) Manifest {
	m := Manifest{
		Scheme:   a.Scheme.String(),
		TileSize: a.TileSize,
		Columns:  a.Scheme.Columns(),
		Rows:     a.Scheme.Rows(),
		Tiles:    make([]ManifestTile, 0, len(a.Tiles)),
	}

	for _, t := range a.Tiles {
		b := t.Bounds()
		m.Tiles = append(m.Tiles, ManifestTile{
			Index:    t.Index,
			Label:    t.Label,
			Cardinal: uint8(t.Cardinal),
			Mask:     uint8(t.Mask),
			X:        b.Min.X,
			Y:        b.Min.Y,
			Size:     t.Size,
		})
	}

	return m
}

// WriteBundle writes the complete bundle for an atlas to w.
func WriteBundle(w io.Writer, a *autotile.Atlas, opts Options) error {
	zw := zip.NewWriter(w)

	ew, err := createEntry(zw, AtlasEntry)
	if err != nil {
		return err
	}
	if err := png.Encode(ew, a.Raster); err != nil {
		return fmt.Errorf("export: encode %s: %w", AtlasEntry, err)
	}

	ew, err = createEntry(zw, ManifestEntry)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(ew)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewManifest(a)); err != nil {
		return fmt.Errorf("export: encode %s: %w", ManifestEntry, err)
	}

	ew, err = createEntry(zw, TilesetEntry)
	if err != nil {
		return err
	}
	if err := writeTSX(ew, a); err != nil {
		return err
	}

	if opts.Indexed {
		ew, err = createEntry(zw, IndexedEntry)
		if err != nil {
			return err
		}
		if err := writeIndexed(ew, a.Raster); err != nil {
			return fmt.Errorf("export: encode %s: %w", IndexedEntry, err)
		}
	}

	return zw.Close()
}

func createEntry(zw *zip.Writer, name string) (io.Writer, error) {
	h := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: fixedModTime,
	}
	h.SetMode(0o644)

	w, err := zw.CreateHeader(h)
	if err != nil {
		return nil, fmt.Errorf("export: create %s: %w", name, err)
	}
	return w, nil
}
