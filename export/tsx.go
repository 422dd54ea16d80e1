package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
)

// Tiled tileset (.tsx) document: enough of the schema for the editor
// to place the atlas image and read per-tile adjacency properties.
type tsxTileset struct {
	XMLName    xml.Name  `xml:"tileset"`
	Version    string    `xml:"version,attr"`
	Name       string    `xml:"name,attr"`
	TileWidth  int       `xml:"tilewidth,attr"`
	TileHeight int       `xml:"tileheight,attr"`
	TileCount  int       `xml:"tilecount,attr"`
	Columns    int       `xml:"columns,attr"`
	Image      tsxImage  `xml:"image"`
	Tiles      []tsxTile `xml:"tile"`
}

type tsxImage struct {
	Source string `xml:"source,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

type tsxTile struct {
	ID         int           `xml:"id,attr"`
	Type       string        `xml:"type,attr"`
	Properties []tsxProperty `xml:"properties>property"`
}

type tsxProperty struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

func newTSX(a *autotile.Atlas) tsxTileset {
	b := a.Raster.Bounds()
	ts := tsxTileset{
		Version:    "1.10",
		Name:       "bacontile-" + a.Scheme.String(),
		TileWidth:  a.TileSize,
		TileHeight: a.TileSize,
		TileCount:  a.Scheme.Columns() * a.Scheme.Rows(),
		Columns:    a.Scheme.Columns(),
		Image: tsxImage{
			Source: AtlasEntry,
			Width:  b.Dx(),
			Height: b.Dy(),
		},
	}

	for _, t := range a.Tiles {
		// Tiled ids are grid positions; descriptor index and grid cell
		// coincide in both schemes.
		tile := tsxTile{
			ID:   t.Index,
			Type: t.Label,
			Properties: []tsxProperty{
				{Name: "cardinal", Type: "int", Value: strconv.Itoa(int(t.Cardinal))},
			},
		}
		if a.Scheme == autotile.Scheme47 {
			tile.Properties = append(tile.Properties, tsxProperty{
				Name:  "mask",
				Type:  "int",
				Value: strconv.Itoa(int(t.Mask)),
			})
		}
		ts.Tiles = append(ts.Tiles, tile)
	}

	return ts
}

func writeTSX(w io.Writer, a *autotile.Atlas) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	b, err := xml.MarshalIndent(newTSX(a), "", " ")
	if err != nil {
		return fmt.Errorf("export: marshal %s: %w", TilesetEntry, err)
	}

	_, err = w.Write(append(b, '\n'))
	return err
}
