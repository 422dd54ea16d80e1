package autotile

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScheme(t *testing.T) {
	tables := []struct {
		in   string
		want Scheme
	}{
		{"16", Scheme16},
		{"47", Scheme47},
		{"", Scheme16},
		{"48", Scheme16},
		{"blob", Scheme16},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, ParseScheme(table.in), "%q", table.in)
	}
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "16", Scheme16.String())
	assert.Equal(t, "47", Scheme47.String())
}

func TestSchemeLayout(t *testing.T) {
	assert.Equal(t, 16, Scheme16.Tiles())
	assert.Equal(t, 4, Scheme16.Columns())
	assert.Equal(t, 4, Scheme16.Rows())

	assert.Equal(t, 47, Scheme47.Tiles())
	assert.Equal(t, 8, Scheme47.Columns())
	assert.Equal(t, 6, Scheme47.Rows())
}

func TestGenerateClampsTileSize(t *testing.T) {
	a := Generate(Sources{}, Config{TileSize: 3})
	assert.Equal(t, MinTileSize, a.TileSize)
	assert.Equal(t, image.Rect(0, 0, 32, 32), a.Raster.Bounds())
}
