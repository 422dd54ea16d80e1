package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
)

func solid(c color.NRGBA, size int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(m, m.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return m
}

func testAtlas(scheme autotile.Scheme) *autotile.Atlas {
	s := autotile.Sources{
		Main: solid(color.NRGBA{0xff, 0x00, 0x00, 0xff}, 16),
		Top:  solid(color.NRGBA{0x00, 0xff, 0x00, 0xff}, 16),
		Left: solid(color.NRGBA{0x00, 0x00, 0xff, 0xff}, 16),
	}
	return autotile.Generate(s, autotile.Config{TileSize: 16, Scheme: scheme})
}

func bundleEntries(t *testing.T, b []byte) []string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestWriteBundleEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBundle(&buf, testAtlas(autotile.Scheme16), Options{}))
	assert.Equal(t, []string{AtlasEntry, ManifestEntry, TilesetEntry}, bundleEntries(t, buf.Bytes()))

	buf.Reset()
	require.NoError(t, WriteBundle(&buf, testAtlas(autotile.Scheme16), Options{Indexed: true}))
	assert.Equal(t, []string{AtlasEntry, ManifestEntry, TilesetEntry, IndexedEntry}, bundleEntries(t, buf.Bytes()))
}

func TestWriteBundleReproducible(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, WriteBundle(&first, testAtlas(autotile.Scheme47), Options{Indexed: true}))
	require.NoError(t, WriteBundle(&second, testAtlas(autotile.Scheme47), Options{Indexed: true}))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteBundleAtlasRoundTrip(t *testing.T) {
	a := testAtlas(autotile.Scheme16)

	var buf bytes.Buffer
	require.NoError(t, WriteBundle(&buf, a, Options{Indexed: true}))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	for _, name := range []string{AtlasEntry, IndexedEntry} {
		f, err := zr.Open(name)
		require.NoError(t, err)
		m, err := png.Decode(f)
		f.Close()
		require.NoError(t, err, name)
		assert.Equal(t, a.Raster.Bounds(), m.Bounds(), name)
	}

	f, err := zr.Open(ManifestEntry)
	require.NoError(t, err)
	defer f.Close()

	var m Manifest
	require.NoError(t, json.NewDecoder(f).Decode(&m))
	assert.Equal(t, "16", m.Scheme)
	assert.Len(t, m.Tiles, 16)
}

func TestNewManifest(t *testing.T) {
	a := testAtlas(autotile.Scheme47)
	m := NewManifest(a)

	assert.Equal(t, "47", m.Scheme)
	assert.Equal(t, 16, m.TileSize)
	assert.Equal(t, 8, m.Columns)
	assert.Equal(t, 6, m.Rows)
	require.Len(t, m.Tiles, 47)

	for i, tile := range m.Tiles {
		assert.Equal(t, i, tile.Index)
		assert.Equal(t, (i%8)*16, tile.X)
		assert.Equal(t, (i/8)*16, tile.Y)
		assert.Equal(t, 16, tile.Size)
		if i > 0 {
			assert.Greater(t, tile.Mask, m.Tiles[i-1].Mask)
		}
	}
}
