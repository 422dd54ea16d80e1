package live

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
	"github.com/iroiro-gamedev/BaconTileSetter/export"
)

func writeSlot(t *testing.T, dir, name string, c color.NRGBA) {
	t.Helper()

	m := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	draw.Draw(m, m.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, m))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".png"), buf.Bytes(), 0o644))
}

func TestServerRebuild(t *testing.T) {
	dir := t.TempDir()
	writeSlot(t, dir, autotile.SlotMain, color.NRGBA{0xff, 0x00, 0x00, 0xff})

	s := New(dir, autotile.Config{TileSize: 16}, log.New(io.Discard, "", 0))

	changed, err := s.rebuild()
	require.NoError(t, err)
	assert.True(t, changed)

	// Unchanged sources are detected by fingerprint, not re-rendered.
	changed, err = s.rebuild()
	require.NoError(t, err)
	assert.False(t, changed)

	writeSlot(t, dir, autotile.SlotTop, color.NRGBA{0x00, 0xff, 0x00, 0xff})

	changed, err = s.rebuild()
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestServerHandler(t *testing.T) {
	dir := t.TempDir()
	writeSlot(t, dir, autotile.SlotMain, color.NRGBA{0xff, 0x00, 0x00, 0xff})

	s := New(dir, autotile.Config{TileSize: 16}, log.New(io.Discard, "", 0))
	_, err := s.rebuild()
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/atlas.png")
	require.NoError(t, err)
	m, err := png.Decode(res.Body)
	res.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), m.Bounds())

	res, err = http.Get(ts.URL + "/tiles.json")
	require.NoError(t, err)
	var manifest export.Manifest
	require.NoError(t, json.NewDecoder(res.Body).Decode(&manifest))
	res.Body.Close()
	assert.Len(t, manifest.Tiles, 16)

	res, err = http.Get(ts.URL + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "bacontile preview")
}
