package bacontile

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
	"github.com/iroiro-gamedev/BaconTileSetter/export"
	"github.com/iroiro-gamedev/BaconTileSetter/tileset"
)

func openTestDB(t *testing.T) *AtlasDB {
	t.Helper()

	db, err := NewAtlasDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAtlasDBRoundTrip(t *testing.T) {
	db := openTestDB(t)

	atlas := autotile.Generate(autotile.Sources{}, autotile.Config{TileSize: 16})
	bundle := []byte("bundle bytes")

	b, err := db.FindBundle("missing")
	require.NoError(t, err)
	assert.Nil(t, b)

	require.NoError(t, db.StoreBundle("abc", atlas, bundle))

	b, err = db.FindBundle("abc")
	require.NoError(t, err)
	assert.Equal(t, bundle, b)
}

func TestBundleCache(t *testing.T) {
	db := openTestDB(t)

	dir := t.TempDir()
	writeSlot(t, dir, autotile.SlotMain, color.NRGBA{0xff, 0x00, 0x00, 0xff})

	cfg := autotile.Config{TileSize: 16}
	ts := New(db, cfg, export.Options{}, discard())

	first, err := ts.bundle(dir)
	require.NoError(t, err)

	sources, err := tileset.Load(dir)
	require.NoError(t, err)

	cached, err := db.FindBundle(autotile.Fingerprint(sources, cfg))
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	second, err := ts.bundle(dir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
