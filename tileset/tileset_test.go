package tileset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, c color.NRGBA, size int) []byte {
	t.Helper()

	m := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(m.Pix); i += 4 {
		m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3] = c.R, c.G, c.B, c.A
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, m))
	return buf.Bytes()
}

func TestLoadFS(t *testing.T) {
	red := encodePNG(t, color.NRGBA{0xff, 0x00, 0x00, 0xff}, 16)
	fsys := fstest.MapFS{
		"main.png": {Data: red},
		"top.png":  {Data: red},
		"left.jpg": {Data: red}, // decoded by content, not extension
	}

	s, err := LoadFS(fsys)
	require.NoError(t, err)

	assert.NotNil(t, s.Main)
	assert.NotNil(t, s.Top)
	assert.NotNil(t, s.Left)
	assert.Nil(t, s.Bottom)
	assert.Nil(t, s.Right)
}

func TestLoadFSEmpty(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"readme.txt": {Data: []byte("not a tile set")},
	})
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestLoadFSBadImage(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{
		"main.png": {Data: []byte("definitely not a png")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode main.png")
}

func TestContains(t *testing.T) {
	dir := t.TempDir()
	ok, err := Contains(dir)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bottom.png"), encodePNG(t, color.NRGBA{A: 0xff}, 8), 0o644))

	ok, err = Contains(dir)
	require.NoError(t, err)
	assert.True(t, ok)
}
