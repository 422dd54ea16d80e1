/*
Package tileset locates and decodes the source images of a tile set.

A tile set directory holds up to five images named for their slots:
main, top, bottom, left and right, with a .png, .gif, .jpg or .jpeg
extension. Absent slots are simply absent; only a directory holding no
slot image at all is reported, as ErrNoSources.
*/
package tileset

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
)

// ErrNoSources is returned by Load when a directory holds no slot
// image at all.
var ErrNoSources = errors.New("tileset: no source images")

// Ignore any file greater than 16 MB; a tile source that large is
// almost certainly not a tile source.
const maxSourceSize = 16 << (10 * 2)

var extensions = []string{".png", ".gif", ".jpg", ".jpeg"}

var slotNames = []string{
	autotile.SlotMain,
	autotile.SlotTop,
	autotile.SlotBottom,
	autotile.SlotLeft,
	autotile.SlotRight,
}

// Load reads the source slots present in a directory.
func Load(dir string) (autotile.Sources, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads the source slots present in the root of fsys. Each slot
// takes the first extension that exists; a file that exists but does
// not decode is an error.
func LoadFS(fsys fs.FS) (autotile.Sources, error) {
	var s autotile.Sources

	slots := []struct {
		name string
		img  *image.Image
	}{
		{autotile.SlotMain, &s.Main},
		{autotile.SlotTop, &s.Top},
		{autotile.SlotBottom, &s.Bottom},
		{autotile.SlotLeft, &s.Left},
		{autotile.SlotRight, &s.Right},
	}

	for _, slot := range slots {
		m, err := loadSlot(fsys, slot.name)
		if err != nil {
			return autotile.Sources{}, err
		}
		*slot.img = m
	}

	if s.Empty() {
		return s, ErrNoSources
	}

	return s, nil
}

// Contains reports whether dir holds at least one slot image, without
// decoding anything. The scan pipeline uses it to skip directories
// cheaply.
func Contains(dir string) (bool, error) {
	for _, name := range slotNames {
		for _, ext := range extensions {
			switch _, err := os.Stat(filepath.Join(dir, name+ext)); {
			case err == nil:
				return true, nil
			case !errors.Is(err, fs.ErrNotExist):
				return false, err
			}
		}
	}
	return false, nil
}

func loadSlot(fsys fs.FS, name string) (image.Image, error) {
	for _, ext := range extensions {
		f, err := fsys.Open(name + ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("tileset: open %s: %w", name+ext, err)
		}

		if info, err := f.Stat(); err == nil && info.Size() > maxSourceSize {
			f.Close()
			continue
		}

		m, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("tileset: decode %s: %w", name+ext, err)
		}

		return m, nil
	}

	return nil, nil
}
