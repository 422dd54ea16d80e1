/*
Package bacontile turns directories of autotile source images into
packaged tile set bundles: a generated atlas, its tile manifest and
Tiled metadata, zipped reproducibly, with an optional sqlite cache so
unchanged tile sets are never regenerated.
*/
package bacontile

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
	"github.com/iroiro-gamedev/BaconTileSetter/export"
	"github.com/iroiro-gamedev/BaconTileSetter/tileset"
)

// BundleFilename is the name the scan pipeline gives the bundle it
// writes into each tile set directory.
const BundleFilename = "tileset.zip"

// TileSetter generates and packages atlases. The db may be nil, in
// which case every call regenerates from scratch.
type TileSetter struct {
	db     *AtlasDB
	cfg    autotile.Config
	opts   export.Options
	logger *log.Logger
}

func New(db *AtlasDB, cfg autotile.Config, opts export.Options, logger *log.Logger) *TileSetter {
	return &TileSetter{
		db:     db,
		cfg:    cfg,
		opts:   opts,
		logger: logger,
	}
}

// Export generates the bundle for one tile set directory and writes it
// to file.
func (t *TileSetter) Export(dir, file string) error {
	b, err := t.bundle(dir)
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0o644)
}

// bundle returns the packaged bundle for dir, consulting the cache
// first when one is configured. Generation is deterministic, so a
// cached bundle is bit-identical to a regenerated one.
func (t *TileSetter) bundle(dir string) ([]byte, error) {
	sources, err := tileset.Load(dir)
	if err != nil {
		return nil, err
	}

	fingerprint := autotile.Fingerprint(sources, t.cfg)

	if t.db != nil {
		b, err := t.db.FindBundle(fingerprint)
		if err != nil {
			return nil, err
		}
		if b != nil {
			t.logger.Printf("cache hit for \"%s\"\n", dir)
			return b, nil
		}
	}

	atlas := autotile.Generate(sources, t.cfg)

	var buf bytes.Buffer
	if err := export.WriteBundle(&buf, atlas, t.opts); err != nil {
		return nil, fmt.Errorf("bundle \"%s\": %w", dir, err)
	}

	if t.db != nil {
		if err := t.db.StoreBundle(fingerprint, atlas, buf.Bytes()); err != nil {
			return nil, err
		}
	}

	t.logger.Printf("generated %s-tile atlas for \"%s\"\n", atlas.Scheme, dir)

	return buf.Bytes(), nil
}
