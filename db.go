package bacontile

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
)

// AtlasDB caches generated bundles keyed by the fingerprint of their
// inputs. Generation is deterministic, so a hit can be served without
// touching the engine.
type AtlasDB struct {
	db *sql.DB
}

func NewAtlasDB(file string) (*AtlasDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS atlas (id INTEGER PRIMARY KEY NOT NULL, fingerprint TEXT NOT NULL UNIQUE, scheme TEXT NOT NULL, tile_size INTEGER NOT NULL, bundle BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &AtlasDB{
		db: db,
	}, nil
}

func (db *AtlasDB) Close() error {
	return db.db.Close()
}

// FindBundle returns the cached bundle for a fingerprint, or nil when
// none is stored.
func (db *AtlasDB) FindBundle(fingerprint string) ([]byte, error) {
	var bundle []byte
	switch err := db.db.QueryRow("SELECT bundle FROM atlas WHERE fingerprint = ?", fingerprint).Scan(&bundle); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return bundle, nil
	default:
		return nil, err
	}
}

// StoreBundle records the bundle generated for a fingerprint.
func (db *AtlasDB) StoreBundle(fingerprint string, atlas *autotile.Atlas, bundle []byte) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO atlas (fingerprint, scheme, tile_size, bundle) VALUES (?, ?, ?, ?)", fingerprint, atlas.Scheme.String(), atlas.TileSize, bundle); err != nil {
		return err
	}
	return nil
}
