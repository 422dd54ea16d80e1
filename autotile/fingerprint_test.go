package autotile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintDeterministic(t *testing.T) {
	s := testSources(16)
	cfg := Config{TileSize: 16}
	assert.Equal(t, Fingerprint(s, cfg), Fingerprint(s, cfg))
}

func TestFingerprintSensitivity(t *testing.T) {
	base := Sources{Main: solid(red, 16)}
	cfg := Config{TileSize: 16}
	fp := Fingerprint(base, cfg)

	tables := []struct {
		name string
		s    Sources
		cfg  Config
	}{
		{"scheme", base, Config{TileSize: 16, Scheme: Scheme47}},
		{"tile size", base, Config{TileSize: 32}},
		{"pixels", Sources{Main: solid(blue, 16)}, cfg},
		{"dimensions", Sources{Main: solid(red, 8)}, cfg},
		{"added slot", Sources{Main: solid(red, 16), Top: solid(green, 16)}, cfg},
		{"moved slot", Sources{Top: solid(red, 16)}, cfg},
	}

	for _, table := range tables {
		assert.NotEqual(t, fp, Fingerprint(table.s, table.cfg), table.name)
	}
}

func TestFingerprintClampedTileSize(t *testing.T) {
	s := Sources{Main: solid(red, 16)}
	assert.Equal(t, Fingerprint(s, Config{TileSize: 3}), Fingerprint(s, Config{TileSize: MinTileSize}))
}
