package autotile

// Scheme selects one of the two autotiling layouts. It is a closed
// enumeration: engine code dispatches on it exhaustively, and the
// default for unrecognized configuration input is applied once by
// ParseScheme at the parsing boundary.
type Scheme int

const (
	// Scheme16 consults the four cardinal neighbors, giving 16 tiles on
	// a 4x4 grid.
	Scheme16 Scheme = iota
	// Scheme47 consults all eight neighbors, giving the 47 canonical
	// tiles on an 8x6 grid.
	Scheme47
)

// ParseScheme maps a configuration string to a Scheme. "47" selects the
// 8-neighbor scheme; every other value, recognized or not, selects the
// 16-tile scheme.
func ParseScheme(s string) Scheme {
	if s == "47" {
		return Scheme47
	}
	return Scheme16
}

func (s Scheme) String() string {
	if s == Scheme47 {
		return "47"
	}
	return "16"
}

// Tiles returns the number of tiles the scheme generates.
func (s Scheme) Tiles() int {
	switch s {
	case Scheme47:
		return CanonicalCount
	default:
		return 16
	}
}

// Columns returns the atlas grid width in cells.
func (s Scheme) Columns() int {
	switch s {
	case Scheme47:
		return 8
	default:
		return 4
	}
}

// Rows returns the atlas grid height in cells. The 47-tile scheme does
// not fill its final row; the trailing cells stay transparent.
func (s Scheme) Rows() int {
	return (s.Tiles() + s.Columns() - 1) / s.Columns()
}

// Config carries the engine settings. Values are corrected rather than
// rejected: tile sizes below MinTileSize are raised silently, and
// scheme strings default at the ParseScheme boundary.
type Config struct {
	TileSize int
	Scheme   Scheme
}

func (c Config) tileSize() int {
	if c.TileSize < MinTileSize {
		return MinTileSize
	}
	return c.TileSize
}

// Generate builds the complete atlas for cfg.Scheme from the given
// sources. It is pure and deterministic: identical inputs always yield
// a bit-identical atlas, so callers may cache results externally by
// Fingerprint.
func Generate(s Sources, cfg Config) *Atlas {
	size := cfg.tileSize()
	switch cfg.Scheme {
	case Scheme47:
		return build47(s, size)
	default:
		return build16(s, size)
	}
}
