package autotile

import "image"

// Slot names of the five source rasters, in the order loaders and
// fingerprinting visit them.
const (
	SlotMain   = "main"
	SlotTop    = "top"
	SlotBottom = "bottom"
	SlotLeft   = "left"
	SlotRight  = "right"
)

// Sources holds the source rasters for one tile set. Each slot is either
// nil (absent) or a decoded image with an alpha channel; the engine only
// reads them and never mutates them. Main is the interior variant, the
// other four are the single-edge variants named for the side the edge
// decoration sits on.
type Sources struct {
	Main   image.Image
	Top    image.Image
	Bottom image.Image
	Left   image.Image
	Right  image.Image
}

// Empty reports whether no slot is populated. Generating from empty
// sources is legal and yields a fully transparent atlas.
func (s Sources) Empty() bool {
	return s.Main == nil && s.Top == nil && s.Bottom == nil && s.Left == nil && s.Right == nil
}

// slots returns the slot images paired with their names in canonical
// order. Absent slots are included as nil entries.
func (s Sources) slots() [5]struct {
	name string
	img  image.Image
} {
	return [5]struct {
		name string
		img  image.Image
	}{
		{SlotMain, s.Main},
		{SlotTop, s.Top},
		{SlotBottom, s.Bottom},
		{SlotLeft, s.Left},
		{SlotRight, s.Right},
	}
}
