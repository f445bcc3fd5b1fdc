package physics

// Mask is a per-pixel opacity map used for exact overlap tests.
type Mask interface {
	Size() (w, h int)
	Opaque(x, y int) bool
}

// MaskOffset returns the integer offset of b's top-left corner relative to a's,
// truncating toward zero.
func MaskOffset(a, b Rect) (dx, dy int) {
	return int(b.X - a.X), int(b.Y - a.Y)
}

// MasksOverlap reports whether any opaque pixel of a coincides with an opaque
// pixel of b when b is placed at (dx, dy) relative to a.
func MasksOverlap(a Mask, b Mask, dx, dy int) bool {
	aw, ah := a.Size()
	bw, bh := b.Size()

	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(aw, dx+bw)
	y1 := min(ah, dy+bh)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if a.Opaque(x, y) && b.Opaque(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
