package vt100

// Rect is a damaged rectangle in screen coordinates, upper-left inclusive,
// width/height in cells.
type Rect struct {
	X, Y, W, H int
}

// Damage tracks regions of the screen that changed since the last render,
// as an unordered multiset of rectangles plus a redraw-all flag. Overlap
// between rectangles is permitted; merging is not attempted (spec leaves
// it optional and nothing downstream depends on a minimal cover).
//
// Rectangles are returned most-recent-first, mirroring vt_render's
// singly-linked list built with damage->next = vt->damage in the original
// implementation.
type Damage struct {
	rects     []Rect
	redrawAll bool
}

// Add records a damaged rectangle.
func (d *Damage) Add(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	d.rects = append(d.rects, Rect{X: x, Y: y, W: w, H: h})
}

// MarkRedrawAll marks the whole screen damaged, e.g. after a resize or
// DECCOLM switch.
func (d *Damage) MarkRedrawAll() {
	d.redrawAll = true
}

// RedrawAll reports whether the whole screen should be redrawn.
func (d *Damage) RedrawAll() bool {
	return d.redrawAll
}

// Rects returns the pending damaged rectangles, most-recently-added first.
func (d *Damage) Rects() []Rect {
	out := make([]Rect, len(d.rects))
	for i, r := range d.rects {
		out[len(d.rects)-1-i] = r
	}
	return out
}

// Clear discards all pending damage.
func (d *Damage) Clear() {
	d.rects = d.rects[:0]
	d.redrawAll = false
}
