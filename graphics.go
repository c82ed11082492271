package vt100

// Graphics is the rendering collaborator the core drives. It owns no
// terminal state of its own: every call tells it exactly what changed, in
// screen coordinates, so it can blit to whatever backs it (a real
// terminal, a test buffer, a GUI canvas).
type Graphics interface {
	// Clear blanks the rectangle (x, y, w, h).
	Clear(x, y, w, h int)
	// DrawCell paints a single cell. dblWide marks a double-width line;
	// dblHeight is 0 for normal, 1 for the top half, 2 for the bottom
	// half of a double-height line.
	DrawCell(x, y int, cell *Cell, dblWide bool, dblHeight int)
	// Resize notifies the collaborator of a new screen size.
	Resize(cols, rows int)
	// Invert toggles whole-screen reverse video (DECSCNM).
	Invert(on bool)
}

// NoopGraphics discards every call; it is the default collaborator so a
// Terminal can be driven (and tested) with no renderer attached.
type NoopGraphics struct{}

func (NoopGraphics) Clear(x, y, w, h int)                          {}
func (NoopGraphics) DrawCell(x, y int, c *Cell, dw bool, dh int)    {}
func (NoopGraphics) Resize(cols, rows int)                         {}
func (NoopGraphics) Invert(on bool)                                {}

var _ Graphics = NoopGraphics{}
