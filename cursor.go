package vt100

// Cursor is the terminal's active write position. X and Y are zero-based
// screen coordinates. LCF (Last-Column Flag) implements deferred autowrap:
// when a printable character lands in the rightmost column, the cursor
// stays put with LCF set rather than advancing off the grid, and the wrap
// actually happens just before the *next* printable character is placed.
type Cursor struct {
	X, Y int
	LCF  bool
}

// SavedCursor is the single-level cursor snapshot taken by DECSC (ESC 7)
// and restored by DECRC (ESC 8). VT100/102 keeps exactly one saved level,
// no stack.
type SavedCursor struct {
	valid        bool
	X, Y         int
	Attrs        Attrs
	CharsetIndex int
	LCF          bool
}
