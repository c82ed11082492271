package vt100

import "unicode/utf8"

// Attrs holds the four SGR attributes a VT100/102 cell can carry. There is
// no color model here: true-color and palette SGR codes are out of scope
// for this emulator.
type Attrs struct {
	Bold      bool
	Underline bool
	Blink     bool
	Reverse   bool
}

// Cell is a single displayed position: a translated codepoint payload (up
// to 4 bytes of UTF-8, the most a single rune needs) plus the attributes
// in effect when it was written. Cells are value types owned exclusively
// by the Row that holds them.
type Cell struct {
	payload    [utf8.UTFMax]byte
	payloadLen uint8
	Attrs      Attrs
}

// NewCell returns a cell holding a plain space with no attributes.
func NewCell() Cell {
	var c Cell
	c.SetRune(' ')
	return c
}

// Reset restores the cell to a blank space with default attributes.
func (c *Cell) Reset() {
	c.SetRune(' ')
	c.Attrs = Attrs{}
}

// SetRune encodes r as the cell's payload.
func (c *Cell) SetRune(r rune) {
	c.payloadLen = uint8(utf8.EncodeRune(c.payload[:], r))
}

// SetBytes stores a pre-encoded UTF-8 payload. At most utf8.UTFMax bytes
// are kept; any further bytes are dropped.
func (c *Cell) SetBytes(b []byte) {
	c.payloadLen = uint8(copy(c.payload[:], b))
}

// Bytes returns the cell's raw UTF-8 payload.
func (c Cell) Bytes() []byte {
	return c.payload[:c.payloadLen]
}

// String returns the cell's payload decoded as a string.
func (c Cell) String() string {
	return string(c.payload[:c.payloadLen])
}

// Rune decodes and returns the cell's payload as a single rune.
func (c Cell) Rune() rune {
	r, _ := utf8.DecodeRune(c.payload[:c.payloadLen])
	return r
}
