package vt100

// handleVT52 dispatches a VT52-mode escape sequence accumulated while
// DECANM is clear. Every opcode completes on its first byte except 'Y',
// the direct cursor address, which needs two more bytes (row, column)
// each encoded as l-0x20-1, c-0x20-1.
func (t *Terminal) handleVT52(buf []byte) {
	switch buf[0] {
	case 'A':
		t.cuu(1)
	case 'B':
		t.cud(1)
	case 'C':
		t.cuf(1)
	case 'D':
		t.cub(1)
	case 'H':
		t.cursor.X, t.cursor.Y, t.cursor.LCF = 0, 0, false
	case 'I':
		t.upOneLine()
	case 'J':
		t.ed(0)
	case 'K':
		t.el(0)
	case 'Y':
		if len(buf) < 3 {
			return
		}
		y := int(buf[1]) - 0x20 - 1
		x := int(buf[2]) - 0x20 - 1
		t.cursor.Y = clampInt(y, 0, t.screen.Rows()-1)
		t.cursor.X = clampInt(x, 0, t.screen.Cols()-1)
		t.cursor.LCF = false
	case 'Z':
		t.writeResponse([]byte("\x1b/Z"))
	case 'F':
		t.g[0] = CharsetSpecialGraphics
	case 'G':
		t.g[0] = CharsetASCII
	case '<':
		t.modes.set(ModeDECANM, true)
	default:
		t.logf("vt100: unhandled VT52 opcode %q", buf[0])
	}
}
