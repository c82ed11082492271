package vt100

import "fmt"

// Reply strings synthesized in response to ENQ, DA/DECID, and DSR.
const (
	replyENQ   = "\x1b[?1;2c"
	replyDA    = "\x1b[?1;6c"
	replyDSR15 = "\x1b[?13n"
	replyDSR5  = "\x1b[0n"
)

// csiSeq is a parsed CSI sequence: an optional private-mode marker, the
// numeric parameters (absent ones recorded as -1 so a handler can apply
// its own context-specific default), an intermediate byte, and the final
// byte that selected the handler.
type csiSeq struct {
	private byte
	params  []int
	inter   byte
	final   byte
}

// param returns parameter i, or def if it was omitted or absent.
func (s csiSeq) param(i, def int) int {
	if i >= len(s.params) || s.params[i] < 0 {
		return def
	}
	return s.params[i]
}

func parseCSI(raw []byte, final byte) csiSeq {
	seq := csiSeq{final: final}
	idx := 0
	if len(raw) > 0 {
		switch raw[0] {
		case '?', '<', '=', '>':
			seq.private = raw[0]
			idx = 1
		}
	}
	if idx >= len(raw) {
		return seq
	}
	cur := -1
	for ; idx < len(raw); idx++ {
		b := raw[idx]
		switch {
		case b >= '0' && b <= '9':
			if cur == -1 {
				cur = 0
			}
			cur = cur*10 + int(b-'0')
		case b == ';':
			seq.params = append(seq.params, cur)
			cur = -1
		default:
			if seq.inter == 0 {
				seq.inter = b
			}
		}
	}
	seq.params = append(seq.params, cur)
	return seq
}

func (t *Terminal) handleCSI(seq csiSeq) {
	switch seq.final {
	case 'A':
		t.cuu(seq.param(0, 1))
	case 'B':
		t.cud(seq.param(0, 1))
	case 'C':
		t.cuf(seq.param(0, 1))
	case 'D':
		t.cub(seq.param(0, 1))
	case 'H', 'f':
		t.cup(seq.param(0, 1), seq.param(1, 1))
	case 'J':
		t.ed(seq.param(0, 0))
	case 'K':
		t.el(seq.param(0, 0))
	case 'L':
		t.il(seq.param(0, 1))
	case 'M':
		t.dl(seq.param(0, 1))
	case 'P':
		t.dch(seq.param(0, 1))
	case '@':
		t.ich(seq.param(0, 1))
	case 'X':
		t.ech(seq.param(0, 1))
	case 'g':
		t.tbc(seq.param(0, 0))
	case 'm':
		t.sgr(seq)
	case 'r':
		t.decstbm(seq)
	case 'n':
		t.dsr(seq)
	case 'c':
		t.da(seq)
	case 'h':
		t.setMode(seq, true)
	case 'l':
		t.setMode(seq, false)
	default:
		t.logf("vt100: unhandled CSI final %q", seq.final)
	}
}

func (t *Terminal) cuu(n int) {
	top, _ := t.regionBounds()
	t.cursor.Y = clampInt(t.cursor.Y-n, top, t.screen.Rows()-1)
	t.cursor.LCF = false
}

func (t *Terminal) cud(n int) {
	_, bottom := t.regionBounds()
	t.cursor.Y = clampInt(t.cursor.Y+n, 0, bottom)
	t.cursor.LCF = false
}

func (t *Terminal) cuf(n int) {
	t.cursor.X = clampInt(t.cursor.X+n, 0, t.screen.Cols()-1)
	t.cursor.LCF = false
}

func (t *Terminal) cub(n int) {
	t.cursor.X = clampInt(t.cursor.X-n, 0, t.screen.Cols()-1)
	t.cursor.LCF = false
}

// cup implements CUP/HVP. Per the vertical-clamp-only resolution of
// DECOM: the row is relative to the top margin and clamped to the scroll
// region, but the column is never clamped by DECOM.
func (t *Terminal) cup(row, col int) {
	y := row - 1
	x := col - 1
	if t.modes.has(ModeDECOM) {
		y += t.marginTop
		y = clampInt(y, t.marginTop, t.marginBottom)
	} else {
		y = clampInt(y, 0, t.screen.Rows()-1)
	}
	x = clampInt(x, 0, t.screen.Cols()-1)
	t.cursor.X = x
	t.cursor.Y = y
	t.cursor.LCF = false
}

func (t *Terminal) eraseRowRange(from, to, y int) {
	row := t.screen.Row(y)
	row.ClearRange(from, to)
	t.damage.Add(from, y, to-from, 1)
}

func (t *Terminal) ed(mode int) {
	cols, rows := t.screen.Cols(), t.screen.Rows()
	switch mode {
	case 0:
		t.eraseRowRange(t.cursor.X, cols, t.cursor.Y)
		for y := t.cursor.Y + 1; y < rows; y++ {
			t.eraseRowRange(0, cols, y)
		}
	case 1:
		t.eraseRowRange(0, t.cursor.X+1, t.cursor.Y)
		for y := 0; y < t.cursor.Y; y++ {
			t.eraseRowRange(0, cols, y)
		}
	case 2:
		for y := 0; y < rows; y++ {
			t.eraseRowRange(0, cols, y)
		}
		t.damage.MarkRedrawAll()
	}
}

func (t *Terminal) el(mode int) {
	cols := t.screen.Cols()
	switch mode {
	case 0:
		t.eraseRowRange(t.cursor.X, cols, t.cursor.Y)
	case 1:
		t.eraseRowRange(0, t.cursor.X+1, t.cursor.Y)
	case 2:
		t.eraseRowRange(0, cols, t.cursor.Y)
	}
}

func (t *Terminal) il(n int) {
	if t.cursor.Y < t.marginTop || t.cursor.Y > t.marginBottom {
		return
	}
	t.screen.InsertLines(t.cursor.Y, n, t.marginTop, t.marginBottom)
	t.damage.Add(0, t.cursor.Y, t.screen.Cols(), t.marginBottom-t.cursor.Y+1)
}

func (t *Terminal) dl(n int) {
	if t.cursor.Y < t.marginTop || t.cursor.Y > t.marginBottom {
		return
	}
	t.screen.DeleteLines(t.cursor.Y, n, t.marginTop, t.marginBottom)
	t.damage.Add(0, t.cursor.Y, t.screen.Cols(), t.marginBottom-t.cursor.Y+1)
}

func (t *Terminal) dch(n int) {
	row := t.screen.Row(t.cursor.Y)
	cols := t.screen.Cols()
	x := t.cursor.X
	for i := x; i < cols; i++ {
		if src := i + n; src < cols {
			*row.Cell(i) = *row.Cell(src)
		} else {
			row.Cell(i).Reset()
		}
	}
	row.Dirty = true
	t.damage.Add(x, t.cursor.Y, cols-x, 1)
}

func (t *Terminal) ich(n int) {
	row := t.screen.Row(t.cursor.Y)
	cols := t.screen.Cols()
	x := t.cursor.X
	for i := cols - 1; i >= x+n; i-- {
		*row.Cell(i) = *row.Cell(i - n)
	}
	for i := x; i < x+n && i < cols; i++ {
		row.Cell(i).Reset()
	}
	row.Dirty = true
	t.damage.Add(x, t.cursor.Y, cols-x, 1)
}

func (t *Terminal) ech(n int) {
	cols := t.screen.Cols()
	to := t.cursor.X + n
	if to > cols {
		to = cols
	}
	t.eraseRowRange(t.cursor.X, to, t.cursor.Y)
}

func (t *Terminal) tbc(mode int) {
	switch mode {
	case 0:
		if t.cursor.X < len(t.tabstops) {
			t.tabstops[t.cursor.X] = false
		}
	case 3:
		for i := range t.tabstops {
			t.tabstops[i] = false
		}
	}
}

func (t *Terminal) sgr(seq csiSeq) {
	if len(seq.params) == 0 {
		t.attrs = Attrs{}
		return
	}
	for _, p := range seq.params {
		if p < 0 {
			p = 0
		}
		switch p {
		case 0:
			t.attrs = Attrs{}
		case 1:
			t.attrs.Bold = true
		case 4:
			t.attrs.Underline = true
		case 5:
			t.attrs.Blink = true
		case 7:
			t.attrs.Reverse = true
		case 22:
			t.attrs.Bold = false
		case 24:
			t.attrs.Underline = false
		case 25:
			t.attrs.Blink = false
		case 27:
			t.attrs.Reverse = false
		}
	}
}

func (t *Terminal) decstbm(seq csiSeq) {
	rows := t.screen.Rows()
	top := seq.param(0, 1) - 1
	bottom := seq.param(1, rows) - 1
	if top < 0 {
		top = 0
	}
	if bottom > rows-1 {
		bottom = rows - 1
	}
	if top >= bottom {
		top, bottom = 0, rows-1
	}
	t.marginTop = top
	t.marginBottom = bottom
	t.homeCursor()
}

func (t *Terminal) cpr() (row, col int) {
	row = t.cursor.Y + 1
	if t.modes.has(ModeDECOM) {
		row = t.cursor.Y - t.marginTop + 1
	}
	col = t.cursor.X + 1
	return
}

func (t *Terminal) dsr(seq csiSeq) {
	code := seq.param(0, 0)
	if seq.private == '?' {
		if code == 15 {
			t.writeResponse([]byte(replyDSR15))
		}
		return
	}
	switch code {
	case 5:
		t.writeResponse([]byte(replyDSR5))
	case 6:
		row, col := t.cpr()
		t.writeResponse([]byte(fmt.Sprintf("\x1b[%d;%dR", row, col)))
	}
}

func (t *Terminal) da(seq csiSeq) {
	t.writeResponse([]byte(replyDA))
}

func (t *Terminal) setMode(seq csiSeq, enable bool) {
	for _, p := range seq.params {
		if p < 0 {
			continue
		}
		if seq.private == '?' {
			t.applyDECMode(p, enable)
		} else {
			t.applyANSIMode(p, enable)
		}
	}
}

func (t *Terminal) applyANSIMode(code int, enable bool) {
	switch code {
	case 2:
		t.modes.set(ModeKAM, enable)
	case 4:
		t.modes.set(ModeIRM, enable)
	case 12:
		t.modes.set(ModeSRM, enable)
	case 20:
		t.modes.set(ModeLNM, enable)
	default:
		t.logf("vt100: unhandled ANSI mode %d", code)
	}
}

func (t *Terminal) applyDECMode(code int, enable bool) {
	switch code {
	case 1:
		t.modes.set(ModeDECCKM, enable)
	case 2:
		t.modes.set(ModeDECANM, enable)
	case 3:
		t.modes.set(ModeDECCOLM, enable)
		if enable {
			t.setColumns(132)
		} else {
			t.setColumns(80)
		}
	case 4:
		t.modes.set(ModeDECSCLM, enable)
	case 5:
		t.modes.set(ModeDECSCNM, enable)
	case 6:
		t.modes.set(ModeDECOM, enable)
		t.homeCursor()
	case 7:
		t.modes.set(ModeDECAWM, enable)
		if !enable {
			t.cursor.LCF = false
		}
	case 8:
		t.modes.set(ModeDECARM, enable)
	case 18:
		t.modes.set(ModeDECPFF, enable)
	case 19:
		t.modes.set(ModeDECPEX, enable)
	default:
		t.logf("vt100: unhandled DEC mode %d", code)
	}
}
