package vt100

// handleEscSimple dispatches the non-CSI, non-charset, non-hash ESC
// final bytes: IND, RI, NEL, DECSC/DECRC, DECID, and RIS.
func (t *Terminal) handleEscSimple(b byte) {
	switch b {
	case 'D':
		t.downOneLine()
	case 'M':
		t.upOneLine()
	case 'E':
		t.cursor.X = 0
		t.downOneLine()
		t.cursor.LCF = false
	case 'H':
		if t.cursor.X < len(t.tabstops) {
			t.tabstops[t.cursor.X] = true
		}
	case '7':
		t.decsc()
	case '8':
		t.decrc()
	case 'Z':
		t.writeResponse([]byte(replyDA))
	case 'c':
		t.ris()
	case '\\':
		// String terminator with no open string: ignore.
	default:
		t.logf("vt100: unhandled ESC %q", b)
	}
}

func (t *Terminal) decsc() {
	t.saved = SavedCursor{
		valid:        true,
		X:            t.cursor.X,
		Y:            t.cursor.Y,
		Attrs:        t.attrs,
		CharsetIndex: t.gl,
		LCF:          t.cursor.LCF,
	}
}

func (t *Terminal) decrc() {
	if !t.saved.valid {
		return
	}
	t.cursor.X = t.saved.X
	t.cursor.Y = t.saved.Y
	t.attrs = t.saved.Attrs
	t.gl = t.saved.CharsetIndex
	t.cursor.LCF = t.saved.LCF
}

// handleHash dispatches ESC # n: the DEC double-width/double-height row
// attributes and the DECALN alignment pattern.
func (t *Terminal) handleHash(b byte) {
	switch b {
	case '3':
		row := t.screen.Row(t.cursor.Y)
		row.DoubleHeight, row.DoubleWidth, row.DoubleSide = true, true, DoubleTop
		row.Dirty = true
		t.damage.Add(0, t.cursor.Y, t.screen.Cols(), 1)
	case '4':
		row := t.screen.Row(t.cursor.Y)
		row.DoubleHeight, row.DoubleWidth, row.DoubleSide = true, true, DoubleBottom
		row.Dirty = true
		t.damage.Add(0, t.cursor.Y, t.screen.Cols(), 1)
	case '5':
		row := t.screen.Row(t.cursor.Y)
		row.DoubleHeight, row.DoubleWidth, row.DoubleSide = false, false, DoubleNone
		row.Dirty = true
		t.damage.Add(0, t.cursor.Y, t.screen.Cols(), 1)
	case '6':
		row := t.screen.Row(t.cursor.Y)
		row.DoubleWidth, row.DoubleHeight, row.DoubleSide = true, false, DoubleNone
		row.Dirty = true
		t.damage.Add(0, t.cursor.Y, t.screen.Cols(), 1)
	case '8':
		t.decaln()
	default:
		t.logf("vt100: unhandled ESC # %q", b)
	}
}

// decaln is DECALN: fill the whole screen with 'E' for margin alignment
// testing.
func (t *Terminal) decaln() {
	for y := 0; y < t.screen.Rows(); y++ {
		row := t.screen.Row(y)
		for x := 0; x < t.screen.Cols(); x++ {
			cell := row.Cell(x)
			cell.SetRune('E')
			cell.Attrs = Attrs{}
		}
		row.Dirty = true
	}
	t.damage.MarkRedrawAll()
}
