package vt100

// processByte drives the byte-level state machine. CAN and SUB abort any
// in-progress sequence back to Ground; a second ESC restarts a sequence
// rather than nesting.
func (t *Terminal) processByte(b byte) {
	if t.pstate != stateGround && (b == 0x18 || b == 0x1a) {
		t.pstate = stateGround
		return
	}
	if t.pstate != stateGround && b == 0x1b {
		t.pstate = stateEscape
		t.seqBuf = t.seqBuf[:0]
		return
	}

	switch t.pstate {
	case stateGround:
		t.groundByte(b)
	case stateEscape:
		t.escapeByte(b)
	case stateCSI:
		t.csiByte(b)
	case stateCharsetG0:
		if cs, ok := charsetFromFinal(b); ok {
			t.g[0] = cs
		} else {
			t.logf("vt100: unhandled charset designation ESC ( %q", b)
		}
		t.pstate = stateGround
	case stateCharsetG1:
		if cs, ok := charsetFromFinal(b); ok {
			t.g[1] = cs
		} else {
			t.logf("vt100: unhandled charset designation ESC ) %q", b)
		}
		t.pstate = stateGround
	case stateHash:
		t.handleHash(b)
		t.pstate = stateGround
	case stateVT52:
		t.vt52Byte(b)
	}
}

func isC0(b byte) bool { return b < 0x20 }

func (t *Terminal) groundByte(b byte) {
	if b == 0x1b {
		if t.modes.has(ModeDECANM) {
			t.pstate = stateEscape
		} else {
			t.pstate = stateVT52
			t.vt52Buf = t.vt52Buf[:0]
		}
		t.seqBuf = t.seqBuf[:0]
		return
	}
	if isC0(b) {
		t.handleC0(b)
		return
	}
	if b == 0x7f {
		return
	}
	if b > 0x7e {
		t.logf("vt100: dropped non-printable byte %#x", b)
		return
	}
	t.printByte(b)
}

func (t *Terminal) handleC0(b byte) {
	switch b {
	case 0x05:
		t.cursor.LCF = false
		t.writeResponse([]byte(replyENQ))
	case 0x08:
		t.moveBack(1)
	case 0x09:
		t.tabForward()
	case 0x0a, 0x0b, 0x0c:
		t.lineFeed()
	case 0x0d:
		t.cr()
	case 0x0e:
		t.cursor.LCF = false
		t.gl = 1
	case 0x0f:
		t.cursor.LCF = false
		t.gl = 0
	default:
		// NUL, BEL, and other unassigned C0 codes are silently ignored.
	}
}

func (t *Terminal) escapeByte(b byte) {
	switch b {
	case '[':
		t.pstate = stateCSI
		t.seqBuf = t.seqBuf[:0]
	case '#':
		t.pstate = stateHash
	case '(':
		t.pstate = stateCharsetG0
	case ')':
		t.pstate = stateCharsetG1
	default:
		t.handleEscSimple(b)
		t.pstate = stateGround
	}
}

func (t *Terminal) csiByte(b byte) {
	if b >= 0x40 && b <= 0x7e {
		seq := parseCSI(t.seqBuf, b)
		t.handleCSI(seq)
		t.pstate = stateGround
		return
	}
	t.seqBuf = append(t.seqBuf, b)
}

func (t *Terminal) vt52Byte(b byte) {
	t.vt52Buf = append(t.vt52Buf, b)
	if t.vt52Buf[0] == 'Y' && len(t.vt52Buf) < 3 {
		return
	}
	t.handleVT52(t.vt52Buf)
	t.pstate = stateGround
}
