package vt100

import "testing"

// TestScenarioBasicOutput mirrors vt_test.cc's BasicOutput case: plain text
// lands left to right with no surprises.
func TestScenarioBasicOutput(t *testing.T) {
	term := New(WithSize(20, 5))
	term.Process([]byte("hello, world"))
	for i, want := range "hello, world" {
		if got := term.Cell(i, 0).Rune(); got != want {
			t.Fatalf("cell(%d,0) = %q, want %q", i, got, want)
		}
	}
}

// TestScenarioDeferredWrap exercises the Last-Column Flag directly: a
// character landing in the last column does not advance the cursor until
// the next printable character arrives.
func TestScenarioDeferredWrap(t *testing.T) {
	term := New(WithSize(10, 3))
	term.Process([]byte("\x1b[?7h")) // DECAWM
	term.Process([]byte("0123456789"))
	x, y := term.CursorPos()
	if x != 9 || y != 0 {
		t.Fatalf("cursor after filling row = (%d,%d), want (9,0)", x, y)
	}
	term.Process([]byte("\x1b[6n")) // DSR 6 must report the pre-wrap column
	term.Process([]byte("X"))
	x, y = term.CursorPos()
	if x != 1 || y != 1 {
		t.Fatalf("cursor after wrap = (%d,%d), want (1,1)", x, y)
	}
	if c := term.Cell(0, 1); c.Rune() != 'X' {
		t.Errorf("cell(0,1) = %q, want 'X'", c.Rune())
	}
}

// TestScenarioSimpleWrapWithBackspace is the decawm.c "case 1" pattern:
// writing the last column character then backspacing and overwriting
// should not trigger an autowrap.
func TestScenarioSimpleWrapWithBackspace(t *testing.T) {
	term := New(WithSize(10, 3))
	term.Process([]byte("\x1b[?7h")) // DECAWM
	term.Process([]byte("\x1b[1;10HZ\b Y"))
	if c := term.Cell(9, 0); c.Rune() != 'Y' {
		t.Fatalf("cell(9,0) = %q, want 'Y'", c.Rune())
	}
	x, y := term.CursorPos()
	if y != 0 {
		t.Fatalf("cursor row = %d, want 0 (no wrap triggered by backspace)", y)
	}
	_ = x
}

// TestScenarioTabToRightMargin is decawm.c's "case 2": tabbing from near
// the right margin clamps to the last column instead of wrapping.
func TestScenarioTabToRightMargin(t *testing.T) {
	term := New(WithSize(10, 3))
	term.Process([]byte("\x1b[?7h")) // DECAWM
	term.Process([]byte("\x1b[1;8H\t\tZ"))
	x, y := term.CursorPos()
	if y != 0 {
		t.Fatalf("tab wrapped to row %d, want row 0", y)
	}
	if c := term.Cell(9, 0); c.Rune() != 'Z' {
		t.Errorf("cell(9,0) = %q, want 'Z'", c.Rune())
	}
	_ = x
}

// TestScenarioNewlineAtRightMargin is decawm.c's "case 3": cursor parked
// in the last column, then an explicit LF must not double-advance.
func TestScenarioNewlineAtRightMargin(t *testing.T) {
	term := New(WithSize(10, 3))
	term.Process([]byte("\x1b[1;10H\n"))
	x, y := term.CursorPos()
	if y != 1 {
		t.Fatalf("row after LF at right margin = %d, want 1", y)
	}
	if x != 9 {
		t.Fatalf("col after LF at right margin = %d, want 9 (LF does not CR)", x)
	}
}

// TestScenarioDECAWMAutowrapDriver reproduces the shape of
// original_source/src/decawm.c's vttest autowrap driver: 80 columns, a
// scrolling region carved out of the screen, DECAWM enabled, and letters
// placed alternately at the left and right margins of the region on
// successive lines. DECOM is left off here so the region's rows can be
// addressed absolutely, keeping the expected positions unambiguous; the
// region/margin/autowrap interaction itself is exercised exactly as the
// C driver sets it up.
func TestScenarioDECAWMAutowrapDriver(t *testing.T) {
	term := New(WithSize(80, 25))
	term.Process([]byte("\x1b[?3l"))   // 80-column mode
	term.Process([]byte("\x1b[3;21r")) // DECSTBM: region is absolute rows 3..21
	term.Process([]byte("\x1b[?7h"))   // DECAWM

	onLeft := "ABCDE"
	onRight := "abcde"
	for i := 0; i < len(onLeft); i++ {
		row := 3 + i
		term.Process([]byte("\x1b["))
		term.Process([]byte{byte('0' + row/10), byte('0' + row%10)})
		term.Process([]byte(";1H"))
		term.Process([]byte{onLeft[i]})

		term.Process([]byte("\x1b["))
		term.Process([]byte{byte('0' + row/10), byte('0' + row%10)})
		term.Process([]byte(";80H"))
		term.Process([]byte{onRight[i]})
	}

	term.Process([]byte("\x1b[r")) // unset DECSTBM

	for i := 0; i < len(onLeft); i++ {
		y := 2 + i // row 3 is index 2
		if c := term.Cell(0, y); c.Rune() != rune(onLeft[i]) {
			t.Errorf("left margin row %d = %q, want %q", y, c.Rune(), onLeft[i])
		}
		if c := term.Cell(79, y); c.Rune() != rune(onRight[i]) {
			t.Errorf("right margin row %d = %q, want %q", y, c.Rune(), onRight[i])
		}
	}
}
