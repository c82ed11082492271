package vt100

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(24, 80)
	if s.Rows() != 24 || s.Cols() != 80 {
		t.Fatalf("got %dx%d, want 80x24", s.Cols(), s.Rows())
	}
	if r := s.Cell(0, 0).Rune(); r != ' ' {
		t.Errorf("cell (0,0) = %q, want space", r)
	}
}

func TestScreenCapsAtMaxCols(t *testing.T) {
	s := NewScreen(24, 200)
	if s.Cols() != MaxCols {
		t.Errorf("Cols() = %d, want %d", s.Cols(), MaxCols)
	}
}

func TestScreenScrollUp(t *testing.T) {
	s := NewScreen(5, 10)
	s.Cell(0, 0).SetRune('A')
	s.Cell(0, 1).SetRune('B')
	s.ScrollUp(0, 4)
	if got := s.Cell(0, 0).Rune(); got != 'B' {
		t.Errorf("row 0 after scroll = %q, want 'B'", got)
	}
	if got := s.Cell(0, 4).Rune(); got != ' ' {
		t.Errorf("new bottom row = %q, want blank", got)
	}
}

func TestScreenScrollUpRegion(t *testing.T) {
	s := NewScreen(5, 10)
	for y := 0; y < 5; y++ {
		s.Cell(0, y).SetRune(rune('0' + y))
	}
	s.ScrollUp(1, 3)
	if got := s.Cell(0, 0).Rune(); got != '0' {
		t.Errorf("row 0 = %q, want untouched '0'", got)
	}
	if got := s.Cell(0, 1).Rune(); got != '2' {
		t.Errorf("row 1 = %q, want '2'", got)
	}
	if got := s.Cell(0, 3).Rune(); got != ' ' {
		t.Errorf("row 3 = %q, want blank", got)
	}
	if got := s.Cell(0, 4).Rune(); got != '4' {
		t.Errorf("row 4 = %q, want untouched '4'", got)
	}
}

func TestScreenScrollDown(t *testing.T) {
	s := NewScreen(5, 10)
	s.Cell(0, 4).SetRune('Z')
	s.ScrollDown(0, 4)
	if got := s.Cell(0, 4).Rune(); got != ' ' {
		t.Errorf("row 4 after scroll down = %q, want blank ('Z' discarded)", got)
	}
	if got := s.Cell(0, 0).Rune(); got != ' ' {
		t.Errorf("row 0 after scroll down = %q, want blank", got)
	}
}

func TestScreenInsertDeleteLines(t *testing.T) {
	s := NewScreen(5, 10)
	for y := 0; y < 5; y++ {
		s.Cell(0, y).SetRune(rune('0' + y))
	}
	s.InsertLines(1, 1, 0, 4)
	if got := s.Cell(0, 1).Rune(); got != ' ' {
		t.Errorf("after InsertLines row 1 = %q, want blank", got)
	}
	if got := s.Cell(0, 2).Rune(); got != '1' {
		t.Errorf("after InsertLines row 2 = %q, want '1'", got)
	}
	if got := s.Cell(0, 4).Rune(); got != '3' {
		t.Errorf("after InsertLines row 4 = %q, want '3' shifted down from row 3", got)
	}

	s2 := NewScreen(5, 10)
	for y := 0; y < 5; y++ {
		s2.Cell(0, y).SetRune(rune('0' + y))
	}
	s2.DeleteLines(1, 1, 0, 4)
	if got := s2.Cell(0, 1).Rune(); got != '2' {
		t.Errorf("after DeleteLines row 1 = %q, want '2'", got)
	}
	if got := s2.Cell(0, 4).Rune(); got != ' ' {
		t.Errorf("after DeleteLines row 4 = %q, want blank", got)
	}
}

func TestRowClearRange(t *testing.T) {
	r := NewRow()
	r.Cell(0).SetRune('A')
	r.Cell(1).SetRune('B')
	r.ClearRange(0, 1)
	if got := r.Cell(0).Rune(); got != ' ' {
		t.Errorf("cell 0 = %q, want blank", got)
	}
	if got := r.Cell(1).Rune(); got != 'B' {
		t.Errorf("cell 1 = %q, want 'B' untouched", got)
	}
}
