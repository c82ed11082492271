package vt100

import (
	"errors"
	"fmt"
	"io"
	"log"
	"syscall"
)

// Logger is the minimal logging surface the core needs for parse-anomaly
// and reply-write-error reporting. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

func defaultLogger() Logger {
	return log.New(io.Discard, "", 0)
}

type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
	stateCharsetG0
	stateCharsetG1
	stateHash
	stateVT52
)

// Terminal is a VT100/VT102 control-sequence interpreter. It owns a
// screen buffer, cursor, modes, and damage tracker, and drives a Graphics
// collaborator to render what changed. It is single-threaded and
// cooperative: a caller must not call its methods from more than one
// goroutine concurrently, and Process must not be called re-entrantly
// from within a Graphics callback.
type Terminal struct {
	screen *Screen

	cursor Cursor
	saved  SavedCursor

	modes                   Mode
	marginTop, marginBottom int

	g  [2]Charset
	gl int

	attrs Attrs

	tabstops []bool

	damage   Damage
	graphics Graphics

	reply  io.Writer
	logger Logger

	pstate  parserState
	seqBuf  []byte
	vt52Buf []byte
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithSize sets the initial screen dimensions. Default is 80x24.
func WithSize(cols, rows int) Option {
	return func(t *Terminal) {
		t.screen = NewScreen(rows, cols)
		t.marginTop = 0
		t.marginBottom = rows - 1
		t.tabstops = resetTabStops(t.screen.Cols())
	}
}

// WithReply sets the sink that receives synthesized replies (DA, DSR,
// CPR, DECID) and any bytes forwarded through Input.
func WithReply(w io.Writer) Option {
	return func(t *Terminal) { t.reply = w }
}

// WithGraphics sets the rendering collaborator.
func WithGraphics(g Graphics) Option {
	return func(t *Terminal) { t.graphics = g }
}

// WithLogger sets the logger used for parse anomalies and write errors.
// By default nothing is logged.
func WithLogger(l Logger) Option {
	return func(t *Terminal) { t.logger = l }
}

// New constructs a Terminal ready to Process bytes.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		screen:   NewScreen(24, 80),
		graphics: NoopGraphics{},
		logger:   defaultLogger(),
		modes:    defaultModes,
	}
	t.marginBottom = t.screen.Rows() - 1
	t.tabstops = resetTabStops(t.screen.Cols())
	for _, opt := range opts {
		opt(t)
	}
	t.graphics.Resize(t.screen.Cols(), t.screen.Rows())
	return t
}

func resetTabStops(cols int) []bool {
	ts := make([]bool, cols)
	for i := 8; i < cols; i += 8 {
		ts[i] = true
	}
	return ts
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Process feeds raw output bytes from the pseudo-shell into the parser,
// mutating screen, cursor, mode, and damage state. It never returns an
// error: unhandled sequences, mode numbers and charset designations are
// logged and otherwise ignored, per the core's degrade-silently contract.
// Unsupported parameter values of a handled sequence (an unknown SGR, DSR,
// ED or TBC code) are ignored without a log line.
func (t *Terminal) Process(p []byte) {
	for _, b := range p {
		t.processByte(b)
	}
}

// Input forwards bytes (typically keystrokes) to the reply sink, retrying
// on EINTR the way a blocking write to a pty master would need to.
func (t *Terminal) Input(p []byte) (int, error) {
	if t.reply == nil {
		return len(p), nil
	}
	for {
		n, err := t.reply.Write(p)
		if err == nil {
			return n, nil
		}
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		return n, fmt.Errorf("vt100: write reply: %w", err)
	}
}

func (t *Terminal) writeResponse(p []byte) {
	if _, err := t.Input(p); err != nil {
		t.logf("%v", err)
	}
}

func (t *Terminal) logf(format string, args ...interface{}) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
	}
}

// SetGraphics swaps the rendering collaborator, notifying it of the
// current size.
func (t *Terminal) SetGraphics(g Graphics) {
	if g == nil {
		g = NoopGraphics{}
	}
	t.graphics = g
	t.graphics.Resize(t.screen.Cols(), t.screen.Rows())
}

// Render walks the pending damage and drives the Graphics collaborator,
// then clears the damage. A redraw-all request repaints every cell.
func (t *Terminal) Render() {
	g := t.graphics
	if t.damage.RedrawAll() {
		g.Clear(0, 0, t.screen.Cols(), t.screen.Rows())
		for y := 0; y < t.screen.Rows(); y++ {
			t.renderRow(y, 0, t.screen.Cols())
		}
	} else {
		for _, r := range t.damage.Rects() {
			for y := r.Y; y < r.Y+r.H && y < t.screen.Rows(); y++ {
				t.renderRow(y, r.X, r.X+r.W)
			}
		}
	}
	g.Invert(t.modes.has(ModeDECSCNM))
	t.damage.Clear()
}

func (t *Terminal) renderRow(y, from, to int) {
	row := t.screen.Row(y)
	dh := 0
	if row.DoubleHeight {
		if row.DoubleSide == DoubleTop {
			dh = 1
		} else {
			dh = 2
		}
	}
	cols := t.screen.Cols()
	if to > cols {
		to = cols
	}
	for x := from; x < to; x++ {
		t.graphics.DrawCell(x, y, row.Cell(x), row.DoubleWidth || row.DoubleHeight, dh)
	}
}

// Fill forces a full redraw on the next Render, e.g. after attaching a
// new Graphics collaborator mid-session.
func (t *Terminal) Fill() {
	t.damage.MarkRedrawAll()
}

// Resize changes the screen dimensions, preserving the overlapping
// top-left region of content. It is a host-driven operation (a window
// resize), not a VT100 control sequence.
func (t *Terminal) Resize(cols, rows int) {
	old := t.screen
	ns := NewScreen(rows, cols)
	for y := 0; y < rows && y < old.Rows(); y++ {
		for x := 0; x < cols && x < old.Cols(); x++ {
			*ns.Cell(x, y) = *old.Cell(x, y)
		}
	}
	t.screen = ns
	t.marginTop = 0
	t.marginBottom = rows - 1
	t.tabstops = resetTabStops(cols)
	t.cursor.X = clampInt(t.cursor.X, 0, cols-1)
	t.cursor.Y = clampInt(t.cursor.Y, 0, rows-1)
	t.cursor.LCF = false
	t.damage.MarkRedrawAll()
	t.graphics.Resize(cols, rows)
}

// Cols reports the active column count.
func (t *Terminal) Cols() int { return t.screen.Cols() }

// Rows reports the row count.
func (t *Terminal) Rows() int { return t.screen.Rows() }

// CursorPos returns the cursor's zero-based screen coordinates.
func (t *Terminal) CursorPos() (x, y int) { return t.cursor.X, t.cursor.Y }

// Cell returns a copy of the cell at (x, y).
func (t *Terminal) Cell(x, y int) Cell { return *t.screen.Cell(x, y) }

// setColumns implements the screen-clearing side effect of DECCOLM: a new
// column count takes effect, the whole screen is erased, margins reset to
// full height, and the cursor homes.
func (t *Terminal) setColumns(cols int) {
	rows := t.screen.Rows()
	t.screen = NewScreen(rows, cols)
	t.marginTop = 0
	t.marginBottom = rows - 1
	t.tabstops = resetTabStops(cols)
	t.cursor = Cursor{}
	t.damage.MarkRedrawAll()
	t.graphics.Resize(cols, rows)
}

func (t *Terminal) regionBounds() (top, bottom int) {
	if t.modes.has(ModeDECOM) {
		return t.marginTop, t.marginBottom
	}
	return 0, t.screen.Rows() - 1
}

// homeCursor moves the cursor to the origin: row 0 normally, or the top
// margin row when DECOM is set.
func (t *Terminal) homeCursor() {
	if t.modes.has(ModeDECOM) {
		t.cursor.Y = t.marginTop
	} else {
		t.cursor.Y = 0
	}
	t.cursor.X = 0
	t.cursor.LCF = false
}

// downOneLine advances the cursor one row, scrolling the scroll region up
// when the cursor sits on the bottom margin.
func (t *Terminal) downOneLine() {
	if t.cursor.Y == t.marginBottom {
		t.screen.ScrollUp(t.marginTop, t.marginBottom)
		t.damage.Add(0, t.marginTop, t.screen.Cols(), t.marginBottom-t.marginTop+1)
		return
	}
	if t.cursor.Y < t.screen.Rows()-1 {
		t.cursor.Y++
	}
}

// upOneLine retreats the cursor one row, scrolling the scroll region down
// when the cursor sits on the top margin.
func (t *Terminal) upOneLine() {
	if t.cursor.Y == t.marginTop {
		t.screen.ScrollDown(t.marginTop, t.marginBottom)
		t.damage.Add(0, t.marginTop, t.screen.Cols(), t.marginBottom-t.marginTop+1)
		return
	}
	if t.cursor.Y > 0 {
		t.cursor.Y--
	}
}

func (t *Terminal) lineFeed() {
	t.downOneLine()
	if t.modes.has(ModeLNM) {
		t.cursor.X = 0
	}
	t.cursor.LCF = false
}

func (t *Terminal) cr() {
	t.cursor.X = 0
	t.cursor.LCF = false
}

func (t *Terminal) tabForward() {
	cols := t.screen.Cols()
	x := t.cursor.X + 1
	for x < cols-1 && !t.tabstops[x] {
		x++
	}
	if x >= cols {
		x = cols - 1
	}
	t.cursor.X = x
	t.cursor.LCF = false
}

func (t *Terminal) moveBack(n int) {
	t.cursor.X = clampInt(t.cursor.X-n, 0, t.screen.Cols()-1)
	t.cursor.LCF = false
}

// ris is RIS (ESC c), a full terminal reset.
func (t *Terminal) ris() {
	rows, cols := t.screen.Rows(), t.screen.Cols()
	t.screen.ClearAll()
	t.marginTop = 0
	t.marginBottom = rows - 1
	t.tabstops = resetTabStops(cols)
	t.cursor = Cursor{}
	t.saved = SavedCursor{}
	t.modes = defaultModes
	t.g[0] = CharsetASCII
	t.g[1] = CharsetASCII
	t.gl = 0
	t.attrs = Attrs{}
	t.damage.MarkRedrawAll()
}

// printByte places one GL byte on the screen, applying deferred autowrap,
// insert mode, and the active charset translation.
func (t *Terminal) printByte(b byte) {
	cols := t.screen.Cols()
	r := translate(t.g[t.gl], b)

	if t.cursor.LCF {
		if t.modes.has(ModeDECAWM) {
			t.cursor.X = 0
			t.downOneLine()
		} else {
			t.cursor.X = cols - 1
		}
		t.cursor.LCF = false
	}

	if t.modes.has(ModeIRM) {
		t.ich(1)
	}

	row := t.screen.Row(t.cursor.Y)
	cell := row.Cell(t.cursor.X)
	cell.SetRune(r)
	cell.Attrs = t.attrs
	row.Dirty = true
	t.damage.Add(t.cursor.X, t.cursor.Y, 1, 1)

	if t.cursor.X == cols-1 {
		t.cursor.LCF = true
	} else {
		t.cursor.X++
	}
}
