// Package vt100 implements the control-sequence interpreter of a
// DEC VT100/VT102 terminal: the part that turns a byte stream into
// cursor motion, screen content, and damaged rectangles. It emulates a
// terminal without any display of its own, driving a caller-supplied
// [Graphics] collaborator instead, which makes it suitable for:
//
//   - Building a real terminal emulator UI on top of a rendering layer
//   - Driving a pseudoterminal session headlessly (see cmd/vtdemo)
//   - Testing what a shell or full-screen program would draw
//
// # Quick Start
//
//	term := vt100.New(vt100.WithSize(80, 24))
//	term.Process([]byte("\x1b[1mHello\x1b[0m, world!"))
//	term.SetGraphics(myGraphics)
//	term.Fill()
//	term.Render()
//
// # Architecture
//
//   - [Terminal]: owns cursor, modes, margins, and the parser state
//     machine, and processes bytes via [Terminal.Process]
//   - [Screen] and [Row]: the fixed-size cell grid
//   - [Cell]: a translated codepoint plus its SGR [Attrs]
//   - [Damage]: the set of rectangles that changed since the last
//     [Terminal.Render]
//   - [Graphics]: the collaborator interface the core paints through
//
// # Single-threaded
//
// A Terminal is not safe for concurrent use. It is meant to be driven by
// one goroutine reading a pseudoterminal's output and calling Process,
// exactly as the hardware it emulates processed one byte at a time with
// no internal concurrency.
//
// # Scope
//
// This is a VT100/VT102 core, not a full xterm emulation: no scrollback,
// no alternate screen, no true-color SGR, no mouse reporting, no sixel or
// other image protocols, and no OSC title/clipboard handling. Character
// sets are limited to ASCII, UK, and DEC Special Graphics. See the
// project's SPEC_FULL.md for the complete module list and the rationale
// for what was left out.
//
// # Supported control sequences
//
// Cursor motion (CUU/CUD/CUF/CUB/CUP/HVP), erasing (ED/EL/ECH), line and
// character editing (IL/DL/ICH/DCH), scrolling margins (DECSTBM),
// character attributes (SGR: bold, underline, blink, reverse), ANSI and
// DEC private modes (KAM, IRM, SRM, LNM, DECCKM, DECANM, DECCOLM,
// DECSCLM, DECSCNM, DECOM, DECAWM, DECARM, DECPFF, DECPEX), tab stops
// (HTS/TBC), saved cursor (DECSC/DECRC), alignment pattern (DECALN),
// double-width/double-height lines, terminal identification (DA, DECID),
// device status reports (DSR, CPR), and the VT52 emulation sub-mode.
package vt100
