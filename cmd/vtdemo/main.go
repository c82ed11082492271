// Command vtdemo drives a real shell through the vt100 core over a
// pseudoterminal, confirming the core's host-facing API is enough to run
// an interactive session end to end. It is a demonstration and
// integration binary, not part of the vt100 package's public contract.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/creack/pty"

	vt100 "github.com/dgoulet/vt100core"
)

// textGraphics renders the screen as plain text to stdout on every
// Render call; good enough to prove the core is being driven correctly
// without pulling in a terminal UI library.
type textGraphics struct {
	cols, rows int
	cells      [][]vt100.Cell
}

func newTextGraphics(cols, rows int) *textGraphics {
	g := &textGraphics{}
	g.Resize(cols, rows)
	return g
}

func (g *textGraphics) Clear(x, y, w, h int) {
	for row := y; row < y+h && row < g.rows; row++ {
		for col := x; col < x+w && col < g.cols; col++ {
			g.cells[row][col] = vt100.NewCell()
		}
	}
}

func (g *textGraphics) DrawCell(x, y int, cell *vt100.Cell, dblWide bool, dblHeight int) {
	if y < 0 || y >= g.rows || x < 0 || x >= g.cols {
		return
	}
	g.cells[y][x] = *cell
}

func (g *textGraphics) Resize(cols, rows int) {
	cells := make([][]vt100.Cell, rows)
	for y := range cells {
		row := make([]vt100.Cell, cols)
		for x := range row {
			row[x] = vt100.NewCell()
		}
		cells[y] = row
	}
	g.cols, g.rows, g.cells = cols, rows, cells
}

func (g *textGraphics) Invert(on bool) {}

func (g *textGraphics) dump(w io.Writer) {
	fmt.Fprint(w, "\x1b[H\x1b[2J")
	for _, row := range g.cells {
		for _, c := range row {
			fmt.Fprint(w, c.String())
		}
		fmt.Fprintln(w)
	}
}

func main() {
	const cols, rows = 80, 24

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: cols, Rows: rows})
	if err != nil {
		log.Fatalf("vtdemo: start pty: %v", err)
	}
	defer ptmx.Close()

	gfx := newTextGraphics(cols, rows)
	term := vt100.New(
		vt100.WithSize(cols, rows),
		vt100.WithReply(ptmx),
		vt100.WithGraphics(gfx),
		vt100.WithLogger(log.New(os.Stderr, "vt100: ", 0)),
	)

	go func() {
		in := make([]byte, 1024)
		for {
			n, err := os.Stdin.Read(in)
			if n > 0 {
				if _, werr := term.Input(in[:n]); werr != nil {
					log.Printf("vtdemo: %v", werr)
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			term.Process(buf[:n])
			term.Fill()
			term.Render()
			gfx.dump(os.Stdout)
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("vtdemo: read pty: %v", err)
			}
			return
		}
	}
}
