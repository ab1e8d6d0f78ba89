// Package display renders a board as text: a four-character-per-square console grid and
// a lipgloss-styled grid for the interactive viewer.
package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/brensch/paintbots/game"
	"github.com/brensch/paintbots/rules"
)

// blank is shown for every square until the first change notification arrives.
const blank = "W---"

// SquareCode encodes a square as [color][robot][rock][fog], e.g. "RR--" for a red
// square holding the red robot or "W-X-" for an unpainted rock. Walls are "WWWW".
func SquareCode(v game.SquareView) string {
	if v.Terrain == game.Wall {
		return "WWWW"
	}
	var b [4]byte
	switch v.Color {
	case game.Red:
		b[0] = 'R'
	case game.Blue:
		b[0] = 'B'
	default:
		b[0] = 'W'
	}
	switch {
	case v.RedRobot:
		b[1] = 'R'
	case v.BlueRobot:
		b[1] = 'B'
	default:
		b[1] = '-'
	}
	b[2], b[3] = '-', '-'
	if v.Terrain == game.Rock {
		b[2] = 'X'
	}
	if v.Terrain == game.Fog {
		b[3] = 'X'
	}
	return string(b[:])
}

// Plain keeps a coded copy of the board, refreshed whenever the board notifies it.
type Plain struct {
	mu    sync.Mutex
	cells [game.Dim][game.Dim]string
}

var _ rules.Observer = (*Plain)(nil)

func NewPlain() *Plain {
	p := &Plain{}
	for i := range p.cells {
		for j := range p.cells[i] {
			p.cells[i][j] = blank
		}
	}
	return p
}

// BoardChanged snapshots the board's long-range scan.
func (p *Plain) BoardChanged(b *rules.Board) error {
	scan := b.LongRangeScan()
	p.Update(&scan)
	return nil
}

func (p *Plain) Update(scan *game.LongRangeScan) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range scan {
		for j := range scan[i] {
			p.cells[i][j] = SquareCode(scan[i][j])
		}
	}
}

// Cell returns the code last recorded for (row, col).
func (p *Plain) Cell(row, col int) (string, error) {
	if !(game.Point{Row: row, Col: col}).InGrid() {
		return "", fmt.Errorf("cell (%d,%d): %w", row, col, rules.ErrOutOfRange)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cells[row][col], nil
}

// Render writes a header of column numbers, then one numbered line per row.
func (p *Plain) Render(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	bw := bufio.NewWriter(w)
	bw.WriteString("   ")
	for j := 0; j < game.Dim; j++ {
		fmt.Fprintf(bw, "%2d ", j)
	}
	bw.WriteByte('\n')
	for i := range p.cells {
		fmt.Fprintf(bw, "%2d ", i)
		for _, c := range p.cells[i] {
			bw.WriteString(c)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (p *Plain) String() string {
	var sb strings.Builder
	_ = p.Render(&sb)
	return sb.String()
}
