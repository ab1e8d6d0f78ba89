package rules

import (
	"fmt"

	"github.com/brensch/paintbots/game"
)

func (b *Board) count(c game.Color) int {
	n := 0
	for row := 1; row <= game.Size; row++ {
		for col := 1; col <= game.Size; col++ {
			if b.grid[row][col].Color() == c {
				n++
			}
		}
	}
	return n
}

// RedScore counts interior squares painted red.
func (b *Board) RedScore() int {
	return b.count(game.Red)
}

// BlueScore counts interior squares painted blue. Unlike RedScore it also notifies
// observers; callers that render on change see a redraw.
func (b *Board) BlueScore() (int, error) {
	n := b.count(game.Blue)
	return n, b.notify()
}

// SetSquareColor paints one cell.
func (b *Board) SetSquareColor(row, col int, c game.Color) error {
	p := game.Point{Row: row, Col: col}
	if !p.InGrid() {
		return fmt.Errorf("paint %s: %w", p, ErrOutOfRange)
	}
	if err := b.square(p).SetColor(c); err != nil {
		return fmt.Errorf("paint %s: %w", p, err)
	}
	return b.notify()
}

// SetRobotPaintColor changes the color rc lays down. Only red and blue are accepted.
func (b *Board) SetRobotPaintColor(rc game.RobotColor, c game.Color) error {
	if !rc.Valid() {
		return fmt.Errorf("set paint color: %w: %d", game.ErrInvalidRobot, int(rc))
	}
	if c != game.Red && c != game.Blue {
		return fmt.Errorf("set paint color %s: %w", c, game.ErrInvalidColor)
	}
	b.robots[rc].paint = c
	return b.notify()
}
