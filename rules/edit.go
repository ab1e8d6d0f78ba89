package rules

import (
	"fmt"

	"github.com/brensch/paintbots/game"
)

// The mutators below set up scenarios on a bare board. They validate everything
// before touching the grid and keep the wall ring intact.

// SetTerrain changes one cell's terrain. Rock and fog never replace each other, a
// blocking terrain cannot go under a robot, and the wall ring only accepts Wall.
func (b *Board) SetTerrain(row, col int, t game.Terrain) error {
	p := game.Point{Row: row, Col: col}
	if !p.InGrid() {
		return fmt.Errorf("terrain %s: %w", p, ErrOutOfRange)
	}
	if p.OnBorder() && t != game.Wall {
		return fmt.Errorf("terrain %s at %s: %w", t, p, ErrBorder)
	}
	sq := b.square(p)
	if t.Blocks() && sq.Occupied() {
		return fmt.Errorf("terrain %s at %s: %w", t, p, game.ErrSquareOccupied)
	}
	if err := sq.SetTerrain(t); err != nil {
		return fmt.Errorf("terrain %s at %s: %w", t, p, err)
	}
	return b.notify()
}

// PlaceRobot puts rc on an interior cell with the given facing, lifting it from
// wherever it stood before.
func (b *Board) PlaceRobot(rc game.RobotColor, row, col int, facing game.Direction) error {
	if !rc.Valid() {
		return fmt.Errorf("place robot: %w: %d", game.ErrInvalidRobot, int(rc))
	}
	if !facing.Valid() {
		return fmt.Errorf("place robot: %w: %d", game.ErrInvalidDirection, int(facing))
	}
	p := game.Point{Row: row, Col: col}
	if !p.InGrid() {
		return fmt.Errorf("place %s robot at %s: %w", rc, p, ErrOutOfRange)
	}
	if !p.Interior() {
		return fmt.Errorf("place %s robot at %s: %w", rc, p, ErrBorder)
	}
	dst := b.square(p)
	if dst.Terrain().Blocks() {
		return fmt.Errorf("place %s robot on %s at %s: %w", rc, dst.Terrain(), p, ErrBlocked)
	}
	if dst.Has(rc.Opponent()) {
		return fmt.Errorf("place %s robot at %s: %w", rc, p, game.ErrSquareOccupied)
	}

	if old, ok := b.locate(rc); ok {
		_ = b.square(old).SetRobot(rc, false)
	}
	_ = dst.SetRobot(rc, true)
	_ = dst.SetFacing(facing)
	return b.notify()
}

// RemoveRobot lifts rc off the board.
func (b *Board) RemoveRobot(rc game.RobotColor) error {
	if !rc.Valid() {
		return fmt.Errorf("remove robot: %w: %d", game.ErrInvalidRobot, int(rc))
	}
	pos, ok := b.locate(rc)
	if !ok {
		return fmt.Errorf("remove %s: %w", rc, ErrRobotNotFound)
	}
	_ = b.square(pos).SetRobot(rc, false)
	return b.notify()
}

// SetRobotFacing turns rc in place.
func (b *Board) SetRobotFacing(rc game.RobotColor, d game.Direction) error {
	if !rc.Valid() {
		return fmt.Errorf("face robot: %w: %d", game.ErrInvalidRobot, int(rc))
	}
	if !d.Valid() {
		return fmt.Errorf("face robot: %w: %d", game.ErrInvalidDirection, int(d))
	}
	pos, ok := b.locate(rc)
	if !ok {
		return fmt.Errorf("face %s: %w", rc, ErrRobotNotFound)
	}
	_ = b.square(pos).SetFacing(d)
	return b.notify()
}
