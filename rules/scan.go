package rules

import (
	"fmt"

	"github.com/brensch/paintbots/game"
)

// LongRangeScan snapshots every cell, wall ring included.
func (b *Board) LongRangeScan() game.LongRangeScan {
	var s game.LongRangeScan
	for row := range b.grid {
		for col := range b.grid[row] {
			s[row][col] = b.grid[row][col].View()
		}
	}
	return s
}

// ShortRangeScan returns the 5x5 window around rc, rotated so the robot faces row 0.
// Cells beyond the grid read as wall. A robot standing in fog sees only itself.
func (b *Board) ShortRangeScan(rc game.RobotColor) (game.ShortRangeScan, error) {
	var s game.ShortRangeScan
	if !rc.Valid() {
		return s, fmt.Errorf("scan: %w: %d", game.ErrInvalidRobot, int(rc))
	}
	pos, ok := b.locate(rc)
	if !ok {
		return s, fmt.Errorf("scan %s: %w", rc, ErrRobotNotFound)
	}

	self := b.square(pos)
	if self.Terrain() == game.Fog {
		for i := range s {
			for j := range s[i] {
				s[i][j] = game.EmptyView()
			}
		}
		s[game.ScanCenter][game.ScanCenter] = self.View()
		return s, nil
	}

	facing := self.Facing()
	for i := range s {
		for j := range s[i] {
			p := toBoard(pos, facing, i-game.ScanCenter, j-game.ScanCenter)
			if !p.InGrid() {
				s[i][j] = game.WallView()
				continue
			}
			s[i][j] = b.square(p).View()
		}
	}
	return s, nil
}

// toBoard maps an offset in the robot's frame (row -1 is straight ahead, col +1 is
// to its right) onto a board coordinate.
func toBoard(origin game.Point, facing game.Direction, dRow, dCol int) game.Point {
	switch facing {
	case game.East:
		return game.Point{Row: origin.Row + dCol, Col: origin.Col - dRow}
	case game.South:
		return game.Point{Row: origin.Row - dRow, Col: origin.Col - dCol}
	case game.West:
		return game.Point{Row: origin.Row - dCol, Col: origin.Col + dRow}
	default:
		return game.Point{Row: origin.Row + dRow, Col: origin.Col + dCol}
	}
}
