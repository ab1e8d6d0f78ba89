// Package game defines the core data types for paintbots.
//
// These types describe a single board cell, the external views handed to bot
// strategies, and the per-turn move request. They carry no game rules beyond the
// per-cell invariants enforced by Square's mutators; the board engine lives in
// package rules.
package game

import "fmt"

const (
	// Size is the playable width and height of the board.
	Size = 15
	// Dim is the full grid dimension including the wall ring.
	Dim = Size + 2
	// ScanSize is the width and height of a short-range scan.
	ScanSize = 5
	// ScanCenter is the index of the scanning robot inside a short-range scan.
	ScanCenter = ScanSize / 2
)

// Point is a board coordinate. Row 0 is the northern wall, Col 0 the western wall.
type Point struct {
	Row int
	Col int
}

// Step returns the neighbouring point in direction d.
func (p Point) Step(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// InGrid reports whether p lies on the grid, wall ring included.
func (p Point) InGrid() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// Interior reports whether p lies inside the wall ring.
func (p Point) Interior() bool {
	return p.Row >= 1 && p.Row <= Size && p.Col >= 1 && p.Col <= Size
}

// OnBorder reports whether p is part of the wall ring.
func (p Point) OnBorder() bool {
	return p.InGrid() && !p.Interior()
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// MoveRequest bundles one robot's decision for a turn.
type MoveRequest struct {
	Robot  RobotColor
	Action Action
	Shoot  bool
}

// Validate checks the enum fields of the request.
func (r MoveRequest) Validate() error {
	if !r.Robot.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRobot, int(r.Robot))
	}
	if !r.Action.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAction, int(r.Action))
	}
	return nil
}

func (r MoveRequest) String() string {
	if r.Shoot {
		return fmt.Sprintf("%s %s+shoot", r.Robot, r.Action)
	}
	return fmt.Sprintf("%s %s", r.Robot, r.Action)
}

// LongRangeScan is a full-grid snapshot, wall ring included.
type LongRangeScan [Dim][Dim]SquareView

// ShortRangeScan is a 5x5 robot-centred view rotated so the robot faces row 0.
type ShortRangeScan [ScanSize][ScanSize]SquareView

// Center returns the scanning robot's own cell.
func (s *ShortRangeScan) Center() SquareView {
	return s[ScanCenter][ScanCenter]
}

// Ahead returns the cell directly in front of the scanning robot.
func (s *ShortRangeScan) Ahead() SquareView {
	return s[ScanCenter-1][ScanCenter]
}

// At returns the view at p, or a wall view when p is off the grid.
func (s *LongRangeScan) At(p Point) SquareView {
	if !p.InGrid() {
		return WallView()
	}
	return s[p.Row][p.Col]
}

// CountColor counts interior cells painted c.
func (s *LongRangeScan) CountColor(c Color) int {
	n := 0
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			if s[row][col].Color == c {
				n++
			}
		}
	}
	return n
}
