package game

import "fmt"

// Square is a board-internal cell. The zero value is an empty white square with no
// robot, facing north.
type Square struct {
	color     Color
	terrain   Terrain
	redRobot  bool
	blueRobot bool
	facing    Direction
}

func (s *Square) Color() Color { return s.color }
func (s *Square) Terrain() Terrain { return s.terrain }
func (s *Square) RedRobot() bool { return s.redRobot }
func (s *Square) BlueRobot() bool { return s.blueRobot }
func (s *Square) Facing() Direction { return s.facing }
func (s *Square) Occupied() bool { return s.redRobot || s.blueRobot }

func (s *Square) Has(r RobotColor) bool {
	return r == RedRobot && s.redRobot || r == BlueRobot && s.blueRobot
}

// SetColor paints the square. Any of red, blue or white is accepted.
func (s *Square) SetColor(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidColor, int(c))
	}
	s.color = c
	return nil
}

// SetRedRobot marks red robot presence. Placing red on a blue-occupied square fails.
func (s *Square) SetRedRobot(present bool) error {
	if present && s.blueRobot {
		return fmt.Errorf("place red robot: %w", ErrSquareOccupied)
	}
	s.redRobot = present
	return nil
}

// SetBlueRobot marks blue robot presence. Placing blue on a red-occupied square fails.
func (s *Square) SetBlueRobot(present bool) error {
	if present && s.redRobot {
		return fmt.Errorf("place blue robot: %w", ErrSquareOccupied)
	}
	s.blueRobot = present
	return nil
}

// SetRobot sets presence for robot r.
func (s *Square) SetRobot(r RobotColor, present bool) error {
	switch r {
	case RedRobot:
		return s.SetRedRobot(present)
	case BlueRobot:
		return s.SetBlueRobot(present)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidRobot, int(r))
	}
}

func (s *Square) SetFacing(d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	s.facing = d
	return nil
}

// SetTerrain changes the terrain. Rock and fog exclude each other permanently: once a
// square holds one of them the other is rejected. Every other transition is allowed.
func (s *Square) SetTerrain(t Terrain) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidTerrain, int(t))
	}
	if s.terrain == Rock && t == Fog {
		return fmt.Errorf("fog on rock: %w", ErrTerrainConflict)
	}
	if s.terrain == Fog && t == Rock {
		return fmt.Errorf("rock on fog: %w", ErrTerrainConflict)
	}
	s.terrain = t
	return nil
}

// View copies the externally visible attributes.
func (s *Square) View() SquareView {
	return SquareView{
		Color:     s.color,
		Terrain:   s.terrain,
		RedRobot:  s.redRobot,
		BlueRobot: s.blueRobot,
		Facing:    s.facing,
	}
}

// SquareView is the read-only cell handed out in scans.
type SquareView struct {
	Color     Color
	Terrain   Terrain
	RedRobot  bool
	BlueRobot bool
	Facing    Direction
}

// EmptyView is what a fogged robot sees everywhere but its own cell.
func EmptyView() SquareView {
	return SquareView{Color: White, Terrain: Empty, Facing: North}
}

// WallView stands in for cells outside the grid.
func WallView() SquareView {
	return SquareView{Color: White, Terrain: Wall, Facing: North}
}

// Has reports whether robot r stands on this cell.
func (v SquareView) Has(r RobotColor) bool {
	return r == RedRobot && v.RedRobot || r == BlueRobot && v.BlueRobot
}

func (v SquareView) Occupied() bool { return v.RedRobot || v.BlueRobot }

// Passable reports whether a robot could step onto this cell.
func (v SquareView) Passable() bool {
	return !v.Terrain.Blocks() && !v.Occupied()
}
