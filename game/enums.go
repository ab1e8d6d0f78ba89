package game

import "errors"

var (
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidTerrain   = errors.New("invalid terrain")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidRobot     = errors.New("invalid robot color")
	ErrInvalidAction    = errors.New("invalid action")
	ErrSquareOccupied   = errors.New("square occupied by the other robot")
	ErrTerrainConflict  = errors.New("rock and fog cannot share a square")
)

// Color is the paint on a square.
type Color uint8

const (
	White Color = iota
	Red
	Blue
)

func (c Color) Valid() bool { return c <= Blue }

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// Terrain is the static type of a square.
type Terrain uint8

const (
	Empty Terrain = iota
	Rock
	Fog
	Wall
)

func (t Terrain) Valid() bool { return t <= Wall }

// Blocks reports whether robots and paint blobs stop at this terrain.
func (t Terrain) Blocks() bool { return t == Wall || t == Rock }

func (t Terrain) String() string {
	switch t {
	case Empty:
		return "empty"
	case Rock:
		return "rock"
	case Fog:
		return "fog"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// Direction is a robot's facing. The numeric order is clockwise.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) Valid() bool { return d <= West }

// Clockwise returns the facing after a right turn.
func (d Direction) Clockwise() Direction { return (d + 1) % 4 }

// CounterClockwise returns the facing after a left turn.
func (d Direction) CounterClockwise() Direction { return (d + 3) % 4 }

// Delta returns the row/col step for one square in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// RobotColor identifies one of the two robots.
type RobotColor uint8

const (
	RedRobot RobotColor = iota
	BlueRobot
)

func (r RobotColor) Valid() bool { return r <= BlueRobot }

// Own is the paint color the robot lays down when it has not been hit.
func (r RobotColor) Own() Color {
	if r == BlueRobot {
		return Blue
	}
	return Red
}

func (r RobotColor) Opponent() RobotColor {
	if r == BlueRobot {
		return RedRobot
	}
	return BlueRobot
}

func (r RobotColor) String() string {
	switch r {
	case RedRobot:
		return "red"
	case BlueRobot:
		return "blue"
	default:
		return "unknown"
	}
}

// Action is the movement part of a MoveRequest.
type Action uint8

const (
	RotateLeft Action = iota
	RotateRight
	Forward
	None
)

func (a Action) Valid() bool { return a <= None }

func (a Action) String() string {
	switch a {
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	case Forward:
		return "forward"
	case None:
		return "none"
	default:
		return "unknown"
	}
}
