// Package rules is the paintbots board engine.
//
// A Board owns the (Size+2)x(Size+2) grid and enforces movement, shooting, scanning
// and scoring. It is single-threaded: callers (normally a match.Runner) sequence every
// call, and observers are notified synchronously after each mutation.
package rules

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/brensch/paintbots/config"
	"github.com/brensch/paintbots/game"
)

// DriverToken must be passed to NewBoard. It guards against accidental construction
// outside the game driver and tests; it is not a credential.
const DriverToken = "xyzzy"

var (
	ErrAccessDenied  = errors.New("board access denied")
	ErrRobotNotFound = errors.New("robot not found on board")
	ErrOutOfRange    = errors.New("board position out of range")
	ErrNilObserver   = errors.New("nil observer")
	ErrBoardFull     = errors.New("not enough free squares")
	ErrBorder        = errors.New("wall ring cannot be changed")
	ErrBlocked       = errors.New("square is blocked")
)

type robotState struct {
	paint     game.Color
	countdown int
	blobs     int
}

// Board is the game state engine.
type Board struct {
	grid   [game.Dim][game.Dim]game.Square
	robots [2]robotState
	cfg    config.Config
	rng    *rand.Rand
	logger *slog.Logger

	observers []*subscription
}

type options struct {
	rng    *rand.Rand
	bare   bool
	logger *slog.Logger
}

// Option customises NewBoard.
type Option func(*options)

// WithRand seeds terrain and robot placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithBareLayout builds only the wall ring: no rocks, fog or robots. Tests place
// what they need with SetTerrain and PlaceRobot.
func WithBareLayout() Option {
	return func(o *options) { o.bare = true }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewBoard builds a board: walls, then a random count of rocks and fog within the
// config bounds, then one red and one blue robot facing north on white squares.
func NewBoard(token string, cfg config.Config, opts ...Option) (*Board, error) {
	if token != DriverToken {
		return nil, ErrAccessDenied
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	b := &Board{cfg: cfg, rng: o.rng, logger: o.logger}
	for _, rc := range []game.RobotColor{game.RedRobot, game.BlueRobot} {
		b.robots[rc] = robotState{paint: rc.Own(), blobs: cfg.PaintBlobLimit}
	}
	b.placeWalls()
	if o.bare {
		return b, nil
	}
	if err := b.populate(); err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}
	return b, nil
}

// Config returns the policy the board was built with.
func (b *Board) Config() config.Config { return b.cfg }

// Square returns the visible state of one cell.
func (b *Board) Square(row, col int) (game.SquareView, error) {
	p := game.Point{Row: row, Col: col}
	if !p.InGrid() {
		return game.SquareView{}, fmt.Errorf("square %s: %w", p, ErrOutOfRange)
	}
	return b.grid[row][col].View(), nil
}

func (b *Board) square(p game.Point) *game.Square {
	return &b.grid[p.Row][p.Col]
}

// locate finds robot rc by scanning the interior.
func (b *Board) locate(rc game.RobotColor) (game.Point, bool) {
	for row := 1; row <= game.Size; row++ {
		for col := 1; col <= game.Size; col++ {
			if b.grid[row][col].Has(rc) {
				return game.Point{Row: row, Col: col}, true
			}
		}
	}
	return game.Point{}, false
}

// RobotPosition reports where rc stands, if it is on the board.
func (b *Board) RobotPosition(rc game.RobotColor) (game.Point, bool) {
	if !rc.Valid() {
		return game.Point{}, false
	}
	return b.locate(rc)
}

func (b *Board) RemainingPaintBlobs(rc game.RobotColor) int {
	if !rc.Valid() {
		return 0
	}
	return b.robots[rc].blobs
}

func (b *Board) HitCountdown(rc game.RobotColor) int {
	if !rc.Valid() {
		return 0
	}
	return b.robots[rc].countdown
}

// PaintColor is the color rc currently lays down when it moves forward.
func (b *Board) PaintColor(rc game.RobotColor) game.Color {
	if !rc.Valid() {
		return game.White
	}
	return b.robots[rc].paint
}
