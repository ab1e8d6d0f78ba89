package bot

import (
	"errors"
	"fmt"

	"github.com/brensch/paintbots/game"
)

var ErrColorMismatch = errors.New("move request names the wrong robot")

// Robot binds a strategy to a robot color.
type Robot struct {
	color    game.RobotColor
	strategy Strategy
}

// NewRobot assigns color to s and returns the pair.
func NewRobot(color game.RobotColor, s Strategy) (*Robot, error) {
	if !color.Valid() {
		return nil, fmt.Errorf("new robot: %w: %d", game.ErrInvalidRobot, int(color))
	}
	if s == nil {
		return nil, fmt.Errorf("new %s robot: %w", color, ErrNilStrategy)
	}
	s.SetColor(color)
	return &Robot{color: color, strategy: s}, nil
}

func (r *Robot) Color() game.RobotColor { return r.color }
func (r *Robot) Strategy() Strategy { return r.strategy }

// Name is the strategy's display name.
func (r *Robot) Name() string { return r.strategy.Name() }

// NextMove asks the strategy for a move and checks the request is well formed and
// names this robot.
func (r *Robot) NextMove(srs game.ShortRangeScan, lrs *game.LongRangeScan) (game.MoveRequest, error) {
	req := r.strategy.NextMove(srs, lrs)
	if err := req.Validate(); err != nil {
		return req, fmt.Errorf("%s (%s): %w", r.strategy.Name(), r.color, err)
	}
	if req.Robot != r.color {
		return req, fmt.Errorf("%s (%s) asked to move %s: %w", r.strategy.Name(), r.color, req.Robot, ErrColorMismatch)
	}
	return req, nil
}
