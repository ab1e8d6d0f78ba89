// Package match drives games: it feeds each robot its scans, resolves shots and moves
// in a fixed order, and decides when a game is over.
package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/brensch/paintbots/bot"
	"github.com/brensch/paintbots/game"
	"github.com/brensch/paintbots/rules"
	"github.com/google/uuid"
)

// DefaultMaxMoves is the turn limit when Options leaves it unset.
const DefaultMaxMoves = 300

var (
	ErrFinished   = errors.New("match already finished")
	ErrNilBoard   = errors.New("nil board")
	ErrRobotColor = errors.New("robot bound to the wrong color")
)

// Reason says why a game ended.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonBlocked  Reason = "blocked"
	ReasonMaxMoves Reason = "max_moves"
)

// Options tune a single game.
type Options struct {
	// MaxMoves ends the game after this many turns. Zero means DefaultMaxMoves.
	MaxMoves int
	// LongRangeLimit is how many long-range scans each robot receives. Zero takes the
	// board's configured limit.
	LongRangeLimit int
	// StopOnBlocked ends the game on the first turn either robot's move fails.
	StopOnBlocked bool
	// AfterTurn, if set, runs after every completed turn during Run.
	AfterTurn func(Turn)
}

func DefaultOptions() Options {
	return Options{MaxMoves: DefaultMaxMoves, StopOnBlocked: true}
}

// Turn records what happened in one round. Arrays are indexed by game.RobotColor.
type Turn struct {
	N        int
	Requests [2]game.MoveRequest
	Hits     [2]bool
	Moved    [2]bool
	Done     bool
	Reason   Reason
}

// Result summarises a finished (or abandoned) game. Winner is game.White on a tie.
type Result struct {
	GameID    uuid.UUID
	Turns     int
	RedScore  int
	BlueScore int
	Winner    game.Color
	Reason    Reason
}

// Runner plays one game on one board. It is not safe for concurrent use.
type Runner struct {
	id     uuid.UUID
	board  *rules.Board
	robots [2]*bot.Robot
	scans  [2]int
	opts   Options
	logger *slog.Logger

	turn   int
	done   bool
	reason Reason
}

// NewRunner binds two robots to a board. Both robots must already be placed.
func NewRunner(board *rules.Board, red, blue *bot.Robot, opts Options, logger *slog.Logger) (*Runner, error) {
	if board == nil {
		return nil, ErrNilBoard
	}
	for want, r := range [2]*bot.Robot{red, blue} {
		rc := game.RobotColor(want)
		if r == nil {
			return nil, fmt.Errorf("%s robot: %w", rc, bot.ErrNilStrategy)
		}
		if r.Color() != rc {
			return nil, fmt.Errorf("%s slot holds %s robot: %w", rc, r.Color(), ErrRobotColor)
		}
	}
	for _, rc := range []game.RobotColor{game.RedRobot, game.BlueRobot} {
		if _, ok := board.RobotPosition(rc); !ok {
			return nil, fmt.Errorf("%s robot: %w", rc, rules.ErrRobotNotFound)
		}
	}
	if opts.MaxMoves <= 0 {
		opts.MaxMoves = DefaultMaxMoves
	}
	if opts.LongRangeLimit <= 0 {
		opts.LongRangeLimit = board.Config().LongRangeLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	return &Runner{
		id:     id,
		board:  board,
		robots: [2]*bot.Robot{red, blue},
		scans:  [2]int{opts.LongRangeLimit, opts.LongRangeLimit},
		opts:   opts,
		logger: logger.With("game_id", id.String()),
	}, nil
}

func (r *Runner) ID() uuid.UUID       { return r.id }
func (r *Runner) Board() *rules.Board { return r.board }
func (r *Runner) Turn() int           { return r.turn }
func (r *Runner) Done() bool          { return r.done }

// LongRangeLeft is how many long-range scans rc may still receive.
func (r *Runner) LongRangeLeft(rc game.RobotColor) int {
	if !rc.Valid() {
		return 0
	}
	return r.scans[rc]
}

// Step plays one turn: red then blue choose from their scans, then red shoots, blue
// shoots, red moves and blue moves. Both moves are attempted even if red's is blocked.
func (r *Runner) Step() (Turn, error) {
	if r.done {
		return Turn{}, ErrFinished
	}
	r.turn++
	t := Turn{N: r.turn}
	log := r.logger.With("turn", r.turn)

	for i, rb := range r.robots {
		rc := game.RobotColor(i)
		srs, err := r.board.ShortRangeScan(rc)
		if err != nil {
			return t, fmt.Errorf("turn %d: %w", r.turn, err)
		}
		req, err := rb.NextMove(srs, r.longRange(rc))
		if err != nil {
			return t, fmt.Errorf("turn %d: %w", r.turn, err)
		}
		t.Requests[rc] = req
	}

	for i := range r.robots {
		rc := game.RobotColor(i)
		hit, err := r.board.PaintBlobHit(t.Requests[rc])
		t.Hits[rc] = hit
		if err != nil {
			return t, fmt.Errorf("turn %d %s shot: %w", r.turn, rc, err)
		}
		if hit {
			log.Info("paint blob hit", "robot", rc.String(), "target", rc.Opponent().String())
		}
	}

	for i := range r.robots {
		rc := game.RobotColor(i)
		moved, err := r.board.MoveRobot(t.Requests[rc])
		t.Moved[rc] = moved
		if err != nil {
			return t, fmt.Errorf("turn %d %s move: %w", r.turn, rc, err)
		}
		if !moved {
			log.Debug("move blocked", "robot", rc.String(), "action", t.Requests[rc].Action.String())
		}
	}

	log.Debug("turn played",
		"red", t.Requests[game.RedRobot].Action.String(),
		"blue", t.Requests[game.BlueRobot].Action.String(),
	)

	switch {
	case r.opts.StopOnBlocked && (!t.Moved[game.RedRobot] || !t.Moved[game.BlueRobot]):
		r.finish(ReasonBlocked)
	case r.turn >= r.opts.MaxMoves:
		r.finish(ReasonMaxMoves)
	}
	t.Done, t.Reason = r.done, r.reason
	return t, nil
}

func (r *Runner) longRange(rc game.RobotColor) *game.LongRangeScan {
	if r.scans[rc] <= 0 {
		return nil
	}
	r.scans[rc]--
	scan := r.board.LongRangeScan()
	return &scan
}

func (r *Runner) finish(reason Reason) {
	r.done = true
	r.reason = reason
}

// Run steps until the game ends or ctx is cancelled, then tallies the board.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	for !r.done {
		if err := ctx.Err(); err != nil {
			return Result{GameID: r.id, Turns: r.turn}, fmt.Errorf("game %s stopped at turn %d: %w", r.id, r.turn, err)
		}
		t, err := r.Step()
		if err != nil {
			return Result{GameID: r.id, Turns: r.turn}, fmt.Errorf("game %s: %w", r.id, err)
		}
		if r.opts.AfterTurn != nil {
			r.opts.AfterTurn(t)
		}
	}
	res, err := r.Result()
	if err != nil {
		return res, err
	}
	r.logger.Info("game over",
		"turns", res.Turns,
		"reason", string(res.Reason),
		"red", r.robots[game.RedRobot].Name(),
		"blue", r.robots[game.BlueRobot].Name(),
		"red_score", res.RedScore,
		"blue_score", res.BlueScore,
		"winner", res.Winner.String(),
	)
	return res, nil
}

// Result scores the board as it stands. Counting blue notifies observers.
func (r *Runner) Result() (Result, error) {
	res := Result{GameID: r.id, Turns: r.turn, Reason: r.reason}
	res.RedScore = r.board.RedScore()
	blue, err := r.board.BlueScore()
	res.BlueScore = blue
	if err != nil {
		return res, fmt.Errorf("game %s: score: %w", r.id, err)
	}
	switch {
	case res.RedScore > res.BlueScore:
		res.Winner = game.Red
	case res.BlueScore > res.RedScore:
		res.Winner = game.Blue
	default:
		res.Winner = game.White
	}
	return res, nil
}
