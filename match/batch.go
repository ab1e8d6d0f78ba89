package match

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/brensch/paintbots/game"
	"golang.org/x/sync/errgroup"
)

var ErrGameCount = errors.New("negative game count")

// NewGameFunc builds the runner for game i of a batch. Each call must return a runner
// on its own board with its own strategies.
type NewGameFunc func(i int) (*Runner, error)

// Summary aggregates a batch.
type Summary struct {
	Games    int
	RedWins  int
	BlueWins int
	Ties     int
	AvgRed   float64
	AvgBlue  float64
	AvgTurns float64
	Reasons  map[Reason]int
}

// RunBatch plays n games with at most workers running at once. The first failure
// cancels the games still running and is returned.
func RunBatch(ctx context.Context, n, workers int, newGame NewGameFunc) (Summary, error) {
	if n < 0 {
		return Summary{}, fmt.Errorf("%w: %d", ErrGameCount, n)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			r, err := newGame(i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			res, err := r.Run(ctx)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return Summarize(results), nil
}

func Summarize(results []Result) Summary {
	s := Summary{Games: len(results), Reasons: make(map[Reason]int)}
	if len(results) == 0 {
		return s
	}
	var red, blue, turns int
	for _, r := range results {
		switch r.Winner {
		case game.Red:
			s.RedWins++
		case game.Blue:
			s.BlueWins++
		default:
			s.Ties++
		}
		red += r.RedScore
		blue += r.BlueScore
		turns += r.Turns
		s.Reasons[r.Reason]++
	}
	n := float64(len(results))
	s.AvgRed = float64(red) / n
	s.AvgBlue = float64(blue) / n
	s.AvgTurns = float64(turns) / n
	return s
}
