package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/brensch/paintbots/bot"
	"github.com/brensch/paintbots/config"
	"github.com/brensch/paintbots/game"
	"github.com/brensch/paintbots/match"
	"github.com/brensch/paintbots/rules"
)

// setup is everything needed to build any number of independent games.
type setup struct {
	cfg    config.Config
	match  config.Match
	roster *bot.Roster
	opts   match.Options
	seed   int64
	logger *slog.Logger
}

// resolveSetup merges the files with command-line overrides. Zero flag values defer to
// the match file, which defers to the built-in defaults.
func resolveSetup(boardPath, robotsPath string, seed int64, maxMoves int, logger *slog.Logger) (setup, error) {
	cfg := config.Default()
	if boardPath != "" {
		var err error
		if cfg, err = config.Load(boardPath); err != nil {
			return setup{}, err
		}
	}
	m, err := config.LoadMatch(robotsPath)
	if err != nil {
		return setup{}, err
	}
	roster := bot.DefaultRoster()
	for _, name := range []string{m.Red, m.Blue} {
		if _, err := roster.New(name, nil); err != nil {
			return setup{}, fmt.Errorf("%s: %w", robotsPath, err)
		}
	}

	opts := match.DefaultOptions()
	opts.StopOnBlocked = m.StopOnBlockedOr(true)
	switch {
	case maxMoves > 0:
		opts.MaxMoves = maxMoves
	case m.MaxMoves > 0:
		opts.MaxMoves = m.MaxMoves
	}
	switch {
	case seed != 0:
	case m.Seed != 0:
		seed = m.Seed
	default:
		seed = time.Now().UnixNano()
	}
	logger.Debug("setup resolved",
		"red", m.Red, "blue", m.Blue,
		"seed", seed, "max_moves", opts.MaxMoves, "stop_on_blocked", opts.StopOnBlocked,
		"hit_duration", cfg.HitDuration, "paint_blobs", cfg.PaintBlobLimit,
	)
	return setup{cfg: cfg, match: m, roster: roster, opts: opts, seed: seed, logger: logger}, nil
}

// newGame builds game i on its own board. Games in a batch get well-spread seeds.
func (s setup) newGame(i int) (*match.Runner, error) {
	rng := rand.New(rand.NewSource(s.seed + int64(i)*7919))
	b, err := rules.NewBoard(rules.DriverToken, s.cfg, rules.WithRand(rng), rules.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	var robots [2]*bot.Robot
	for rc, name := range [2]string{s.match.Red, s.match.Blue} {
		strat, err := s.roster.New(name, rand.New(rand.NewSource(rng.Int63())))
		if err != nil {
			return nil, err
		}
		if robots[rc], err = bot.NewRobot(game.RobotColor(rc), strat); err != nil {
			return nil, err
		}
	}
	return match.NewRunner(b, robots[game.RedRobot], robots[game.BlueRobot], s.opts, s.logger)
}

func announce(w io.Writer, res match.Result) {
	fmt.Fprintf(w, "\nGame over after %d turns (%s)\n", res.Turns, res.Reason)
	fmt.Fprintf(w, "Red score:  %d\n", res.RedScore)
	fmt.Fprintf(w, "Blue score: %d\n", res.BlueScore)
	switch res.Winner {
	case game.Red:
		fmt.Fprintln(w, "Red robot wins!")
	case game.Blue:
		fmt.Fprintln(w, "Blue robot wins!")
	default:
		fmt.Fprintln(w, "It's a tie!")
	}
}

func summarize(w io.Writer, s match.Summary) {
	fmt.Fprintf(w, "Games:     %d\n", s.Games)
	fmt.Fprintf(w, "Red wins:  %d\n", s.RedWins)
	fmt.Fprintf(w, "Blue wins: %d\n", s.BlueWins)
	fmt.Fprintf(w, "Ties:      %d\n", s.Ties)
	fmt.Fprintf(w, "Avg score: red %.1f, blue %.1f\n", s.AvgRed, s.AvgBlue)
	fmt.Fprintf(w, "Avg turns: %.1f\n", s.AvgTurns)
	for _, r := range []match.Reason{match.ReasonBlocked, match.ReasonMaxMoves} {
		fmt.Fprintf(w, "Ended %-9s %d\n", string(r)+":", s.Reasons[r])
	}
}
