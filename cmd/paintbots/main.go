package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/brensch/paintbots/display"
	"github.com/brensch/paintbots/game"
	"github.com/brensch/paintbots/logging"
	"github.com/brensch/paintbots/match"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	boardConfig := flag.String("board-config", "", "Path to the KEY = VALUE board config (defaults apply when empty)")
	robots := flag.String("robots", "robots.txt", "Match file: two lines (red, blue strategy) or .yaml")
	seed := flag.Int64("seed", 0, "Random seed (0 = match file seed, else time)")
	maxMoves := flag.Int("max-moves", 0, "Turn limit (0 = match file value, else 300)")
	interactive := flag.Bool("interactive", false, "Step through the game in a terminal UI")
	autoDelay := flag.Duration("auto-delay", 150*time.Millisecond, "Delay between turns in interactive autoplay")
	show := flag.Bool("show", false, "Print the board after every turn")
	games := flag.Int("games", 1, "Number of games; more than one runs a batch and prints a summary")
	workers := flag.Int("workers", 0, "Concurrent games in batch mode (0 = GOMAXPROCS)")
	logFormat := flag.String("log-format", logging.FormatText, "Log format: text, json or pretty")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	logFile := flag.String("log-file", "", "Write logs here instead of stderr")
	clip := flag.Bool("clip", false, "Copy the final board and result to the clipboard")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid -log-level: %v", err)
	}
	var logOut io.Writer = os.Stderr
	switch {
	case *logFile != "":
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Error opening log file: %v", err)
		}
		defer f.Close()
		logOut = f
	case *interactive:
		// Anything on stderr would tear the TUI.
		logOut = io.Discard
	}
	logger, err := logging.New(logOut, *logFormat, level)
	if err != nil {
		log.Fatalf("Invalid -log-format: %v", err)
	}
	slog.SetDefault(logger)

	s, err := resolveSetup(*boardConfig, *robots, *seed, *maxMoves, logger)
	if err != nil {
		log.Fatalf("Failed to load game setup: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *games > 1 {
		logger.Info("starting batch", "games", *games, "workers", *workers, "red", s.match.Red, "blue", s.match.Blue)
		start := time.Now()
		sum, err := match.RunBatch(ctx, *games, *workers, s.newGame)
		if err != nil {
			log.Fatalf("Batch failed: %v", err)
		}
		fmt.Printf("%s (red) vs %s (blue), %s\n", s.match.Red, s.match.Blue, time.Since(start).Round(time.Millisecond))
		summarize(os.Stdout, sum)
		return
	}

	plain := display.NewPlain()
	if *show {
		s.opts.AfterTurn = func(t match.Turn) {
			fmt.Printf("\nTurn %d: red %s, blue %s\n", t.N, describe(t, game.RedRobot), describe(t, game.BlueRobot))
			_ = plain.Render(os.Stdout)
		}
	}
	runner, err := s.newGame(0)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	if *interactive {
		p := tea.NewProgram(newStepper(runner, display.NewStyled(os.Stdout), *autoDelay))
		final, err := p.Run()
		if err != nil {
			log.Fatalf("Interactive session failed: %v", err)
		}
		if *clip {
			copyResult(logger, runner, final.(stepper).result)
		}
		return
	}

	if _, err := runner.Board().Subscribe(plain); err != nil {
		log.Fatalf("Failed to attach display: %v", err)
	}
	// The board was populated before the display subscribed.
	if err := plain.BoardChanged(runner.Board()); err != nil {
		log.Fatalf("Failed to draw board: %v", err)
	}
	fmt.Printf("%s (red) vs %s (blue), seed %d\n", s.match.Red, s.match.Blue, s.seed)
	_ = plain.Render(os.Stdout)

	res, err := runner.Run(ctx)
	if err != nil {
		log.Fatalf("Game failed: %v", err)
	}
	if !*show {
		fmt.Println()
		_ = plain.Render(os.Stdout)
	}
	announce(os.Stdout, res)
	if *clip {
		copyResult(logger, runner, &res)
	}
}

func copyResult(logger *slog.Logger, runner *match.Runner, res *match.Result) {
	plain := display.NewPlain()
	_ = plain.BoardChanged(runner.Board())
	var sb strings.Builder
	_ = plain.Render(&sb)
	if res != nil {
		announce(&sb, *res)
	}
	if err := clipboard.WriteAll(sb.String()); err != nil {
		logger.Warn("clipboard copy failed", "error", err)
		return
	}
	logger.Info("board copied to clipboard")
}
