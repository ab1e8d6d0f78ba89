package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/brensch/paintbots/config"
	"github.com/brensch/paintbots/game"
	"github.com/brensch/paintbots/rules"
	"github.com/charmbracelet/lipgloss"
)

func TestSquareCode(t *testing.T) {
	cases := []struct {
		v    game.SquareView
		want string
	}{
		{game.EmptyView(), "W---"},
		{game.WallView(), "WWWW"},
		{game.SquareView{Color: game.Red, RedRobot: true}, "RR--"},
		{game.SquareView{Color: game.Red, BlueRobot: true}, "RB--"},
		{game.SquareView{Color: game.Blue, Terrain: game.Rock}, "B-X-"},
		{game.SquareView{Terrain: game.Fog, BlueRobot: true}, "WB-X"},
	}
	for _, tc := range cases {
		if got := SquareCode(tc.v); got != tc.want {
			t.Fatalf("SquareCode(%+v)=%q want %q", tc.v, got, tc.want)
		}
	}
}

func TestPlain_BeforeFirstChange(t *testing.T) {
	out := NewPlain().String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != game.Dim+1 {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), game.Dim+1, out)
	}
	if !strings.HasPrefix(lines[0], "    0  1  2 ") || !strings.HasSuffix(lines[0], "15 16 ") {
		t.Fatalf("header=%q", lines[0])
	}
	if strings.Count(out, blank) != game.Dim*game.Dim {
		t.Fatalf("expected every square blank:\n%s", out)
	}
}

func TestPlain_TracksBoard(t *testing.T) {
	b, err := rules.NewBoard(rules.DriverToken, config.Default(), rules.WithBareLayout())
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	p := NewPlain()
	if _, err := b.Subscribe(p); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	steps := []func() error{
		func() error { return b.PlaceRobot(game.RedRobot, 8, 8, game.North) },
		func() error { return b.PlaceRobot(game.BlueRobot, 10, 10, game.South) },
		func() error { return b.SetTerrain(5, 5, game.Rock) },
		func() error { return b.SetTerrain(3, 4, game.Fog) },
		func() error { return b.SetSquareColor(3, 4, game.Blue) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	out := p.String()
	t.Logf("\n%s", out)
	for _, tc := range []struct {
		row, col int
		want     string
	}{
		{0, 0, "WWWW"},
		{16, 9, "WWWW"},
		{8, 8, "WR--"},
		{10, 10, "WB--"},
		{5, 5, "W-X-"},
		{3, 4, "B--X"},
		{1, 1, "W---"},
	} {
		if got := cell(t, p, tc.row, tc.col); got != tc.want {
			t.Fatalf("cell (%d,%d)=%q want %q", tc.row, tc.col, got, tc.want)
		}
	}
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], " 0 WWWW WWWW") || !strings.HasPrefix(lines[9], " 8 WWWW W---") {
		t.Fatalf("row lines:\n%s\n%s", lines[1], lines[9])
	}

	// Robot moves refresh the snapshot.
	if _, err := b.MoveRobot(game.MoveRequest{Robot: game.RedRobot, Action: game.Forward}); err != nil {
		t.Fatalf("MoveRobot: %v", err)
	}
	if from, to := cell(t, p, 8, 8), cell(t, p, 7, 8); from != "R---" || to != "RR--" {
		t.Fatalf("after move: (8,8)=%q (7,8)=%q", from, to)
	}
}

func cell(t *testing.T, p *Plain, row, col int) string {
	t.Helper()
	c, err := p.Cell(row, col)
	if err != nil {
		t.Fatalf("Cell(%d,%d): %v", row, col, err)
	}
	return c
}

func TestPlain_CellOutOfRange(t *testing.T) {
	p := NewPlain()
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {game.Dim, 3}, {3, game.Dim}} {
		if _, err := p.Cell(rc[0], rc[1]); !errors.Is(err, rules.ErrOutOfRange) {
			t.Fatalf("Cell(%d,%d) err=%v want ErrOutOfRange", rc[0], rc[1], err)
		}
	}
	if c := cell(t, p, game.Dim-1, game.Dim-1); c != blank {
		t.Fatalf("corner=%q want %q", c, blank)
	}
}

func TestStyled_Grid(t *testing.T) {
	var scan game.LongRangeScan
	for i := range scan {
		for j := range scan[i] {
			if i == 0 || j == 0 || i == game.Dim-1 || j == game.Dim-1 {
				scan[i][j] = game.WallView()
			}
		}
	}
	scan[2][3] = game.SquareView{Color: game.Red, RedRobot: true}
	scan[4][5] = game.SquareView{Terrain: game.Rock}
	scan[6][7] = game.SquareView{Color: game.Blue, Terrain: game.Fog}

	s := NewStyled(&bytes.Buffer{})
	grid := s.Grid(&scan)
	lines := strings.Split(grid, "\n")
	if len(lines) != game.Dim {
		t.Fatalf("got %d rows", len(lines))
	}
	for i, l := range lines {
		if lipgloss.Width(l) != 2*game.Dim {
			t.Fatalf("row %d width=%d: %q", i, lipgloss.Width(l), l)
		}
	}
	if lines[0] != strings.Repeat("##", game.Dim) {
		t.Fatalf("top wall=%q", lines[0])
	}
	if got := lines[2][6:8]; got != "R " {
		t.Fatalf("robot glyph=%q", got)
	}
	if got := lines[4][10:12]; got != "/\\" {
		t.Fatalf("rock glyph=%q", got)
	}
	if got := lines[6][14:16]; got != ".." {
		t.Fatalf("fog glyph=%q", got)
	}

	framed := s.Render("turn 3", &scan)
	if !strings.Contains(framed, "turn 3") || !strings.Contains(framed, "red 1  blue 1") {
		t.Fatalf("frame missing title or score:\n%s", framed)
	}
}
