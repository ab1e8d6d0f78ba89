package bot

import (
	"math/rand"
	"testing"

	"github.com/brensch/paintbots/game"
	"pgregory.net/rapid"
)

// openScan is a facing-up view of open ground with self in the centre.
func openScan(self game.RobotColor) game.ShortRangeScan {
	var s game.ShortRangeScan
	for i := range s {
		for j := range s[i] {
			s[i][j] = game.EmptyView()
		}
	}
	c := &s[game.ScanCenter][game.ScanCenter]
	c.RedRobot = self == game.RedRobot
	c.BlueRobot = self == game.BlueRobot
	return s
}

func put(s *game.ShortRangeScan, i, j int, r game.RobotColor) {
	s[i][j].RedRobot = r == game.RedRobot
	s[i][j].BlueRobot = r == game.BlueRobot
}

// losingBoard has the opponent ahead on territory.
func losingBoard(self game.RobotColor) *game.LongRangeScan {
	var l game.LongRangeScan
	for i := 1; i <= 5; i++ {
		l[i][1].Color = self.Opponent().Own()
	}
	l[9][9].Color = self.Own()
	return &l
}

func TestEnemyBearing(t *testing.T) {
	cases := []struct {
		i, j int
		want game.Direction
		dist int
	}{
		{0, 2, game.North, 2},
		{1, 0, game.North, 3},
		{4, 4, game.South, 4},
		{2, 0, game.West, 2},
		{2, 3, game.East, 1},
	}
	for _, tc := range cases {
		s := openScan(game.RedRobot)
		put(&s, tc.i, tc.j, game.BlueRobot)
		dir, dist, ok := enemyBearing(&s, game.RedRobot)
		if !ok || dir != tc.want || dist != tc.dist {
			t.Fatalf("enemy at [%d][%d]: dir=%s dist=%d ok=%v want %s %d", tc.i, tc.j, dir, dist, ok, tc.want, tc.dist)
		}
	}
	s := openScan(game.BlueRobot)
	if _, _, ok := enemyBearing(&s, game.BlueRobot); ok {
		t.Fatalf("empty scan reported an enemy")
	}
}

func TestLazy_StaysPutUntilFifthMove(t *testing.T) {
	l := NewLazy(rand.New(rand.NewSource(1)))
	l.SetColor(game.BlueRobot)
	for turn := 1; turn <= 10; turn++ {
		req := l.NextMove(openScan(game.BlueRobot), nil)
		if req.Robot != game.BlueRobot {
			t.Fatalf("turn %d: request for %s", turn, req.Robot)
		}
		want := game.None
		if turn%5 == 0 {
			want = game.Forward
		}
		if req.Action != want {
			t.Fatalf("turn %d: action=%s want=%s", turn, req.Action, want)
		}
	}
}

func TestLazy_LeavesFogAndRotatesAtWall(t *testing.T) {
	l := NewLazy(rand.New(rand.NewSource(2)))
	s := openScan(game.RedRobot)
	s[game.ScanCenter][game.ScanCenter].Terrain = game.Fog
	if req := l.NextMove(s, nil); req.Action != game.Forward {
		t.Fatalf("in fog: action=%s want forward", req.Action)
	}
	s[1][2] = game.WallView()
	req := l.NextMove(s, nil)
	if req.Action != game.RotateLeft && req.Action != game.RotateRight {
		t.Fatalf("facing wall in fog: action=%s want a rotation", req.Action)
	}
}

func TestLazy_ShootsAtVisibleEnemy(t *testing.T) {
	l := NewLazy(rand.New(rand.NewSource(3)))
	s := openScan(game.RedRobot)
	put(&s, 4, 0, game.BlueRobot)
	for i := 0; i < ShotBudget; i++ {
		if !l.NextMove(s, nil).Shoot {
			t.Fatalf("shot %d not taken with enemy in view", i+1)
		}
	}
	if l.NextMove(s, nil).Shoot {
		t.Fatalf("shot taken beyond budget")
	}
	if l.ShotsLeft() != 0 {
		t.Fatalf("ShotsLeft=%d", l.ShotsLeft())
	}
}

func TestRandom_TurnsTowardEnemyWhenLosing(t *testing.T) {
	cases := []struct {
		name string
		i, j int
		want game.Action
	}{
		{"left", 2, 0, game.RotateLeft},
		{"right", 2, 4, game.RotateRight},
		{"behind", 4, 2, game.RotateRight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRandom(rand.New(rand.NewSource(4)))
			r.SetColor(game.RedRobot)
			s := openScan(game.RedRobot)
			put(&s, tc.i, tc.j, game.BlueRobot)
			req := r.NextMove(s, losingBoard(game.RedRobot))
			if req.Action != tc.want {
				t.Fatalf("action=%s want=%s", req.Action, tc.want)
			}
			if req.Shoot {
				t.Fatalf("shot while not facing the enemy")
			}
		})
	}
}

func TestRandom_ChargesAndShootsWhenFacing(t *testing.T) {
	r := NewRandom(rand.New(rand.NewSource(5)))
	r.SetColor(game.BlueRobot)
	s := openScan(game.BlueRobot)
	put(&s, 0, 2, game.RedRobot)
	req := r.NextMove(s, losingBoard(game.BlueRobot))
	if req.Action != game.Forward || !req.Shoot {
		t.Fatalf("req=%v want forward+shoot", req)
	}
	// Mood sticks once long-range scans run out.
	req = r.NextMove(s, nil)
	if req.Action != game.Forward {
		t.Fatalf("without lrs: req=%v want forward", req)
	}
}

func TestAntiRandom_SeeksOpenGround(t *testing.T) {
	a := NewAntiRandom(rand.New(rand.NewSource(6)))
	s := openScan(game.RedRobot)
	if req := a.NextMove(s, nil); req.Action != game.Forward {
		t.Fatalf("open ahead: action=%s want forward", req.Action)
	}
	s[1][2].Terrain = game.Rock
	if req := a.NextMove(s, nil); req.Action != game.RotateRight {
		t.Fatalf("rock ahead, open right: action=%s want rotate-right", req.Action)
	}
	s[2][3].Terrain = game.Rock
	s[3][2].Terrain = game.Rock
	if req := a.NextMove(s, nil); req.Action != game.RotateLeft {
		t.Fatalf("only left open: action=%s want rotate-left", req.Action)
	}
}

func TestAntiRandom_TurnsOnEnemy(t *testing.T) {
	a := NewAntiRandom(rand.New(rand.NewSource(7)))
	a.SetColor(game.BlueRobot)
	s := openScan(game.BlueRobot)
	put(&s, 1, 0, game.RedRobot)
	s[2][1].Terrain = game.Fog
	req := a.NextMove(s, losingBoard(game.BlueRobot))
	if req.Action != game.Forward {
		// Enemy at [1][0] reads as ahead.
		t.Fatalf("action=%s want forward", req.Action)
	}

	s[1][0] = game.EmptyView()
	put(&s, 2, 0, game.RedRobot)
	if req := a.NextMove(s, losingBoard(game.BlueRobot)); req.Action != game.RotateLeft {
		t.Fatalf("enemy left: action=%s want rotate-left", req.Action)
	}
}

func TestStrategies_AlwaysValidForTheirColor(t *testing.T) {
	roster := DefaultRoster()
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.SampledFrom(roster.Names()).Draw(rt, "name")
		color := game.RobotColor(rapid.IntRange(0, 1).Draw(rt, "color"))
		s, err := roster.New(name, rand.New(rand.NewSource(rapid.Int64().Draw(rt, "seed"))))
		if err != nil {
			rt.Fatalf("New(%s): %v", name, err)
		}
		s.SetColor(color)

		shots := 0
		turns := rapid.IntRange(1, 80).Draw(rt, "turns")
		for turn := 0; turn < turns; turn++ {
			var srs game.ShortRangeScan
			for i := range srs {
				for j := range srs[i] {
					srs[i][j] = game.SquareView{
						Color:   game.Color(rapid.IntRange(0, 2).Draw(rt, "color")),
						Terrain: game.Terrain(rapid.IntRange(0, 3).Draw(rt, "terrain")),
					}
				}
			}
			put(&srs, game.ScanCenter, game.ScanCenter, color)
			if rapid.Bool().Draw(rt, "enemy") {
				i := rapid.IntRange(0, game.ScanSize-1).Draw(rt, "ei")
				j := rapid.IntRange(0, game.ScanSize-1).Draw(rt, "ej")
				if i != game.ScanCenter || j != game.ScanCenter {
					put(&srs, i, j, color.Opponent())
				}
			}
			var lrs *game.LongRangeScan
			if rapid.Bool().Draw(rt, "lrs") {
				lrs = losingBoard(color)
			}

			req := s.NextMove(srs, lrs)
			if err := req.Validate(); err != nil {
				rt.Fatalf("turn %d: %v", turn, err)
			}
			if req.Robot != color {
				rt.Fatalf("turn %d: %s asked to move %s", turn, name, req.Robot)
			}
			if req.Shoot {
				shots++
			}
		}
		if shots > ShotBudget {
			rt.Fatalf("%s fired %d shots", name, shots)
		}
	})
}
