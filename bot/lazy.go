package bot

import (
	"math/rand"

	"github.com/brensch/paintbots/game"
)

// Lazy mostly stands still. It moves when it is in fog, every fifth turn, or when
// more than two opponent-colored squares surround it, and it shoots whenever the
// opponent is in view or on a one-in-three chance.
type Lazy struct {
	base
}

func NewLazy(rng *rand.Rand) *Lazy {
	return &Lazy{base: newBase(rng)}
}

func (l *Lazy) Name() string { return "LazyRobot" }

func (l *Lazy) NextMove(srs game.ShortRangeScan, _ *game.LongRangeScan) game.MoveRequest {
	l.moves++
	req := game.MoveRequest{Robot: l.color, Action: game.None}

	_, _, enemySeen := enemyBearing(&srs, l.color)

	restless := srs.Center().Terrain == game.Fog || l.moves%5 == 0
	if !restless {
		hostile := l.color.Opponent().Own()
		n := 0
		for i := game.ScanCenter - 1; i <= game.ScanCenter+1; i++ {
			for j := game.ScanCenter - 1; j <= game.ScanCenter+1; j++ {
				if srs[i][j].Color == hostile {
					n++
				}
			}
		}
		restless = n > 2
	}

	if restless {
		switch {
		case srs.Ahead().Passable():
			req.Action = game.Forward
		case l.moves%2 == 0:
			req.Action = game.RotateLeft
		default:
			req.Action = game.RotateRight
		}
	}

	req.Shoot = l.fire(enemySeen || l.rng.Intn(3) == 0)
	return req
}
