package bot

import (
	"math/rand"

	"github.com/brensch/paintbots/game"
)

// AntiRandom heads for open ground and, when it is not ahead on territory, turns on
// the opponent as soon as it sees it.
type AntiRandom struct {
	base
	losing bool
}

func NewAntiRandom(rng *rand.Rand) *AntiRandom {
	return &AntiRandom{base: newBase(rng), losing: true}
}

func (a *AntiRandom) Name() string { return "AntiRandom" }

func (a *AntiRandom) NextMove(srs game.ShortRangeScan, lrs *game.LongRangeScan) game.MoveRequest {
	a.moves++
	req := game.MoveRequest{Robot: a.color, Action: game.None}

	if lrs != nil {
		mine, theirs := territory(lrs, a.color)
		a.losing = theirs >= mine
	}
	enemyDir, _, seen := enemyBearing(&srs, a.color)

	target := openDirection(&srs)
	if seen && a.losing {
		target = enemyDir
	}

	switch {
	case target != game.North:
		req.Action = turnToward(target)
	case srs.Ahead().Passable():
		req.Action = game.Forward
	default:
		req.Action = game.RotateRight
	}

	if seen {
		if enemyDir == game.North {
			req.Shoot = a.fire(a.rng.Intn(10) < 9)
		} else {
			req.Shoot = a.fire(a.rng.Intn(5) == 0)
		}
	}
	return req
}

// openDirection picks the first neighbour with empty terrain, checking ahead, right,
// behind, then left. With none open it keeps going ahead.
func openDirection(srs *game.ShortRangeScan) game.Direction {
	c := game.ScanCenter
	neighbours := []struct {
		dir  game.Direction
		cell game.SquareView
	}{
		{game.North, srs[c-1][c]},
		{game.East, srs[c][c+1]},
		{game.South, srs[c+1][c]},
		{game.West, srs[c][c-1]},
	}
	for _, n := range neighbours {
		if n.cell.Terrain == game.Empty {
			return n.dir
		}
	}
	return game.North
}
