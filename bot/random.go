package bot

import (
	"math/rand"

	"github.com/brensch/paintbots/game"
)

// Random wanders and paints. When it is behind on territory and can see the
// opponent, it turns to face it and closes in.
type Random struct {
	base
	// losing is remembered so the robot keeps its mood after the long-range budget
	// runs out.
	losing bool
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{base: newBase(rng)}
}

func (r *Random) Name() string { return "RandomRobot" }

func (r *Random) NextMove(srs game.ShortRangeScan, lrs *game.LongRangeScan) game.MoveRequest {
	r.moves++
	req := game.MoveRequest{Robot: r.color, Action: game.None}

	if lrs != nil {
		mine, theirs := territory(lrs, r.color)
		r.losing = theirs > mine
	}
	dir, _, seen := enemyBearing(&srs, r.color)
	facing := seen && dir == game.North

	switch {
	case seen && r.losing && !facing:
		req.Action = turnToward(dir)
	case seen && r.losing:
		if srs.Ahead().Passable() {
			req.Action = game.Forward
		}
	default:
		choice := r.rng.Intn(10)
		switch {
		case choice < 5 && srs.Ahead().Passable():
			req.Action = game.Forward
		case choice < 7:
			req.Action = game.RotateLeft
		case choice < 9:
			req.Action = game.RotateRight
		}
	}

	req.Shoot = r.fire(facing || (!seen && r.rng.Intn(5) == 0))
	return req
}
