// Package bot holds the robot decision strategies and the glue that binds a strategy
// to a robot color.
//
// Strategies only see what the board hands out: a facing-up short-range scan every
// turn and, while the robot's budget lasts, a long-range scan. In the short-range
// frame North is straight ahead and East is to the robot's right.
package bot

import (
	"math/rand"
	"time"

	"github.com/brensch/paintbots/game"
)

//go:generate go tool mockgen -destination=./mocks/strategy_mock.go -package=mocks . Strategy

// Creator is credited on every built-in strategy.
const Creator = "Shobhit"

// ShotBudget is how many shots a built-in strategy will request per game.
const ShotBudget = 30

// Strategy decides one robot's move each turn.
type Strategy interface {
	Name() string
	Creator() string
	SetColor(c game.RobotColor)
	// NextMove returns the request for this turn. lrs is nil once the robot has
	// used up its long-range scans.
	NextMove(srs game.ShortRangeScan, lrs *game.LongRangeScan) game.MoveRequest
}

type base struct {
	color game.RobotColor
	rng   *rand.Rand
	shots int
	moves int
}

func newBase(rng *rand.Rand) base {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return base{color: game.RedRobot, rng: rng, shots: ShotBudget}
}

func (b *base) Creator() string { return Creator }
func (b *base) SetColor(c game.RobotColor) { b.color = c }

// ShotsLeft reports the remaining shot budget.
func (b *base) ShotsLeft() int { return b.shots }

// fire spends one shot when want is set and the budget allows it.
func (b *base) fire(want bool) bool {
	if !want || b.shots <= 0 {
		return false
	}
	b.shots--
	return true
}

// enemyBearing finds the opponent in the scan and reports its direction in the
// robot's frame together with its Manhattan distance.
func enemyBearing(srs *game.ShortRangeScan, self game.RobotColor) (dir game.Direction, dist int, ok bool) {
	enemy := self.Opponent()
	best := -1
	for i := range srs {
		for j := range srs[i] {
			if !srs[i][j].Has(enemy) {
				continue
			}
			d := abs(i-game.ScanCenter) + abs(j-game.ScanCenter)
			if best >= 0 && d >= best {
				continue
			}
			best = d
			switch {
			case i < game.ScanCenter:
				dir = game.North
			case i > game.ScanCenter:
				dir = game.South
			case j < game.ScanCenter:
				dir = game.West
			default:
				dir = game.East
			}
		}
	}
	return dir, best, best >= 0
}

// turnToward is the rotation that brings a relative direction closer to ahead.
// Behind is reached by turning right.
func turnToward(d game.Direction) game.Action {
	switch d {
	case game.West:
		return game.RotateLeft
	case game.East, game.South:
		return game.RotateRight
	default:
		return game.None
	}
}

// territory counts interior squares in the robot's own color and the opponent's.
func territory(lrs *game.LongRangeScan, self game.RobotColor) (mine, theirs int) {
	return lrs.CountColor(self.Own()), lrs.CountColor(self.Opponent().Own())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
