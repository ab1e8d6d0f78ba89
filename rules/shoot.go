package rules

import (
	"fmt"

	"github.com/brensch/paintbots/game"
)

// PaintBlobHit fires a paint blob for req.Robot when req.Shoot is set.
//
// The blob travels from the shooter in its facing direction. Walls and rocks stop it,
// fog does not. On hitting the opponent, the opponent paints the shooter's color for
// HitDuration moves and the shooter loses one blob. Misses and an empty magazine
// return false and cost nothing.
func (b *Board) PaintBlobHit(req game.MoveRequest) (bool, error) {
	if !req.Robot.Valid() {
		return false, fmt.Errorf("shoot: %w: %d", game.ErrInvalidRobot, int(req.Robot))
	}
	if !req.Shoot {
		return false, nil
	}
	shooter := &b.robots[req.Robot]
	if shooter.blobs <= 0 {
		return false, nil
	}
	pos, ok := b.locate(req.Robot)
	if !ok {
		return false, fmt.Errorf("shoot %s: %w", req.Robot, ErrRobotNotFound)
	}

	facing := b.square(pos).Facing()
	opp := req.Robot.Opponent()
	for p := pos.Step(facing); p.InGrid(); p = p.Step(facing) {
		sq := b.square(p)
		if sq.Terrain().Blocks() {
			return false, nil
		}
		if !sq.Has(opp) {
			continue
		}
		target := &b.robots[opp]
		target.countdown = b.cfg.HitDuration
		target.paint = req.Robot.Own()
		shooter.blobs--
		b.logger.Debug("paint blob hit", "shooter", req.Robot.String(), "target", p.String())
		return true, b.notify()
	}
	return false, nil
}
