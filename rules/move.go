package rules

import (
	"fmt"

	"github.com/brensch/paintbots/game"
)

// MoveRobot applies req's action to the named robot.
//
// Before dispatching, the robot's hit countdown ticks down; when it reaches zero the
// robot paints its own color again. It returns false only when a Forward move is
// blocked by the grid edge, a wall, a rock or either robot, in which case no square
// changes. Invalid requests and a missing robot are errors and leave the board as it
// was. An observer error is returned after the change has been applied.
func (b *Board) MoveRobot(req game.MoveRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, fmt.Errorf("move: %w", err)
	}
	pos, ok := b.locate(req.Robot)
	if !ok {
		return false, fmt.Errorf("move %s: %w", req.Robot, ErrRobotNotFound)
	}
	if err := b.tickHit(req.Robot); err != nil {
		return false, err
	}

	sq := b.square(pos)
	facing := sq.Facing()
	switch req.Action {
	case game.Forward:
		dst := pos.Step(facing)
		if !dst.InGrid() {
			return false, nil
		}
		next := b.square(dst)
		if next.Terrain().Blocks() || next.Occupied() {
			return false, nil
		}
		paint := b.robots[req.Robot].paint
		_ = sq.SetColor(paint)
		_ = next.SetColor(paint)
		_ = sq.SetRobot(req.Robot, false)
		if err := next.SetRobot(req.Robot, true); err != nil {
			return false, fmt.Errorf("move %s to %s: %w", req.Robot, dst, err)
		}
		_ = next.SetFacing(facing)
	case game.RotateLeft:
		_ = sq.SetFacing(facing.CounterClockwise())
	case game.RotateRight:
		_ = sq.SetFacing(facing.Clockwise())
	case game.None:
	}
	return true, b.notify()
}

func (b *Board) tickHit(rc game.RobotColor) error {
	st := &b.robots[rc]
	if st.countdown <= 0 {
		return nil
	}
	st.countdown--
	if st.countdown > 0 {
		return nil
	}
	st.paint = rc.Own()
	return b.notify()
}
