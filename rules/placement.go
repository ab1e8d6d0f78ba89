package rules

import (
	"fmt"

	"github.com/brensch/paintbots/game"
)

func (b *Board) placeWalls() {
	for i := 0; i < game.Dim; i++ {
		// Wall is accepted over any terrain.
		_ = b.grid[0][i].SetTerrain(game.Wall)
		_ = b.grid[game.Dim-1][i].SetTerrain(game.Wall)
		_ = b.grid[i][0].SetTerrain(game.Wall)
		_ = b.grid[i][game.Dim-1].SetTerrain(game.Wall)
	}
}

func (b *Board) populate() error {
	rocks := b.between(b.cfg.RockLowerBound, b.cfg.RockUpperBound)
	if err := b.scatter(game.Rock, rocks); err != nil {
		return err
	}
	fog := b.between(b.cfg.FogLowerBound, b.cfg.FogUpperBound)
	if err := b.scatter(game.Fog, fog); err != nil {
		return err
	}
	for _, rc := range []game.RobotColor{game.RedRobot, game.BlueRobot} {
		if err := b.dropRobot(rc); err != nil {
			return err
		}
	}
	return nil
}

// between draws uniformly from [lo, hi].
func (b *Board) between(lo, hi int) int {
	return lo + b.rng.Intn(hi-lo+1)
}

// available lists interior cells that are Empty and unoccupied.
func (b *Board) available() []game.Point {
	free := make([]game.Point, 0, game.Size*game.Size)
	for row := 1; row <= game.Size; row++ {
		for col := 1; col <= game.Size; col++ {
			sq := &b.grid[row][col]
			if sq.Terrain() != game.Empty || sq.Occupied() {
				continue
			}
			free = append(free, game.Point{Row: row, Col: col})
		}
	}
	return free
}

// take removes and returns a random slot from free.
func (b *Board) take(free []game.Point) (game.Point, []game.Point) {
	i := b.rng.Intn(len(free))
	p := free[i]
	free[i] = free[len(free)-1]
	return p, free[:len(free)-1]
}

func (b *Board) scatter(t game.Terrain, n int) error {
	free := b.available()
	if len(free) < n {
		return fmt.Errorf("place %d %s with %d free: %w", n, t, len(free), ErrBoardFull)
	}
	var p game.Point
	for i := 0; i < n; i++ {
		p, free = b.take(free)
		if err := b.square(p).SetTerrain(t); err != nil {
			return fmt.Errorf("place %s at %s: %w", t, p, err)
		}
	}
	b.logger.Debug("terrain placed", "terrain", t.String(), "count", n)
	return nil
}

func (b *Board) dropRobot(rc game.RobotColor) error {
	free := b.available()
	if len(free) == 0 {
		return fmt.Errorf("place %s robot: %w", rc, ErrBoardFull)
	}
	p, _ := b.take(free)
	sq := b.square(p)
	if err := sq.SetRobot(rc, true); err != nil {
		return fmt.Errorf("place %s robot at %s: %w", rc, p, err)
	}
	_ = sq.SetFacing(game.North)
	_ = sq.SetColor(game.White)
	b.logger.Debug("robot placed", "robot", rc.String(), "pos", p.String())
	return nil
}
