package system

import (
	"math"

	"dwarf-slayer/internal/entity"
	"dwarf-slayer/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall; nothing happened
	MoveAttack                    // bumped a living monster
)

// TryMove moves the player by (dx, dy). The player turns to face any
// non-zero direction even when the step is blocked. The destination is
// clamped to the grid. Returns the outcome and, for MoveAttack, the index of
// the monster in the way.
func TryMove(gmap *gamemap.GameMap, p *entity.Player, monsters []entity.Monster, dx, dy int) (MoveResult, int) {
	if dx != 0 || dy != 0 {
		p.Angle = NormalizeAngle(math.Atan2(float64(dy), float64(dx)))
	}
	next := gamemap.Position{
		X: clamp(p.Pos.X+dx, 0, gmap.Width-1),
		Y: clamp(p.Pos.Y+dy, 0, gmap.Height-1),
	}
	if gmap.IsWall(next.X, next.Y) {
		return MoveBlocked, -1
	}
	if i := entity.MonsterAt(monsters, next); i >= 0 {
		return MoveAttack, i
	}
	p.Pos = next
	return MoveOK, -1
}

// StepToward moves monster i one cell toward target, changing x and y by at
// most one each. The step is refused when it would leave the grid, enter a
// wall, enter the player's cell or land on another living monster.
func StepToward(gmap *gamemap.GameMap, p *entity.Player, monsters []entity.Monster, i int, target gamemap.Position) bool {
	m := &monsters[i]
	next := m.Pos.Add(sign(target.X-m.Pos.X), sign(target.Y-m.Pos.Y))
	if next == m.Pos || !gmap.InBounds(next.X, next.Y) || gmap.IsWall(next.X, next.Y) {
		return false
	}
	if next == p.Pos {
		return false
	}
	for j := range monsters {
		if j != i && monsters[j].Alive() && monsters[j].Pos == next {
			return false
		}
	}
	m.Pos = next
	return true
}

// NormalizeAngle wraps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// FacingDegrees returns the compass reading for angle, rounded to whole degrees.
func FacingDegrees(angle float64) int {
	deg := math.Mod(angle*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return int(deg + 0.5)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
