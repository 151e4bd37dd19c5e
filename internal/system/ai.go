package system

import (
	"dwarf-slayer/assets"
	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/entity"
	"dwarf-slayer/internal/gamemap"
)

// meleeReach covers orthogonal and diagonal neighbours.
const meleeReach = 1.5

// ProcessAI runs one turn for every living monster in list order and returns
// the attacks made against the player.
func ProcessAI(gmap *gamemap.GameMap, p *entity.Player, monsters []entity.Monster, d *dice.Dice) []EnemyHitResult {
	var hits []EnemyHitResult
	for i := range monsters {
		if !monsters[i].Alive() {
			continue
		}
		if res, attacked := StepMonster(gmap, p, monsters, i, d); attacked {
			hits = append(hits, res)
		}
	}
	return hits
}

// StepMonster runs one turn for monster i: regeneration first, then its
// behavior. A monster attacks at most once per turn.
func StepMonster(gmap *gamemap.GameMap, p *entity.Player, monsters []entity.Monster, i int, d *dice.Dice) (EnemyHitResult, bool) {
	m := &monsters[i]
	if !m.Alive() {
		return EnemyHitResult{}, false
	}
	if m.Regen > 0 && m.HP < m.MaxHP {
		m.HP = min(m.MaxHP, m.HP+m.Regen)
	}

	if m.Behavior == assets.BehaviorRanged {
		return rangedTurn(gmap, p, monsters, i, d)
	}
	return chaseTurn(gmap, p, monsters, i, d)
}

// rangedTurn shoots when the player is within range, not orthogonally
// adjacent and in sight. Otherwise it backs away when too close and closes in
// when too far.
func rangedTurn(gmap *gamemap.GameMap, p *entity.Player, monsters []entity.Monster, i int, d *dice.Dice) (EnemyHitResult, bool) {
	m := &monsters[i]
	dist := m.Pos.Dist(p.Pos)
	if dist > 1 && dist <= float64(m.Range) && LineOfSight(gmap, m.Pos, p.Pos) {
		return attack(d, monsters, i, p), true
	}
	if dist < float64(m.Prefer) {
		away := gamemap.Position{X: 2*m.Pos.X - p.Pos.X, Y: 2*m.Pos.Y - p.Pos.Y}
		StepToward(gmap, p, monsters, i, away)
	} else {
		StepToward(gmap, p, monsters, i, p.Pos)
	}
	return EnemyHitResult{}, false
}

// chaseTurn handles melee and runner monsters. Runners get a second step
// while more than two cells away.
func chaseTurn(gmap *gamemap.GameMap, p *entity.Player, monsters []entity.Monster, i int, d *dice.Dice) (EnemyHitResult, bool) {
	m := &monsters[i]
	steps := 1
	if m.Behavior == assets.BehaviorRunner && m.Pos.Dist(p.Pos) > 2 {
		steps = 2
	}
	for range steps {
		if m.Pos.Dist(p.Pos) <= meleeReach {
			return attack(d, monsters, i, p), true
		}
		StepToward(gmap, p, monsters, i, p.Pos)
	}
	return EnemyHitResult{}, false
}

func attack(d *dice.Dice, monsters []entity.Monster, i int, p *entity.Player) EnemyHitResult {
	res := EnemyAttack(d, &monsters[i], p)
	res.Attacker = i
	return res
}
