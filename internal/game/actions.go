package game

import (
	"math"

	"dwarf-slayer/assets"
	"dwarf-slayer/internal/entity"
	"dwarf-slayer/internal/system"
)

// MoveResult is the outcome of TryMove.
type MoveResult = system.MoveResult

// MoveOrAttack steps the player by (dx, dy), attacking a living monster in
// the way. Each component is clamped to -1..1 and (0, 0) waits. Walking into
// a wall turns the player but costs no turn.
func (g *Game) MoveOrAttack(dx, dy int) {
	if g.Over() {
		return
	}
	dx, dy = unit(dx), unit(dy)
	if dx == 0 && dy == 0 {
		g.Wait()
		return
	}
	if g.TryMove(dx, dy) == system.MoveBlocked {
		return
	}
	g.endTurn()
}

// TryMove is the move primitive behind MoveOrAttack: it moves, attacks,
// picks up and descends, but leaves the end of the turn to the caller.
// Only a floor transition touches the turn counter.
func (g *Game) TryMove(dx, dy int) MoveResult {
	if g.Over() {
		return system.MoveBlocked
	}
	res, target := system.TryMove(g.gmap, &g.player, g.monsters, dx, dy)
	switch res {
	case system.MoveAttack:
		g.playerAttack(target)
	case system.MoveOK:
		g.pickup()
		if g.player.Pos == g.stairs {
			g.descend()
		}
	}
	return res
}

// Rotate turns the player by deg degrees. It is free.
func (g *Game) Rotate(deg float64) {
	if g.Over() {
		return
	}
	g.player.Angle = system.NormalizeAngle(g.player.Angle + deg*math.Pi/180)
}

// Rest recovers one hit point and passes the turn.
func (g *Game) Rest() {
	if g.Over() {
		return
	}
	system.Rest(&g.player)
	g.addMessage(assets.MsgRest)
	g.endTurn()
}

// QuaffPotion drinks a healing draught if the player has one. The turn
// passes either way.
func (g *Game) QuaffPotion() {
	if g.Over() {
		return
	}
	if _, ok := system.QuaffPotion(&g.player); ok {
		g.runLog.PotionsQuaffed++
		g.addMessage(assets.MsgQuaff)
	}
	g.endTurn()
}

// Wait passes the turn.
func (g *Game) Wait() {
	if g.Over() {
		return
	}
	g.endTurn()
}

// endTurn advances the clock, lets every monster act and checks for death.
func (g *Game) endTurn() {
	g.turn++
	g.runLog.TurnsPlayed++
	g.refreshVisibility()

	for _, h := range system.ProcessAI(g.gmap, &g.player, g.monsters, g.dice) {
		if !h.Hit {
			g.addMessagef(assets.MsgFendOff, h.Name)
			continue
		}
		g.runLog.DamageTaken += h.Damage
		g.runLog.CauseOfDeath = h.Name
		g.addMessagef(assets.MsgEnemyHits, capitalize(h.Name), h.Damage)
	}

	if g.player.Dead() {
		g.state = StateGameOver
		g.addMessage(assets.MsgFall)
		g.logger.Info("run ended", "stats", g.runLog)
	}
}

func (g *Game) playerAttack(i int) {
	m := &g.monsters[i]
	rep := system.ResolvePlayerAttack(g.dice, &g.player, m)
	if !rep.Hit {
		g.addMessagef(assets.MsgMiss, m.Name)
		return
	}
	g.runLog.DamageDealt += rep.Damage
	g.addMessagef(assets.MsgHit, m.Name, rep.Damage)
	if !rep.Killed {
		return
	}
	g.runLog.EnemiesKilled[m.Name]++
	g.addMessagef(assets.MsgDies, capitalize(m.Name))
	g.addMessagef(assets.MsgGainXP, rep.XP)
	for _, up := range rep.LevelUps {
		parry := ""
		if up.ParryUp {
			parry = assets.MsgParryUp
		}
		g.addMessagef(assets.MsgLevelUp, up.Level, parry)
	}
}

// pickup collects the first potion under the player.
func (g *Game) pickup() {
	i := entity.ItemAt(g.items, entity.ItemPotion, g.player.Pos)
	if i < 0 {
		return
	}
	g.items = entity.RemoveItem(g.items, i)
	g.player.Potions++
	g.runLog.PotionsFound++
	g.addMessage(assets.MsgPickup)
}

// descend moves the run one floor down. Visibility is recomputed at the end
// of the turn, so the new floor starts unexplored.
func (g *Game) descend() {
	g.depth++
	g.turn++
	g.addMessagef(assets.MsgDescend, g.depth)
	g.loadFloor()
	g.logger.Debug("descended", "depth", g.depth, "turn", g.turn)
}

func unit(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
