package system

import (
	"dwarf-slayer/assets"
	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/entity"
)

// HitResult is the outcome of the to-hit and damage phases of a player attack.
type HitResult struct {
	Hit    bool
	Damage int
	Opener int // bonus from striking a monster that has not been hit before
}

// ComputeHit rolls a player attack against m without changing either side.
// Draw order: d20 to hit, d2 opener (fresh targets only), d3 base damage.
func ComputeHit(d *dice.Dice, p *entity.Player, m *entity.Monster) HitResult {
	if d.Roll(1, 20) > max(3, p.Attack-2) {
		return HitResult{}
	}
	opener := 0
	if m.Fresh {
		opener = d.Roll(1, 2)
	}
	base := 2 + d.Roll(1, 3)
	strength := max(0, (p.Attrs.Get(assets.AttrKK)-10)/2)
	return HitResult{
		Hit:    true,
		Damage: max(1, base+strength+opener),
		Opener: opener,
	}
}

// ApplyDamage removes amount hit points from m and reports whether it died.
// Any damage ends the monster's fresh state.
func ApplyDamage(m *entity.Monster, amount int) bool {
	m.Fresh = false
	m.HP -= amount
	return !m.Alive()
}

// LevelUp records one level gained by AwardXP.
type LevelUp struct {
	Level   int
	ParryUp bool
}

// AwardXP grants amount experience and applies every level-up it pays for.
// Each level costs the current threshold, then raises max HP by 4 and attack
// by 1, parry by 1 on even levels, and heals 4.
func AwardXP(p *entity.Player, amount int) []LevelUp {
	p.XP += amount
	var ups []LevelUp
	for p.XP >= p.NextXP {
		p.XP -= p.NextXP
		p.Level++
		p.NextXP = entity.XPThreshold(p.Level)
		p.MaxHP += 4
		p.Attack++
		up := LevelUp{Level: p.Level, ParryUp: p.Level%2 == 0}
		if up.ParryUp {
			p.Parry++
		}
		p.Heal(4)
		ups = append(ups, up)
	}
	return ups
}

// AttackReport is everything one player attack did.
type AttackReport struct {
	HitResult
	Killed   bool
	XP       int
	LevelUps []LevelUp
}

// ResolvePlayerAttack runs the hit, damage and experience phases in order.
// An attack on a dead monster does nothing.
func ResolvePlayerAttack(d *dice.Dice, p *entity.Player, m *entity.Monster) AttackReport {
	if !m.Alive() {
		return AttackReport{}
	}
	rep := AttackReport{HitResult: ComputeHit(d, p, m)}
	if !rep.Hit {
		return rep
	}
	if rep.Killed = ApplyDamage(m, rep.Damage); rep.Killed {
		rep.XP = m.XP
		rep.LevelUps = AwardXP(p, m.XP)
	}
	return rep
}

// EnemyHitResult holds information about a monster attack on the player.
type EnemyHitResult struct {
	Attacker int // index into the floor's monster list
	Name     string
	Hit      bool
	Damage   int
}

// EnemyAttack resolves one attack by m. It lands when a d20 is at most the
// monster's attack and a second d20 beats the player's parry; the parry roll
// is skipped when the first one fails.
func EnemyAttack(d *dice.Dice, m *entity.Monster, p *entity.Player) EnemyHitResult {
	res := EnemyHitResult{Name: m.Name}
	if d.Roll(1, 20) <= m.Attack && d.Roll(1, 20) > p.Parry {
		res.Hit = true
		res.Damage = d.Range(m.DamageMin, m.DamageMax)
		p.HP -= res.Damage
	}
	return res
}

// PotionHeal is the healing a draught gives this player.
func PotionHeal(p *entity.Player) int {
	return max(4, 6+max(0, (p.Attrs.Get(assets.AttrKO)-10)/2))
}

// QuaffPotion drinks one draught. It does nothing without potions.
func QuaffPotion(p *entity.Player) (healed int, ok bool) {
	if p.Potions <= 0 {
		return 0, false
	}
	p.Potions--
	return p.Heal(PotionHeal(p)), true
}

// Rest recovers one hit point.
func Rest(p *entity.Player) int {
	return p.Heal(1)
}
