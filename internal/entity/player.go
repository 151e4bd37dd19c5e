package entity

import "dwarf-slayer/internal/gamemap"

// Equipment is the player's worn gear. Cosmetic only.
type Equipment struct {
	Weapon string `json:"weapon"`
	Armor  string `json:"armor"`
}

// Player is the single player-controlled character.
type Player struct {
	Pos       gamemap.Position `json:"pos"`
	Attrs     Attributes       `json:"attrs"`
	HP        int              `json:"hp"`
	MaxHP     int              `json:"max_hp"`
	Attack    int              `json:"attack"`
	Parry     int              `json:"parry"`
	Level     int              `json:"level"`
	XP        int              `json:"xp"`
	NextXP    int              `json:"next_xp"`
	Potions   int              `json:"potions"`
	Equipment Equipment        `json:"equipment"`
	Angle     float64          `json:"angle"` // facing in radians, [0, 2π)
}

// Dead reports whether the player has no hit points left.
func (p *Player) Dead() bool { return p.HP <= 0 }

// Heal adds n hit points, capped at MaxHP, and returns the amount gained.
func (p *Player) Heal(n int) int {
	before := p.HP
	p.HP = min(p.MaxHP, p.HP+n)
	return p.HP - before
}

// XPThreshold is the experience needed to advance past level.
func XPThreshold(level int) int {
	return 20 + level*10
}
