package entity

import (
	"dwarf-slayer/assets"
	"dwarf-slayer/internal/gamemap"
)

// Monster is one hostile creature. Dead monsters stay in the floor's list
// and are skipped by every system.
type Monster struct {
	Species   assets.Species   `json:"-"`
	Name      string           `json:"name"`
	Glyph     rune             `json:"glyph"`
	Pos       gamemap.Position `json:"pos"`
	HP        int              `json:"hp"`
	MaxHP     int              `json:"max_hp"`
	Attack    int              `json:"-"`
	DamageMin int              `json:"-"`
	DamageMax int              `json:"-"`
	Behavior  assets.Behavior  `json:"-"`
	Range     int              `json:"-"`
	Prefer    int              `json:"-"`
	Regen     int              `json:"-"`
	XP        int              `json:"-"`
	Fresh     bool             `json:"-"` // not yet hit by the player
}

// Alive reports whether the monster still takes part in the game.
func (m *Monster) Alive() bool { return m.HP > 0 }

// MonsterAt returns the index of the living monster at p, or -1.
func MonsterAt(monsters []Monster, p gamemap.Position) int {
	for i := range monsters {
		if monsters[i].Alive() && monsters[i].Pos == p {
			return i
		}
	}
	return -1
}
