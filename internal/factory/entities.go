package factory

import (
	"dwarf-slayer/assets"
	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/entity"
	"dwarf-slayer/internal/gamemap"
)

// RollAttributes draws the eight base scores in attribute order and applies
// the dwarf and slayer adjustments.
func RollAttributes(d *dice.Dice) entity.Attributes {
	var a entity.Attributes
	for i := range a {
		a[i] = d.Range(assets.AttributeMin, assets.AttributeMax)
	}
	return a.Apply(assets.Dwarf).Apply(assets.Slayer)
}

// MaxHP derives starting hit points from constitution and strength.
func MaxHP(a entity.Attributes) int {
	return 20 + max(0, a.Get(assets.AttrKO)-10) + a.Get(assets.AttrKK)/5
}

// AttackValue derives the attack score from strength and agility.
func AttackValue(a entity.Attributes) int {
	return 6 + (a.Get(assets.AttrKK)+a.Get(assets.AttrGE))/4
}

// ParryValue derives the parry score from agility and courage.
func ParryValue(a entity.Attributes) int {
	return 4 + (a.Get(assets.AttrGE)+a.Get(assets.AttrMU))/5
}

// NewPlayer creates a level 1 dwarf slayer at pos with freshly rolled attributes.
func NewPlayer(d *dice.Dice, pos gamemap.Position) entity.Player {
	return NewPlayerWithAttributes(RollAttributes(d), pos)
}

// NewPlayerWithAttributes builds the player sheet from already adjusted scores.
func NewPlayerWithAttributes(a entity.Attributes, pos gamemap.Position) entity.Player {
	hp := MaxHP(a)
	return entity.Player{
		Pos:     pos,
		Attrs:   a,
		HP:      hp,
		MaxHP:   hp,
		Attack:  AttackValue(a),
		Parry:   ParryValue(a),
		Level:   1,
		NextXP:  entity.XPThreshold(1),
		Potions: 0,
		Equipment: entity.Equipment{
			Weapon: assets.StartWeapon,
			Armor:  assets.StartArmor,
		},
	}
}

// NewMonster creates a full-health monster of species s at pos.
func NewMonster(s assets.Species, pos gamemap.Position) entity.Monster {
	def := s.Def()
	xp := def.XP
	if xp <= 0 {
		xp = assets.DefaultXP
	}
	return entity.Monster{
		Species:   s,
		Name:      def.Name,
		Glyph:     def.Glyph,
		Pos:       pos,
		HP:        def.HP,
		MaxHP:     def.HP,
		Attack:    def.Attack,
		DamageMin: def.DamageMin,
		DamageMax: def.DamageMax,
		Behavior:  def.Behavior,
		Range:     def.Range,
		Prefer:    def.Prefer,
		Regen:     def.Regen,
		XP:        xp,
		Fresh:     true,
	}
}

// NewPotion creates a healing draught lying at pos.
func NewPotion(pos gamemap.Position) entity.Item {
	return entity.Item{Kind: entity.ItemPotion, Pos: pos}
}
