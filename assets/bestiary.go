package assets

// Species identifies a monster kind.
type Species uint8

const (
	SpeciesGoblin Species = iota
	SpeciesOrc
	SpeciesWolf
	SpeciesArcher
	SpeciesTroll
	numSpecies
)

// Behavior selects the AI routine a monster runs each turn.
type Behavior uint8

const (
	BehaviorMelee  Behavior = iota // close in and attack when adjacent
	BehaviorRunner                 // like melee, but takes two steps when far away
	BehaviorRanged                 // keep distance and shoot with line of sight
)

func (b Behavior) String() string {
	switch b {
	case BehaviorRunner:
		return "runner"
	case BehaviorRanged:
		return "ranged"
	}
	return "melee"
}

// SpeciesDef is the immutable stat block for one species.
type SpeciesDef struct {
	Name      string
	Glyph     rune
	HP        int
	Attack    int
	DamageMin int
	DamageMax int
	Behavior  Behavior
	Range     int // ranged only: maximum shooting distance
	Prefer    int // ranged only: retreat when closer than this
	Regen     int // HP regained per turn while wounded
	XP        int
}

// DefaultXP is awarded for a kill when a species declares no reward.
const DefaultXP = 8

// Bestiary is indexed by Species.
var Bestiary = [numSpecies]SpeciesDef{
	SpeciesGoblin: {Name: "goblin", Glyph: 'g', HP: 5, Attack: 8, DamageMin: 1, DamageMax: 2, Behavior: BehaviorMelee, XP: 8},
	SpeciesOrc:    {Name: "orc", Glyph: 'o', HP: 10, Attack: 10, DamageMin: 2, DamageMax: 3, Behavior: BehaviorMelee, XP: 14},
	SpeciesWolf:   {Name: "wolf", Glyph: 'w', HP: 6, Attack: 9, DamageMin: 1, DamageMax: 2, Behavior: BehaviorRunner, XP: 10},
	SpeciesArcher: {Name: "archer", Glyph: 'a', HP: 6, Attack: 8, DamageMin: 1, DamageMax: 2, Behavior: BehaviorRanged, Range: 7, Prefer: 4, XP: 12},
	SpeciesTroll:  {Name: "troll", Glyph: 'T', HP: 20, Attack: 10, DamageMin: 3, DamageMax: 5, Behavior: BehaviorMelee, Regen: 1, XP: 24},
}

// AllSpecies lists every species in registry order.
func AllSpecies() []Species {
	out := make([]Species, numSpecies)
	for i := range out {
		out[i] = Species(i)
	}
	return out
}

// Def returns the stat block for s. Unknown values resolve to the goblin.
func (s Species) Def() SpeciesDef {
	if s >= numSpecies {
		return Bestiary[SpeciesGoblin]
	}
	return Bestiary[s]
}

func (s Species) String() string { return s.Def().Name }
