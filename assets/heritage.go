package assets

// Attribute is one of the eight character attributes.
type Attribute uint8

const (
	AttrMU Attribute = iota // courage
	AttrKL                  // cleverness
	AttrIN                  // intuition
	AttrCH                  // charisma
	AttrFF                  // dexterity
	AttrGE                  // agility
	AttrKO                  // constitution
	AttrKK                  // strength
	NumAttributes
)

var attributeNames = [NumAttributes]string{"MU", "KL", "IN", "CH", "FF", "GE", "KO", "KK"}

func (a Attribute) String() string {
	if a >= NumAttributes {
		return "??"
	}
	return attributeNames[a]
}

// Base attribute rolls are uniform over [AttributeMin, AttributeMax].
const (
	AttributeMin = 8
	AttributeMax = 14
)

// Heritage is a named set of attribute adjustments applied after rolling.
type Heritage struct {
	Name   string
	Deltas map[Attribute]int
}

// Dwarf is the only playable race.
var Dwarf = Heritage{
	Name:   "Dwarf",
	Deltas: map[Attribute]int{AttrKO: 2, AttrKK: 2, AttrGE: -1, AttrCH: -1},
}

// Slayer is the only playable profession.
var Slayer = Heritage{
	Name:   "Slayer",
	Deltas: map[Attribute]int{AttrKK: 2, AttrMU: 1},
}

// Starting equipment. Cosmetic: neither slot changes combat numbers.
const (
	StartWeapon = "Axe"
	StartArmor  = "Cloth"
)
