package assets

// Saga log lines. Format verbs are filled by the game package.
const (
	MsgEnter     = "You shoulder your axe and enter."
	MsgHit       = "You hit the %s for %d."
	MsgMiss      = "You miss the %s."
	MsgDies      = "%s dies!"
	MsgGainXP    = "You gain %d XP."
	MsgLevelUp   = "*** Level Up! Level %d. MaxHP+4, AT+1%s."
	MsgParryUp   = ", PA+1"
	MsgEnemyHits = "%s hits you (%d)."
	MsgFendOff   = "You fend off the %s."
	MsgPickup    = "You pick up a healing draught."
	MsgDescend   = "You descend to Depth %d."
	MsgQuaff     = "You quaff a bitter dwarf brew. (+HP)"
	MsgRest      = "You catch your breath."
	MsgFall      = "You fall..."
)

// Title is shown at the top of the stats panel.
const Title = "Dwarf Slayer"

// Map glyphs for things that are not monsters.
const (
	GlyphPlayer = 'S'
	GlyphStairs = '>'
	GlyphPotion = '!'
)
