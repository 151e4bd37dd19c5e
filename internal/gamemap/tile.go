package gamemap

// Tile is the terrain of one map cell. There are exactly two kinds.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
)

// Glyph returns the map character for the tile.
func (t Tile) Glyph() rune {
	if t == TileFloor {
		return '.'
	}
	return '#'
}

func (t Tile) String() string {
	if t == TileFloor {
		return "floor"
	}
	return "wall"
}
