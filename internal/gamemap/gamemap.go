package gamemap

import "math"

// Position is a grid cell coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Dist returns the Euclidean distance between p and o.
func (p Position) Dist(o Position) float64 {
	return math.Hypot(float64(o.X-p.X), float64(o.Y-p.Y))
}

// Rect is an axis-aligned room. X2 and Y2 are exclusive: the room covers
// columns X1..X2-1 and rows Y1..Y2-1.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a room at (x, y) with width w and height h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the room's center cell (x + w/2, y + h/2).
func (r Rect) Center() Position {
	return Position{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether r overlaps other. Edges are inclusive, so rooms
// that merely touch also intersect and are always separated by wall.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap holds the tile grid and room list for one dungeon floor.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Out-of-bounds cells read as wall.
func (m *GameMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// Set replaces the tile at (x, y). Out-of-bounds writes are ignored.
func (m *GameMap) Set(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = t
	}
}

// IsWall reports whether (x, y) blocks movement and sight.
func (m *GameMap) IsWall(x, y int) bool {
	return m.At(x, y) == TileWall
}

// IsFloor reports whether (x, y) is an in-bounds floor cell.
func (m *GameMap) IsFloor(x, y int) bool {
	return m.At(x, y) == TileFloor
}

// Clone returns a deep copy of the map.
func (m *GameMap) Clone() *GameMap {
	c := New(m.Width, m.Height)
	for y := range m.Tiles {
		copy(c.Tiles[y], m.Tiles[y])
	}
	c.Rooms = append([]Rect(nil), m.Rooms...)
	return c
}
