package system

import (
	"dwarf-slayer/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// Line returns the Bresenham cells from a to b, both endpoints included.
func Line(a, b gamemap.Position) []gamemap.Position {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx - dy

	cells := make([]gamemap.Position, 0, max(dx, dy)+1)
	x, y := a.X, a.Y
	for {
		cells = append(cells, gamemap.Position{X: x, Y: y})
		if x == b.X && y == b.Y {
			return cells
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// LineOfSight reports whether nothing blocks the line from one cell to
// another. The origin is ignored and a wall at the target does not block,
// so walls themselves can be seen.
func LineOfSight(gmap *gamemap.GameMap, from, to gamemap.Position) bool {
	for i, p := range Line(from, to) {
		if i == 0 {
			continue
		}
		if !gmap.InBounds(p.X, p.Y) {
			return false
		}
		if p != to && gmap.IsWall(p.X, p.Y) {
			return false
		}
	}
	return true
}

// ComputeVisible returns the cells seen from origin: every in-bounds cell
// within a Euclidean radius that has a clear line of sight, plus the origin.
func ComputeVisible(gmap *gamemap.GameMap, origin gamemap.Position, radius int) mapset.Set[gamemap.Position] {
	visible := mapset.New[gamemap.Position]()
	visible.Put(origin)

	r2 := radius * radius
	x0, x1 := max(0, origin.X-radius), min(gmap.Width-1, origin.X+radius)
	y0, y1 := max(0, origin.Y-radius), min(gmap.Height-1, origin.Y+radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := x-origin.X, y-origin.Y
			if dx*dx+dy*dy > r2 {
				continue
			}
			p := gamemap.Position{X: x, Y: y}
			if LineOfSight(gmap, origin, p) {
				visible.Put(p)
			}
		}
	}
	return visible
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
