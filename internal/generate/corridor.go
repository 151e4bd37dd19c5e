package generate

import (
	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/gamemap"
)

// carveCorridor digs an L-shaped tunnel from a to b. A coin flip decides
// whether the horizontal or the vertical leg comes first.
func carveCorridor(gmap *gamemap.GameMap, a, b gamemap.Position, d *dice.Dice) {
	if d.Coin() {
		carveH(gmap, a.X, b.X, a.Y)
		carveV(gmap, a.Y, b.Y, b.X)
	} else {
		carveV(gmap, a.Y, b.Y, a.X)
		carveH(gmap, a.X, b.X, b.Y)
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		gmap.Set(x, y, gamemap.TileFloor)
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		gmap.Set(x, y, gamemap.TileFloor)
	}
}
