package generate

import (
	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/gamemap"
)

// Config drives procedural generation for one floor.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int // placement attempts, not a guaranteed count
	MinRoomSize         int
	MaxRoomSize         int
	Dice                *dice.Dice
}

// Generate carves rooms and corridors into a wall-filled grid. Each attempt
// draws a room size and position; rooms that intersect an earlier room are
// skipped. Every accepted room after the first is joined to the previous one
// by an L-shaped corridor between their centers.
//
// Rooms never touch the outer border, so the frame of the map stays wall.
// Accepted rooms are recorded in gmap.Rooms in placement order.
func Generate(cfg *Config) *gamemap.GameMap {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	for range cfg.MaxRooms {
		w := cfg.Dice.Range(cfg.MinRoomSize, cfg.MaxRoomSize)
		h := cfg.Dice.Range(cfg.MinRoomSize, cfg.MaxRoomSize)
		maxX, maxY := cfg.MapWidth-w-2, cfg.MapHeight-h-2
		if maxX < 1 || maxY < 1 {
			continue // room cannot fit inside the border
		}
		x := cfg.Dice.Range(1, maxX)
		y := cfg.Dice.Range(1, maxY)
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, gmap.Rooms) {
			continue
		}
		carveRoom(gmap, room)
		if n := len(gmap.Rooms); n > 0 {
			carveCorridor(gmap, gmap.Rooms[n-1].Center(), room.Center(), cfg.Dice)
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}
	return gmap
}

func overlapsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

func carveRoom(gmap *gamemap.GameMap, r gamemap.Rect) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
}
