package game

import "dwarf-slayer/internal/generate"

// floorConfig builds the generator settings for a new floor. Every depth uses
// the same map size; depth only changes what spawns.
func (g *Game) floorConfig() *generate.Config {
	return &generate.Config{
		MapWidth:    g.cfg.MapWidth,
		MapHeight:   g.cfg.MapHeight,
		MaxRooms:    g.cfg.MaxRooms,
		MinRoomSize: g.cfg.MinRoomSize,
		MaxRoomSize: g.cfg.MaxRoomSize,
		Dice:        g.dice,
	}
}
