package system

import (
	"dwarf-slayer/assets"
	"dwarf-slayer/internal/entity"
	"dwarf-slayer/internal/factory"
	"dwarf-slayer/internal/gamemap"
)

// openMap creates a w×h map that is entirely floor.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := range h {
		for x := range w {
			gmap.Set(x, y, gamemap.TileFloor)
		}
	}
	return gmap
}

// testPlayer returns a player with fixed, easy-to-reason-about stats.
func testPlayer(x, y int) *entity.Player {
	var attrs entity.Attributes
	for i := range attrs {
		attrs[i] = 10
	}
	attrs[assets.AttrKK] = 14
	attrs[assets.AttrKO] = 14
	p := factory.NewPlayerWithAttributes(attrs, gamemap.Position{X: x, Y: y})
	p.Attack = 11
	p.Parry = 8
	p.MaxHP, p.HP = 30, 30
	return &p
}

func monsterAt(s assets.Species, x, y int) entity.Monster {
	return factory.NewMonster(s, gamemap.Position{X: x, Y: y})
}
