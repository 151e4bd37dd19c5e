package generate

import (
	"dwarf-slayer/assets"
	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/gamemap"
)

// SpawnConfig bounds how many things a floor receives and how hard the
// populator tries to place each one.
type SpawnConfig struct {
	Potions         int
	Monsters        int
	PotionAttempts  int
	MonsterAttempts int
}

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Species assets.Species
	Pos     gamemap.Position
}

// PopulateResult is returned by Populate with everything a new floor needs.
type PopulateResult struct {
	Start    gamemap.Position // player start: center of the first room
	Stairs   gamemap.Position // center of the last room
	Potions  []gamemap.Position
	Monsters []MonsterSpawn
}

type weighted struct {
	species assets.Species
	weight  int
}

// SpawnBag returns the weighted species list for depth. Each species appears
// as many times as its weight, so a uniform pick from the bag is a weighted
// pick by species.
func SpawnBag(depth int) []assets.Species {
	weights := []weighted{
		{assets.SpeciesGoblin, max(2, 8-min(depth, 6))},
		{assets.SpeciesWolf, max(1, depth)},
		{assets.SpeciesArcher, max(1, depth)},
		{assets.SpeciesOrc, max(1, 1+depth/2)},
	}
	if depth >= 2 {
		weights = append(weights, weighted{assets.SpeciesTroll, max(1, depth-1)})
	}
	return bagFromWeights(weights)
}

// bagFromWeights expands weights into a bag. An empty result falls back to a
// single goblin.
func bagFromWeights(weights []weighted) []assets.Species {
	var bag []assets.Species
	for _, w := range weights {
		for range max(0, w.weight) {
			bag = append(bag, w.species)
		}
	}
	if len(bag) == 0 {
		return []assets.Species{assets.SpeciesGoblin}
	}
	return bag
}

// Populate picks the start and stairs cells and scatters potions and
// monsters over random floor cells. Placement is bounded: an object that finds
// no free cell within its attempts is dropped, so a floor may receive fewer
// than requested.
//
// Neither kind is placed on the start or stairs cell, and no two monsters
// (or two potions) share a cell.
func Populate(gmap *gamemap.GameMap, depth int, cfg *SpawnConfig, d *dice.Dice) PopulateResult {
	var result PopulateResult
	if len(gmap.Rooms) == 0 {
		mid := gamemap.Position{X: gmap.Width / 2, Y: gmap.Height / 2}
		result.Start, result.Stairs = mid, mid
		return result
	}
	result.Start = gmap.Rooms[0].Center()
	result.Stairs = gmap.Rooms[len(gmap.Rooms)-1].Center()

	reserved := func(p gamemap.Position) bool {
		return p == result.Start || p == result.Stairs
	}

	potionAt := make(map[gamemap.Position]bool)
	for range cfg.Potions {
		p, ok := pickFreeCell(gmap, cfg.PotionAttempts, d, func(p gamemap.Position) bool {
			return !reserved(p) && !potionAt[p]
		})
		if !ok {
			continue
		}
		potionAt[p] = true
		result.Potions = append(result.Potions, p)
	}

	bag := SpawnBag(depth)
	monsterAt := make(map[gamemap.Position]bool)
	for range cfg.Monsters {
		p, ok := pickFreeCell(gmap, cfg.MonsterAttempts, d, func(p gamemap.Position) bool {
			return !reserved(p) && !monsterAt[p]
		})
		if !ok {
			continue
		}
		monsterAt[p] = true
		result.Monsters = append(result.Monsters, MonsterSpawn{
			Species: bag[d.Pick(len(bag))],
			Pos:     p,
		})
	}
	return result
}

// pickFreeCell draws interior cells until one is floor and accepted by free,
// giving up after maxAttempts draws.
func pickFreeCell(gmap *gamemap.GameMap, maxAttempts int, d *dice.Dice, free func(gamemap.Position) bool) (gamemap.Position, bool) {
	for range maxAttempts {
		p := gamemap.Position{
			X: d.Range(1, gmap.Width-2),
			Y: d.Range(1, gmap.Height-2),
		}
		if gmap.IsFloor(p.X, p.Y) && free(p) {
			return p, true
		}
	}
	return gamemap.Position{}, false
}
