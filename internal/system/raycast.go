package system

import (
	"math"

	"dwarf-slayer/internal/gamemap"
)

// Side tells which grid line a ray crossed when it hit a wall.
type Side uint8

const (
	SideX Side = iota // crossed a vertical grid line
	SideY             // crossed a horizontal grid line
)

// Column is the result of one projected ray.
type Column struct {
	Hit  bool    `json:"hit"`
	Dist float64 `json:"dist"` // perpendicular distance, clamped to [MinDist, MaxDist]
	Side Side    `json:"side"`
}

// ProjectorConfig fixes the camera for Project.
type ProjectorConfig struct {
	FOV      float64 // horizontal field of view in radians
	Columns  int
	MinDist  float64
	MaxDist  float64
	MaxSteps int
}

// nearZero replaces an exactly-zero ray component.
const nearZero = 1e-6

// Project casts one ray per column across the field of view from (x, y)
// facing angle, walking grid cells with a DDA. Leaving the grid or running
// out of steps yields a column with Hit false at MaxDist. Distances are
// measured perpendicular to the camera plane, so a flat wall reads flat.
func Project(gmap *gamemap.GameMap, x, y, angle float64, cfg ProjectorConfig) []Column {
	if cfg.Columns <= 0 {
		return nil
	}
	cols := make([]Column, cfg.Columns)
	for i := range cols {
		rel := 0.0
		if cfg.Columns > 1 {
			rel = float64(i)/float64(cfg.Columns-1) - 0.5
		}
		cols[i] = castRay(gmap, x, y, angle, rel*cfg.FOV, cfg)
	}
	return cols
}

func castRay(gmap *gamemap.GameMap, px, py, facing, offset float64, cfg ProjectorConfig) Column {
	ang := facing + offset
	rdx, rdy := nonZero(math.Cos(ang)), nonZero(math.Sin(ang))
	mapX, mapY := int(math.Floor(px)), int(math.Floor(py))
	deltaX, deltaY := math.Abs(1/rdx), math.Abs(1/rdy)

	stepX, sideDistX := 1, (float64(mapX)+1-px)*deltaX
	if rdx < 0 {
		stepX, sideDistX = -1, (px-float64(mapX))*deltaX
	}
	stepY, sideDistY := 1, (float64(mapY)+1-py)*deltaY
	if rdy < 0 {
		stepY, sideDistY = -1, (py-float64(mapY))*deltaY
	}

	for range cfg.MaxSteps {
		var side Side
		if sideDistX < sideDistY {
			sideDistX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideDistY += deltaY
			mapY += stepY
			side = SideY
		}
		if !gmap.InBounds(mapX, mapY) {
			break
		}
		if !gmap.IsWall(mapX, mapY) {
			continue
		}
		// Distance along the ray to the crossed grid line, then onto the view axis.
		var dist float64
		if side == SideX {
			dist = (float64(mapX) - px + float64(1-stepX)/2) / rdx
		} else {
			dist = (float64(mapY) - py + float64(1-stepY)/2) / rdy
		}
		dist *= math.Cos(offset)
		return Column{
			Hit:  true,
			Dist: math.Max(cfg.MinDist, math.Min(cfg.MaxDist, math.Abs(dist))),
			Side: side,
		}
	}
	return Column{Dist: cfg.MaxDist}
}

func nonZero(v float64) float64 {
	if v == 0 {
		return nearZero
	}
	return v
}
