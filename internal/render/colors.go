package render

import (
	"dwarf-slayer/assets"

	"github.com/gdamore/tcell/v2"
)

// Map colors for cells in sight and cells only remembered.
var (
	colorLitWall    = tcell.NewHexColor(0x94a3b8)
	colorDimWall    = tcell.NewHexColor(0x475569)
	colorLitFloor   = tcell.NewHexColor(0xcbd5e1)
	colorDimFloor   = tcell.NewHexColor(0x4b5563)
	colorPlayer     = tcell.NewHexColor(0xf59e0b)
	colorStairs     = tcell.NewHexColor(0x06b6d4)
	colorPotion     = tcell.NewHexColor(0xa855f7)
	colorRemembered = tcell.NewHexColor(0x6b7280)
)

// First-person palette. Walls crossed on an x grid line use the light tone.
var (
	colorSky       = tcell.NewHexColor(0x0c1a2b)
	colorGround    = tcell.NewHexColor(0x1f1a17)
	colorWallLight = tcell.NewHexColor(0x94a3b8)
	colorWallDark  = tcell.NewHexColor(0x64748b)
)

// speciesColors is indexed by assets.Species.
var speciesColors = [...]tcell.Color{
	assets.SpeciesGoblin: tcell.NewHexColor(0x22c55e),
	assets.SpeciesOrc:    tcell.NewHexColor(0x16a34a),
	assets.SpeciesWolf:   tcell.NewHexColor(0xe5e7eb),
	assets.SpeciesArcher: tcell.NewHexColor(0xef4444),
	assets.SpeciesTroll:  tcell.NewHexColor(0xdc2626),
}

// MonsterColor returns the map color for a species.
func MonsterColor(s assets.Species) tcell.Color {
	if int(s) < len(speciesColors) {
		return speciesColors[s]
	}
	return tcell.ColorRed
}

// Shade scales each channel of c by f.
func Shade(c tcell.Color, f float64) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(
		int32(float64(r)*f),
		int32(float64(g)*f),
		int32(float64(b)*f),
	)
}

// Fog blends c toward black by alpha/255.
func Fog(c tcell.Color, alpha int) tcell.Color {
	alpha = max(0, min(255, alpha))
	return Shade(c, 1-float64(alpha)/255)
}
