package render

import (
	"fmt"

	"dwarf-slayer/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Slice is the wall segment drawn for one projected column. Rows Top up to
// but not including Bottom are wall.
type Slice struct {
	Hit    bool
	Top    int
	Bottom int
	Color  tcell.Color
}

// WallSlice maps a column to a wall segment in a view viewH rows tall.
// Height falls off as 1/dist; the color darkens with distance, then fog
// pulls it further toward black.
func WallSlice(c system.Column, viewH int, maxDist float64) Slice {
	if !c.Hit || viewH <= 0 {
		return Slice{}
	}
	height := min(viewH, int(float64(viewH)/(c.Dist+0.0001)))
	top := (viewH - height) / 2

	base := colorWallLight
	if c.Side == system.SideY {
		base = colorWallDark
	}
	color := Shade(base, max(0.25, 1-c.Dist/maxDist))
	color = Fog(color, int(160*c.Dist/maxDist))

	return Slice{Hit: true, Top: top, Bottom: top + height, Color: color}
}

// Compass is the heading line shown above the first-person view.
func Compass(facing int) string {
	return fmt.Sprintf("Q ⟲  E ⟳   Facing: %d°", facing)
}

// drawFirstPerson paints cols into the rectangle at (x0, y0) of size w×h,
// one screen column per projected column.
func (r *Renderer) drawFirstPerson(x0, y0, w, h int, cols []system.Column, maxDist float64) {
	sky := tcell.StyleDefault.Background(colorSky)
	ground := tcell.StyleDefault.Background(colorGround)
	for x := range w {
		var s Slice
		if x < len(cols) {
			s = WallSlice(cols[x], h, maxDist)
		}
		for y := range h {
			switch {
			case s.Hit && y >= s.Top && y < s.Bottom:
				r.screen.SetContent(x0+x, y0+y, '█', nil, tcell.StyleDefault.Foreground(s.Color).Background(s.Color))
			case y < h/2:
				r.screen.SetContent(x0+x, y0+y, ' ', nil, sky)
			default:
				r.screen.SetContent(x0+x, y0+y, ' ', nil, ground)
			}
		}
	}
}
