package render

import (
	"dwarf-slayer/assets"
	"dwarf-slayer/internal/game"
	"dwarf-slayer/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// PanelWidth is the width of the stats panel on the right.
const PanelWidth = 30

// Mode selects what the left pane shows.
type Mode uint8

const (
	ModeMap Mode = iota
	ModeFirstPerson
)

// Renderer draws game snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0)}
	r.layout()
	return r
}

// layout sizes the left pane: everything left of the panel, minus the
// controls line at the bottom.
func (r *Renderer) layout() (paneW, paneH int) {
	w, h := r.screen.Size()
	paneW = max(0, w-PanelWidth-1)
	paneH = max(0, h-1)
	r.camera.Resize(paneW, paneH)
	return paneW, paneH
}

// ViewColumns is the number of first-person columns that fill the left pane.
func (r *Renderer) ViewColumns() int {
	w, _ := r.layout()
	return max(1, w)
}

// Draw renders s: the map or first-person view, the stats panel and the
// controls line.
func (r *Renderer) Draw(s *game.Snapshot, mode Mode, maxDist float64) {
	r.screen.Clear()
	paneW, paneH := r.layout()

	if mode == ModeFirstPerson && paneH > 1 {
		r.drawText(0, 0, paneW, Compass(s.Facing), tcell.StyleDefault.Foreground(tcell.ColorWhite))
		r.drawFirstPerson(0, 1, paneW, paneH-1, s.View, maxDist)
	} else {
		r.camera.Follow(s.Player.Pos.X, s.Player.Pos.Y, s.Map.Width, s.Map.Height)
		r.drawMap(s)
	}
	r.DrawPanel(s, paneW+1)

	_, h := r.screen.Size()
	r.drawText(0, h-1, paneW+1+PanelWidth, controlsLine, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.Show()
}

const controlsLine = "[Arrows/WASD] Move  [.] Wait  [R] Rest  [P] Potion  [Q/E] Turn  [T] View  [N] New  [Esc] Quit"

// drawMap renders explored cells dim and visible cells bright, then the
// stairs, items, monsters in sight and the player on top.
func (r *Renderer) drawMap(s *game.Snapshot) {
	for y := range s.Map.Height {
		for x := range s.Map.Width {
			p := gamemap.Position{X: x, Y: y}
			if !s.IsExplored(p) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, style := r.cell(s, p)
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// cell picks the glyph and style for an explored cell.
func (r *Renderer) cell(s *game.Snapshot, p gamemap.Position) (rune, tcell.Style) {
	lit := s.IsVisible(p)
	style := tcell.StyleDefault
	if lit {
		style = style.Bold(true)
	}

	if p == s.Player.Pos {
		return assets.GlyphPlayer, style.Foreground(colorPlayer)
	}
	if m, ok := s.MonsterAt(p); ok {
		return m.Glyph, style.Foreground(MonsterColor(m.Species))
	}
	if s.ItemAt(p) {
		return assets.GlyphPotion, style.Foreground(dimmed(colorPotion, lit))
	}
	if s.StairsKnown && p == s.Stairs {
		return assets.GlyphStairs, style.Foreground(dimmed(colorStairs, lit))
	}

	tile := s.Map.At(p.X, p.Y)
	if tile == gamemap.TileWall {
		if lit {
			return tile.Glyph(), style.Foreground(colorLitWall)
		}
		return tile.Glyph(), style.Foreground(colorDimWall)
	}
	if lit {
		return tile.Glyph(), style.Foreground(colorLitFloor)
	}
	return tile.Glyph(), style.Foreground(colorDimFloor)
}

func dimmed(c tcell.Color, lit bool) tcell.Color {
	if lit {
		return c
	}
	return colorRemembered
}

// putGlyph draws a single glyph at screen position (x, y), padding the
// second column of wide runes.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
