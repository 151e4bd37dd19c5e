package render

import (
	"fmt"
	"strings"

	"dwarf-slayer/assets"
	"dwarf-slayer/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// PanelLines returns the stats panel text for s, header first, followed by
// as much of the saga log as fits in height rows.
func PanelLines(s *game.Snapshot, height int) []string {
	p := s.Player
	lines := []string{
		fmt.Sprintf("%s — Depth %d", assets.Title, s.Depth),
		fmt.Sprintf("HP %d/%d   Turn %d", p.HP, p.MaxHP, s.Turn),
		fmt.Sprintf("Lvl %d   XP %d/%d", p.Level, p.XP, p.NextXP),
		fmt.Sprintf("AT %d  PA %d", p.Attack, p.Parry),
		fmt.Sprintf("Potions: %d", p.Potions),
		fmt.Sprintf("Weapon: %s  Armor: %s", p.Equipment.Weapon, p.Equipment.Armor),
		strings.Repeat("-", PanelWidth-2),
	}
	if s.Over() {
		lines = append(lines, "GAME OVER  [N] new run")
	}
	lines = append(lines, "Saga Log (newest first):")
	for _, msg := range s.Log {
		if len(lines) >= height {
			break
		}
		lines = append(lines, "• "+msg)
	}
	if len(lines) > height {
		lines = lines[:max(0, height)]
	}
	return lines
}

// DrawPanel renders the stats panel starting at column x0.
func (r *Renderer) DrawPanel(s *game.Snapshot, x0 int) {
	_, h := r.screen.Size()
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	log := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	for y, line := range PanelLines(s, h-1) {
		style := log
		switch {
		case y == 0:
			style = white.Bold(true)
		case !strings.HasPrefix(line, "• "):
			style = white
		}
		r.drawText(x0, y, PanelWidth, line, style)
	}
}

// drawText writes text at (x, y), cut to width display columns.
func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) {
	if width <= 0 {
		return
	}
	col := x
	for _, ch := range runewidth.Truncate(text, width, "…") {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
