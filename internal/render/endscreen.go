package render

import (
	"fmt"

	"dwarf-slayer/internal/game"

	"github.com/gdamore/tcell/v2"
)

// DrawEndScreen renders the run summary shown after death.
func (r *Renderer) DrawEndScreen(stats game.RunLog) {
	r.screen.Clear()
	sw, _ := r.screen.Size()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	sep := func(y int) {
		for x := range sw {
			r.screen.SetContent(x, y, '─', nil, gray)
		}
	}
	// label prints a key at column 2 and its value at column 22.
	label := func(y int, l, v string) {
		r.drawText(2, y, 20, l, dim)
		r.drawText(22, y, sw-22, v, white)
	}

	y := 1
	sep(y)
	y += 2

	r.drawText(2, y, sw-2, "THE DEEP CLAIMS YOU", gold)
	badge := "[DEFEAT]"
	r.drawText(sw-len(badge)-1, y, len(badge), badge, red)
	y += 2

	label(y, "Deepest Depth:", fmt.Sprintf("%d", stats.DeepestDepth))
	y++
	label(y, "Turns Survived:", fmt.Sprintf("%d", stats.TurnsPlayed))
	y++
	if stats.CauseOfDeath != "" {
		label(y, "Slain By:", stats.CauseOfDeath)
		y++
	}
	y++

	label(y, "Enemies Slain:", fmt.Sprintf("%d", stats.TotalKills()))
	y++
	for _, k := range stats.Kills() {
		r.drawText(4, y, 18, k.Name, gray)
		r.drawText(22, y, 10, fmt.Sprintf("×%d", k.Count), gray)
		y++
	}
	y++

	label(y, "Damage Dealt:", fmt.Sprintf("%d", stats.DamageDealt))
	y++
	label(y, "Damage Taken:", fmt.Sprintf("%d", stats.DamageTaken))
	y++
	label(y, "Potions:", fmt.Sprintf("%d found, %d quaffed", stats.PotionsFound, stats.PotionsQuaffed))
	y += 2

	sep(y)
	y += 2
	r.drawText(2, y, sw-2, "[N] New run    [Esc] Quit", white)
	r.screen.Show()
}
