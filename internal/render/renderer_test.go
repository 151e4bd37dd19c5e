package render

import (
	"strings"
	"testing"

	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, x0, y, n int) string {
	var b strings.Builder
	for x := x0; x < x0+n; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestDrawMapShowsPlayerAndPanel(t *testing.T) {
	screen := simScreen(t, 100, 30)
	g := game.New(game.DefaultConfig(), dice.NewSeeded(1))
	s := g.Snapshot(0)

	r := NewRenderer(screen)
	r.Draw(&s, ModeMap, 20)

	sx, sy, ok := r.camera.WorldToScreen(s.Player.Pos.X, s.Player.Pos.Y)
	require.True(t, ok)
	ch, _, _, _ := screen.GetContent(sx, sy)
	assert.Equal(t, 'S', ch)

	panelX := 100 - PanelWidth
	assert.Equal(t, "Dwarf Slayer", rowText(screen, panelX, 0, len("Dwarf Slayer")))
}

func TestDrawFirstPerson(t *testing.T) {
	screen := simScreen(t, 100, 30)
	g := game.New(game.DefaultConfig(), dice.NewSeeded(1))
	r := NewRenderer(screen)
	s := g.Snapshot(r.ViewColumns())
	require.Len(t, s.View, 100-PanelWidth-1)

	r.Draw(&s, ModeFirstPerson, 20)

	assert.Contains(t, rowText(screen, 0, 0, 30), "Facing:")
}

func TestPanelLines(t *testing.T) {
	g := game.New(game.DefaultConfig(), dice.NewSeeded(1))
	s := g.Snapshot(0)

	lines := PanelLines(&s, 30)
	assert.Equal(t, "Dwarf Slayer — Depth 1", lines[0])
	assert.Equal(t, "Potions: 0", lines[4])
	assert.Equal(t, "Weapon: Axe  Armor: Cloth", lines[5])
	assert.Equal(t, "• You shoulder your axe and enter.", lines[len(lines)-1])

	assert.Len(t, PanelLines(&s, 3), 3)
}
