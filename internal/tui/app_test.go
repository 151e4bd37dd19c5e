package tui

import (
	"context"
	"testing"
	"time"

	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/game"
	"dwarf-slayer/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(100, 30)
	require.NoError(t, ss.Init())
	return ss
}

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	ss := newSimScreen(t)
	g := game.New(game.DefaultConfig(), dice.NewSeeded(11))
	return New(ss, g, nil), ss
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyUp, 0, ActionMoveN},
		{tcell.KeyLeft, 0, ActionMoveW},
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyRune, 'w', ActionMoveN},
		{tcell.KeyRune, 'S', ActionMoveS},
		{tcell.KeyRune, 'd', ActionMoveE},
		{tcell.KeyRune, 'a', ActionMoveW},
		{tcell.KeyRune, '.', ActionWait},
		{tcell.KeyRune, 'r', ActionRest},
		{tcell.KeyRune, 'p', ActionQuaff},
		{tcell.KeyRune, 'q', ActionTurnLeft},
		{tcell.KeyRune, 'E', ActionTurnRight},
		{tcell.KeyRune, 't', ActionToggleView},
		{tcell.KeyRune, 'n', ActionNewGame},
		{tcell.KeyRune, 'x', ActionNone},
	}
	for _, tc := range cases {
		ev := tcell.NewEventKey(tc.key, tc.r, tcell.ModNone)
		if got := keyToAction(ev); got != tc.want {
			t.Errorf("keyToAction(%v, %q) = %v, want %v", tc.key, tc.r, got, tc.want)
		}
	}
}

func TestActionToDelta(t *testing.T) {
	dx, dy := actionToDelta(ActionMoveN)
	assert.Equal(t, [2]int{0, -1}, [2]int{dx, dy})
	dx, dy = actionToDelta(ActionWait)
	assert.Equal(t, [2]int{0, 0}, [2]int{dx, dy})
}

func TestHandleTurnCosts(t *testing.T) {
	app, _ := newTestApp(t)
	g := app.game
	turn := g.Turn()

	assert.False(t, app.Handle(ActionTurnRight))
	assert.Equal(t, turn, g.Turn(), "turning is free")
	assert.Equal(t, 15, g.Snapshot(0).Facing)

	app.Handle(ActionWait)
	assert.Equal(t, turn+1, g.Turn())
	app.Handle(ActionRest)
	assert.Equal(t, turn+2, g.Turn())
	app.Handle(ActionQuaff)
	assert.Equal(t, turn+3, g.Turn())
}

func TestHandleToggleView(t *testing.T) {
	app, _ := newTestApp(t)
	app.Handle(ActionToggleView)
	assert.Equal(t, render.ModeFirstPerson, app.mode)
	app.draw()
	app.Handle(ActionToggleView)
	assert.Equal(t, render.ModeMap, app.mode)
}

func TestHandleNewGameAndQuit(t *testing.T) {
	app, _ := newTestApp(t)
	app.Handle(ActionWait)
	app.Handle(ActionNewGame)
	assert.Equal(t, 1, app.game.Turn())
	assert.True(t, app.Handle(ActionQuit))
}

func TestRunQuitsOnEscape(t *testing.T) {
	app, ss := newTestApp(t)
	ss.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Esc")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPollEventsStopsOnCancelWithNoReader(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		pollEvents(ctx, ss, make(chan tcell.Event))
		close(done)
	}()
	ss.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents blocked on a send nobody reads")
	}
}

func TestPollEventsClosesWhenScreenEnds(t *testing.T) {
	ss := newSimScreen(t)
	ch := make(chan tcell.Event, 16)
	done := make(chan struct{})
	go func() {
		pollEvents(context.Background(), ss, ch)
		close(done)
	}()
	ss.Fini()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents did not return after Fini")
	}
	for range ch {
	}
}
