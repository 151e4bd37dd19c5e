// Package tui drives a game.Game from a tcell screen: one screen, one run,
// one synchronous loop of draw, wait for a key, act.
package tui

import (
	"context"
	"log/slog"

	"dwarf-slayer/internal/game"
	"dwarf-slayer/internal/render"

	"github.com/gdamore/tcell/v2"
)

// App is one terminal player.
type App struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *render.Renderer
	mode     render.Mode
	logger   *slog.Logger
}

// New binds g to an initialized screen.
func New(screen tcell.Screen, g *game.Game, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		screen:   screen,
		game:     g,
		renderer: render.NewRenderer(screen),
		logger:   logger,
	}
}

// Run is the main loop. It returns when the player quits, the screen is
// closed or ctx is cancelled, and finalizes the screen on the way out.
func (a *App) Run(ctx context.Context) {
	defer a.screen.Fini()

	// PollEvent blocks, so events are read on their own goroutine.
	eventCh := make(chan tcell.Event, 32)
	go pollEvents(ctx, a.screen, eventCh)

	for {
		a.draw()
		select {
		case <-ctx.Done():
			a.logger.Debug("session cancelled")
			return
		case ev, ok := <-eventCh:
			if !ok {
				return // screen closed / disconnected
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				if a.Handle(keyToAction(ev)) {
					a.logger.Info("player quit", "depth", a.game.Depth(), "turn", a.game.Turn())
					return
				}
			}
		}
	}
}

// pollEvents forwards screen events to ch until the screen is finalized or
// ctx is cancelled. ch is closed only when the screen goes away.
func pollEvents(ctx context.Context, screen tcell.Screen, ch chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(ch)
			return
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Handle applies one action and reports whether the player asked to quit.
// Once the run is over only new game and quit do anything.
func (a *App) Handle(action Action) (quit bool) {
	switch action {
	case ActionQuit:
		return true
	case ActionNewGame:
		a.game.NewGame()
		return false
	}
	if a.game.Over() {
		return false
	}

	switch action {
	case ActionMoveN, ActionMoveS, ActionMoveE, ActionMoveW:
		a.game.MoveOrAttack(actionToDelta(action))
	case ActionWait:
		a.game.Wait()
	case ActionRest:
		a.game.Rest()
	case ActionQuaff:
		a.game.QuaffPotion()
	case ActionTurnLeft:
		a.game.Rotate(-a.game.Config().RotateStep)
	case ActionTurnRight:
		a.game.Rotate(a.game.Config().RotateStep)
	case ActionToggleView:
		if a.mode == render.ModeMap {
			a.mode = render.ModeFirstPerson
		} else {
			a.mode = render.ModeMap
		}
	}
	return false
}

func (a *App) draw() {
	if a.game.Over() {
		a.renderer.DrawEndScreen(a.game.Stats())
		return
	}
	cols := 0
	if a.mode == render.ModeFirstPerson {
		cols = a.renderer.ViewColumns()
	}
	s := a.game.Snapshot(cols)
	a.renderer.Draw(&s, a.mode, a.game.Config().View.MaxDist)
}
