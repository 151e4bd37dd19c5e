package tui

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionWait
	ActionRest
	ActionQuaff
	ActionTurnLeft
	ActionTurnRight
	ActionToggleView
	ActionNewGame
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return ActionMoveN
	case 's', 'S':
		return ActionMoveS
	case 'd', 'D':
		return ActionMoveE
	case 'a', 'A':
		return ActionMoveW
	case '.':
		return ActionWait
	case 'r', 'R':
		return ActionRest
	case 'p', 'P':
		return ActionQuaff
	case 'q', 'Q':
		return ActionTurnLeft
	case 'e', 'E':
		return ActionTurnRight
	case 't', 'T':
		return ActionToggleView
	case 'n', 'N':
		return ActionNewGame
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}
