package web

import (
	"errors"
	"fmt"

	"dwarf-slayer/internal/game"
)

// Command is one message from the browser.
type Command struct {
	Action  string  `json:"action"`
	DX      int     `json:"dx,omitempty"`
	DY      int     `json:"dy,omitempty"`
	Deg     float64 `json:"deg,omitempty"`
	Columns int     `json:"columns,omitempty"` // first-person columns wanted in the reply
}

// Response answers every command with the resulting state.
type Response struct {
	Session string         `json:"session"`
	Error   string         `json:"error,omitempty"`
	State   *game.Snapshot `json:"state,omitempty"`
}

// maxColumns caps the first-person view a client can ask for.
const maxColumns = 480

// ErrUnknownAction is returned by Apply for actions it does not know.
var ErrUnknownAction = errors.New("unknown action")

// Apply runs cmd against g.
func Apply(g *game.Game, cmd Command) error {
	switch cmd.Action {
	case "look":
	case "move":
		g.MoveOrAttack(cmd.DX, cmd.DY)
	case "rotate":
		g.Rotate(cmd.Deg)
	case "rest":
		g.Rest()
	case "quaff":
		g.QuaffPotion()
	case "wait":
		g.Wait()
	case "new":
		g.NewGame()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	return nil
}

func viewColumns(n int) int {
	return max(0, min(maxColumns, n))
}
