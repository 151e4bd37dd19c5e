package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a terminal.
var ErrNoPTY = errors.New("session has no PTY")

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// AllowedTerms is the set of TERM values a client may ask for. TERM selects
// a terminfo entry on the server, so anything else is refused.
var AllowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// SessionTerm picks the terminal type for a session: the PTY request first,
// then the TERM environment variable, then DefaultTerm.
func SessionTerm(pty gossh.Pty, environ []string) string {
	if pty.Term != "" {
		return pty.Term
	}
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && term != "" {
			return term
		}
	}
	return DefaultTerm
}

// NewScreen creates and initializes a tcell screen on the session's PTY.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := SessionTerm(pty, s.Environ())
	if !AllowedTerms[term] {
		return nil, fmt.Errorf("terminal %q not supported", term)
	}

	tty := NewSessionTty(s, pty, winCh)
	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}
