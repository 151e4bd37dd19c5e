// Package ssh adapts gliderlabs/ssh sessions to tcell so each SSH client can
// play on its own screen.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty backed by a gliderlabs/ssh session.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	cb     func() // resize callback registered by tcell
	closed bool
}

// NewSessionTty wraps a session as a tcell Tty. pty holds the initial window
// size; winCh delivers later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read reads keyboard input from the client.
func (t *SessionTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered output to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the session channel once.
func (t *SessionTty) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	return t.session.Close()
}

// Start is a no-op: the channel is already open.
func (t *SessionTty) Start() error { return nil }

// Stop is a no-op: the server handler owns the channel.
func (t *SessionTty) Stop() error { return nil }

// Drain is a no-op: writes go straight to the channel.
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for resize events and starts forwarding window
// changes until the session ends.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		done := t.session.Context().Done()
		for {
			select {
			case <-done:
				return
			case win, ok := <-t.winCh:
				if !ok {
					return
				}
				t.resize(win)
			}
		}
	}()
}

func (t *SessionTty) resize(win gossh.Window) {
	t.mu.Lock()
	t.window = win
	cb := t.cb
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}
