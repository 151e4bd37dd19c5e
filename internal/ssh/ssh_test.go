package ssh

import (
	"context"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

// fakeContext satisfies gossh.Context; only Done is used.
type fakeContext struct {
	gossh.Context
	done <-chan struct{}
}

func (f fakeContext) Done() <-chan struct{} { return f.done }

type fakeSession struct {
	gossh.Session
	ctx gossh.Context
}

func (f fakeSession) Context() gossh.Context { return f.ctx }

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		pty     gossh.Pty
		environ []string
		want    string
	}{
		{"pty wins", gossh.Pty{Term: "screen"}, []string{"TERM=vt100"}, "screen"},
		{"environment", gossh.Pty{}, []string{"LANG=C", "TERM=vt100"}, "vt100"},
		{"empty TERM ignored", gossh.Pty{}, []string{"TERM="}, DefaultTerm},
		{"default", gossh.Pty{}, nil, DefaultTerm},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SessionTerm(tc.pty, tc.environ); got != tc.want {
				t.Errorf("SessionTerm = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		term    string
		allowed bool
	}{
		{"xterm-256color", true},
		{"tmux", true},
		{"linux", true},
		{"vt100", true},
		{"screen", true},
		{"rxvt-unicode-256color", true},
		{"evil-term", false},
		{"../../../etc/passwd", false},
		{"", false},
		{"xterm-kitty", false},
	}
	for _, tc := range cases {
		if got := AllowedTerms[tc.term]; got != tc.allowed {
			t.Errorf("AllowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
		}
	}
	if !AllowedTerms[DefaultTerm] {
		t.Error("the default terminal must be allowed")
	}
}

func TestSessionTtyResize(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sess := fakeSession{ctx: fakeContext{done: ctx.Done()}}
	winCh := make(chan gossh.Window)

	tty := NewSessionTty(sess, gossh.Pty{Window: gossh.Window{Width: 80, Height: 24}}, winCh)
	ws, err := tty.WindowSize()
	if err != nil || ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("WindowSize = %+v, %v; want 80x24", ws, err)
	}

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-resized:
	case <-time.After(5 * time.Second):
		t.Fatal("resize callback not called")
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("WindowSize after resize = %+v; want 120x40", ws)
	}
}
