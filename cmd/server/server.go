package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode"

	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/game"
	internalssh "dwarf-slayer/internal/ssh"
	"dwarf-slayer/internal/tui"
	"dwarf-slayer/internal/web"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func runServer(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	signer, err := loadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return err
	}

	cfg := game.DefaultConfig()
	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; add gossh.PublicKeyAuth or
		// gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("ssh server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return srv.Close()
	})
	if webAddr != "" {
		group.Go(func() error {
			ws := web.NewServer(cfg, nil, logger)
			if anyOrigin {
				ws.AllowAnyOrigin()
			}
			if err := ws.ListenAndServe(ctx, webAddr); err != nil {
				return fmt.Errorf("web server: %w", err)
			}
			return nil
		})
	}
	return group.Wait()
}

// handleSession runs one game for one SSH client. It blocks for the
// duration of the connection so the session stays open.
func handleSession(s gossh.Session, cfg game.Config, logger *slog.Logger) {
	log := logger.With(
		"session", uuid.NewString(),
		"user", sanitizeName(s.User()),
		"remote", s.RemoteAddr().String(),
	)

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		log.Warn("terminal setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	log.Info("session started")
	cfg.Logger = log
	tui.New(screen, game.New(cfg, dice.New(nil)), log).Run(s.Context())
	log.Info("session ended")
}

// maxNameLen bounds user names written to the log, in runes.
const maxNameLen = 16

// sanitizeName strips control characters from a client-supplied name and
// caps its length.
func sanitizeName(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range name {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if n == maxNameLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// newLogger builds the text logger on stderr at the named level.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
