// Package web serves the game over websockets: each connection plays its own
// run, sending JSON commands and receiving JSON snapshots.
package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/game"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Server hands every websocket connection a fresh game.
type Server struct {
	cfg      game.Config
	newDice  func() *dice.Dice
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a Server. newDice supplies the randomness for each new
// connection; nil uses the toolkit's crypto roller.
func NewServer(cfg game.Config, newDice func() *dice.Dice, logger *slog.Logger) *Server {
	if newDice == nil {
		newDice = func() *dice.Dice { return dice.New(nil) }
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		cfg:     cfg,
		newDice: newDice,
		logger:  logger,
		// A nil CheckOrigin rejects cross-origin handshakes.
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
	}
}

// AllowAnyOrigin accepts handshakes from pages served by other hosts.
func (s *Server) AllowAnyOrigin() {
	s.upgrader.CheckOrigin = func(*http.Request) bool { return true }
}

// Handler returns the routes: /ws for play and /health for health checks.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("websocket server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "error", err)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("session", id, "remote", r.RemoteAddr)
	cfg := s.cfg
	cfg.Logger = logger
	client := newClient(id, game.New(cfg, s.newDice()), conn, logger)
	logger.Info("client connected")

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
