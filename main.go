// dwarf-slayer is a turn-based dungeon crawl played in the terminal.
//
//	go run . [--seed 42] [--log-file slayer.log]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/game"
	"dwarf-slayer/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var (
	seed    int64
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "dwarf-slayer",
	Short: "Descend, slay, and see how deep one dwarf can go",
	RunE:  run,
}

func init() {
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible dungeon (0 uses a random seed)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write debug logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	d := dice.New(nil)
	if seed != 0 {
		d = dice.NewSeeded(seed)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := game.DefaultConfig()
	cfg.Logger = logger
	logger.Info("starting", "seed", seed)
	tui.New(screen, game.New(cfg, d), logger).Run(ctx)
	return nil
}
