// dwarf-slayer-server serves Dwarf Slayer over SSH, and optionally over
// websockets. Every connection plays its own run. Build:
//
//	go build -o dwarf-slayer-server ./cmd/server
//
// Usage:
//
//	./dwarf-slayer-server [--port 2222] [--key server_host_key] [--web-addr :8080] [--web-any-origin] [--log-level info]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	port      int
	keyFile   string
	webAddr   string
	logLevel  string
	anyOrigin bool
)

var rootCmd = &cobra.Command{
	Use:   "dwarf-slayer-server",
	Short: "Serve Dwarf Slayer over SSH and websockets",
	Long:  `Each SSH session or websocket connection gets its own dwarf and its own dungeon.`,
	RunE:  runServer,
}

func init() {
	rootCmd.Flags().IntVar(&port, "port", 2222, "SSH server port")
	rootCmd.Flags().StringVar(&keyFile, "key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	rootCmd.Flags().StringVar(&webAddr, "web-addr", "", "Address for the websocket front end, e.g. :8080 (disabled when empty)")
	rootCmd.Flags().BoolVar(&anyOrigin, "web-any-origin", false, "Accept websocket handshakes from pages on other origins")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
