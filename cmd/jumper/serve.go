package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/froghouse/jumper/internal/leaderboard"
	"github.com/froghouse/jumper/internal/server"
	"github.com/froghouse/jumper/internal/storage"
)

var (
	flagServeAddr  string
	flagServeStore string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the leaderboard HTTP API",
	Long: `Start the leaderboard API server.

Endpoints (all under /api):
  GET  /api/leaderboard                  - Top 20 scores
  POST /api/leaderboard                  - Submit a score
  GET  /api/leaderboard/user/<username>  - A user's personal best and game count
  GET  /api/health                       - Health check

The store path picks the backend by extension: .db or .sqlite files use
SQLite, anything else is a JSON file.

Examples:
  jumper serve
  jumper serve --addr :8080
  jumper serve --store ./leaderboard.json
  jumper serve --store ~/.jumper/leaderboard.db`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":3001", "HTTP listen address (host:port)")
	serveCmd.Flags().StringVar(&flagServeStore, "store", "~/.jumper/leaderboard.json", "Path to the leaderboard store")
}

func runServe(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagServeStore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	cfg := server.DefaultConfig()
	cfg.Addr = flagServeAddr

	fmt.Printf("Starting leaderboard API on %s\n", cfg.Addr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.New(cfg, leaderboard.NewService(store)).ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
