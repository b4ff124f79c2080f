// jumper is an endless vertical platformer for the terminal, with a shared
// online leaderboard.
//
// Usage:
//
//	jumper play              - Play in the local terminal
//	jumper serve             - Start the leaderboard HTTP API
//	jumper ssh               - Start an SSH server for remote play
//	jumper scores [user]     - Show the global top 20, or a user's stats
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--api <url>      - Leaderboard API base URL (default: http://localhost:3001)
//	--local <path>   - Local state path (default: ~/.jumper/local.json)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS   int
	flagSeed  int64
	flagAPI   string
	flagLocal string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - an endless platformer in your terminal",
	Long: `Jumper is an endless vertical platformer: bounce off platforms, climb as
high as you can, and post your score to a shared leaderboard.

Available commands:
  play     - Play in the local terminal
  serve    - Start the leaderboard HTTP API
  ssh      - Start an SSH server for remote play
  scores   - View the global top 20 or a user's stats

Examples:
  jumper play
  jumper serve --addr :3001
  jumper ssh --ssh :2222
  jumper scores
  jumper scores alice`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAPI, "api", "http://localhost:3001", "Leaderboard API base URL")
	rootCmd.PersistentFlags().StringVar(&flagLocal, "local", "", "Local state path (default: ~/.jumper/local.json)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(scoresCmd)
}
