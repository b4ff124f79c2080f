package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/froghouse/jumper/internal/client"
	"github.com/froghouse/jumper/internal/config"
	"github.com/froghouse/jumper/internal/core"
	"github.com/froghouse/jumper/internal/game"
	"github.com/froghouse/jumper/internal/leaderboard"
	"github.com/froghouse/jumper/internal/platform/tui"
)

var flagPlayConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play jumper in your terminal",
	Long: `Start a local play session.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space      - Start
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Scores go to the leaderboard API when it is reachable; otherwise they are
kept locally and shown from the local mirror.

Examples:
  jumper play
  jumper play --seed 42
  jumper play --config ./my-jumper.yaml
  jumper play --api http://example.com:3001`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadJumper(flagPlayConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	local, err := client.OpenLocal(flagLocal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening local state: %v\n", err)
		os.Exit(1)
	}
	cli := client.New(flagAPI, local)

	state, err := local.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading local state: %v\n", err)
		os.Exit(1)
	}

	mc := tui.ModelConfig{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Username:     state.Username,
		Character:    leaderboard.Character(state.Character),
		SaveIdentity: local.SetIdentity,
	}

	if err := tui.Run(game.New(gameCfg), cli, mc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
