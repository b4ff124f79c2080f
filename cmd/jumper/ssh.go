package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/froghouse/jumper/internal/config"
	"github.com/froghouse/jumper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHStore    string
	flagSSHConfig   string
	flagIdleTimeout int
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Start an SSH server for remote play",
	Long: `Start an SSH server that lets users connect and play over the network.

Each connection gets its own game; the SSH username is the leaderboard
identity and all sessions share one leaderboard store.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.jumper/host_key

Examples:
  jumper ssh                           # Listen on :23235 with auto-generated key
  jumper ssh --ssh :2222               # Listen on port 2222
  jumper ssh --host-key ./my_host_key  # Use specific host key
  jumper ssh --store ./leaderboard.db  # Use specific store

Users can connect with:
  ssh <name>@localhost -p 23235`,
	Run: runSSH,
}

func init() {
	sshCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	sshCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	sshCmd.Flags().StringVar(&flagSSHStore, "store", "~/.jumper/leaderboard.json", "Path to the leaderboard store")
	sshCmd.Flags().StringVar(&flagSSHConfig, "config", "", "Path to custom game config YAML")
	sshCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runSSH(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadJumper(flagSSHConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		StorePath:   flagSSHStore,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting jumper SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh <name>@localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
