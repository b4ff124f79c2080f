package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/froghouse/jumper/internal/config"
	"github.com/froghouse/jumper/internal/core"
	"github.com/froghouse/jumper/internal/game"
	"github.com/froghouse/jumper/internal/leaderboard"
	"github.com/froghouse/jumper/internal/storage"
)

// SSHServerConfig holds configuration for the SSH game server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.jumper/host_key.
	HostKeyPath string

	// StorePath is where the shared leaderboard lives. SSH sessions write
	// to it directly, no HTTP hop.
	StorePath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		StorePath:   "~/.jumper/leaderboard.json",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the jumper over SSH via Wish. Every connection gets its
// own game; all sessions share one leaderboard service.
type SSHServer struct {
	config  SSHServerConfig
	gameCfg config.JumperConfig
	server  *ssh.Server
	store   leaderboard.Store
	svc     *leaderboard.Service
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, gameCfg config.JumperConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper-ssh",
	})

	store, err := storage.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open leaderboard store: %w", err)
	}

	srv := &SSHServer{
		config:  cfg,
		gameCfg: gameCfg,
		store:   store,
		svc:     leaderboard.NewService(store),
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			store.Close()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".jumper", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		store.Close()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session. The SSH
// user is the leaderboard identity; there is no name prompt over SSH.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	runtime := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewModel(
		game.New(s.gameCfg),
		&serviceBoard{svc: s.svc, username: sshSession.User()},
		ModelConfig{
			Runtime:  runtime,
			Username: sshSession.User(),
		},
	)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing leaderboard store", "error", err)
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// serviceBoard adapts the leaderboard service to the TUI's Leaderboard
// interface for SSH sessions, which bypass the HTTP client.
type serviceBoard struct {
	svc      *leaderboard.Service
	username string
}

func (b *serviceBoard) RecordScore(_ context.Context, score int) error {
	s := float64(score)
	_, err := b.svc.Submit(leaderboard.SubmitRequest{
		Score:    &s,
		Username: b.username,
	})
	return err
}

func (b *serviceBoard) Top(_ context.Context) ([]leaderboard.Entry, error) {
	return b.svc.Top()
}
