package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/core"
	"github.com/vovakirdan/twenty48/internal/registry"
	"github.com/vovakirdan/twenty48/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig configures the multi-session SSH server.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.twenty48/host_key. Wish generates the key
	// on first start.
	HostKeyPath string

	DBPath      string
	IdleTimeout time.Duration

	// GameID is the registered game every session plays.
	GameID string

	// Game carries gameplay and key settings shared by all sessions.
	Game config.Config
}

// DefaultSSHServerConfig returns the settings used by `twenty48 serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	cfg := config.Default()
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      cfg.Storage.DBPath,
		IdleTimeout: 30 * time.Minute,
		GameID:      "2048",
		Game:        cfg,
	}
}

// SSHServer serves one independent round per SSH session. All sessions
// share the same score store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer validates cfg, opens the score store and prepares the Wish
// server. Nothing listens until Serve is called.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("%w %q", registry.ErrUnknownGame, cfg.GameID)
	}

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "twenty48-ssh",
	})

	s := &SSHServer{config: cfg, logger: logger}

	// Sessions still play without a store; nothing is recorded
	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("could not open scores database", "error", err)
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.logSession,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

// hostKeyPath resolves the host key location and makes sure its directory
// exists.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".twenty48", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the Bubble Tea model for one connection. Sessions
// without a PTY are refused.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	user := sess.User()
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", user)
		return nil, nil
	}

	game, err := registry.Create(s.config.GameID)
	if err != nil {
		s.logger.Error("could not create game", "error", err)
		return nil, nil
	}

	gameplay := s.config.Game.Gameplay
	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: gameplay.TickRate,
		Seed:     time.Now().UnixNano(),
		WinTile:  gameplay.WinTile,
	}

	m := NewModel(game, rt, Options{
		Store:  s.store,
		Config: s.config.Game,
		Logger: s.logger.With("user", user),
		Player: user,
	})
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

// logSession tags each connection with a random session ID and logs its
// lifetime.
func (s *SSHServer) logSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		l := s.logger.With("session", uuid.New(), "user", sess.User())

		l.Info("session started", "remote", sess.RemoteAddr().String())
		next(sess)
		l.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// Serve listens until ctx is done, then shuts the server down.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections, waits for open sessions up to a
// timeout and closes the score store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("could not close scores database", "error", err)
	}
	s.store = nil
}
