package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-kokaton/internal/assets"
	"github.com/vovakirdan/tui-kokaton/internal/config"
	"github.com/vovakirdan/tui-kokaton/internal/core"
	"github.com/vovakirdan/tui-kokaton/internal/games/kokaton"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.kokaton/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// ConfigPath is an optional game config file. When set it is watched
	// and valid changes apply to sessions started afterwards.
	ConfigPath string

	// SpritesPath is an optional sprite catalog file.
	SpritesPath string

	// TickRate is the terminal tick rate of every session.
	TickRate int

	// HoldTicks is how long a key press counts as held.
	HoldTicks int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		HoldTicks:   DefaultHoldTicks,
	}
}

// SSHServer serves one independent game per SSH session.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	logger  *log.Logger
	sprites *assets.Catalog
	watcher *config.Watcher

	mu      sync.RWMutex
	gameCfg config.KokatonConfig // Snapshot used by new sessions
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger gets a default one on stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "kokaton-ssh",
		})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultSSHServerConfig().TickRate
	}

	gameCfg, source, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("cannot load game config: %w", err)
	}
	logger.Info("game config loaded", "source", source)

	sprites, spriteSource, err := assets.Load(cfg.SpritesPath)
	if err != nil {
		return nil, fmt.Errorf("cannot load sprites: %w", err)
	}
	if err := sprites.Validate(gameCfg.Player.NormalPose, gameCfg.Player.FiringPose, gameCfg.Player.HitPose); err != nil {
		return nil, fmt.Errorf("cannot load sprites: %w", err)
	}
	logger.Info("sprites loaded", "source", spriteSource)

	srv := &SSHServer{
		config:  cfg,
		logger:  logger,
		sprites: sprites,
		gameCfg: gameCfg,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".kokaton", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server

	if cfg.ConfigPath != "" {
		watcher, watchErr := config.NewWatcher(cfg.ConfigPath)
		if watchErr != nil {
			return nil, fmt.Errorf("cannot watch game config: %w", watchErr)
		}
		srv.watcher = watcher
		go srv.watchConfig()
	}

	return srv, nil
}

// watchConfig swaps in every valid config the watcher produces.
func (s *SSHServer) watchConfig() {
	updates, errs := s.watcher.Updates, s.watcher.Errors
	for updates != nil || errs != nil {
		select {
		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			if err := s.sprites.Validate(cfg.Player.NormalPose, cfg.Player.FiringPose, cfg.Player.HitPose); err != nil {
				s.logger.Warn("config reload rejected", "path", s.watcher.Path(), "error", err)
				continue
			}
			s.setGameConfig(cfg)
			s.logger.Info("config reloaded", "path", s.watcher.Path())
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			s.logger.Warn("config reload rejected", "path", s.watcher.Path(), "error", err)
		}
	}
}

// GameConfig returns the config snapshot used for new sessions.
func (s *SSHServer) GameConfig() config.KokatonConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameCfg
}

func (s *SSHServer) setGameConfig(cfg config.KokatonConfig) {
	s.mu.Lock()
	s.gameCfg = cfg
	s.mu.Unlock()
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	gameCfg := s.GameConfig()
	game, err := kokaton.New(gameCfg, s.sprites)
	if err != nil {
		s.logger.Error("cannot create game", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	user := sshSession.User()
	opts := NewOptions(gameCfg.Loop, s.config.HoldTicks)
	opts.OnEnd = func(state core.GameState) {
		s.logger.Info("game ended",
			"user", user,
			"score", state.Score,
			"frames", state.Frame,
			"reason", EndReason(state),
		)
	}

	s.logger.Debug("game started", "user", user, "seed", cfg.Seed, "hazards", gameCfg.Hazards.Count)
	return NewModel(game, cfg, opts), []tea.ProgramOption{
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

	// Setup signal handling for graceful shutdown
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

	if s.watcher != nil {
		//nolint:errcheck // Best-effort close, the server is going away
		s.watcher.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// EndReason names why a game stopped.
func EndReason(state core.GameState) string {
	switch {
	case state.Quit:
		return "quit"
	case state.GameOver:
		return "hit"
	default:
		return "unknown"
	}
}
