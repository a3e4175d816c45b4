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

	"github.com/vovakirdan/tui-mosaic/internal/config"
	"github.com/vovakirdan/tui-mosaic/internal/core"
	"github.com/vovakirdan/tui-mosaic/internal/puzzles"
	"github.com/vovakirdan/tui-mosaic/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.mosaic/host_key.
	HostKeyPath string

	// DBPath is the path to the progress database.
	DBPath string

	// CalendarPath overrides the puzzle calendar file. Empty uses the
	// regular search order.
	CalendarPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.mosaic/progress.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the puzzle calendar.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	calendar *puzzles.Calendar
	engCfg   config.EngineConfig
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mosaic-ssh",
	})

	calendar, err := puzzles.Load(cfg.CalendarPath)
	if err != nil {
		return nil, fmt.Errorf("cannot load puzzle calendar: %w", err)
	}

	engCfg, err := config.LoadEngine("")
	if err != nil {
		logger.Warn("could not load engine config, using defaults", "error", err)
		engCfg = config.DefaultEngineConfig()
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open progress database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		calendar: calendar,
		engCfg:   engCfg,
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".mosaic", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

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
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.calendar, s.store, s.engCfg, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
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

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the screen currently shown in an SSH session.
type sessionScreen int

const (
	screenCalendar sessionScreen = iota
	screenPuzzle
	screenProgress
)

// SessionModel manages the full session flow: calendar -> puzzle -> calendar,
// with the progress table as a side screen. This is the top-level model
// used for SSH sessions.
type SessionModel struct {
	calendar *puzzles.Calendar
	store    *storage.Store
	engCfg   config.EngineConfig
	runCfg   core.RuntimeConfig

	screen   sessionScreen
	picker   CalendarModel
	progress ProgressModel
	puzzle   *PuzzleModel
	quitting bool
}

// NewSessionModel creates a new session model starting at the calendar.
func NewSessionModel(cal *puzzles.Calendar, store *storage.Store,
	engCfg config.EngineConfig, runCfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		calendar: cal,
		store:    store,
		engCfg:   engCfg,
		runCfg:   runCfg,
		screen:   screenCalendar,
		picker:   NewCalendarModel(cal, store, runCfg.ScreenW, runCfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so screen switches use current dimensions
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runCfg.ScreenW = wsm.Width
		m.runCfg.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPuzzle:
		return m.updatePuzzle(msg)
	case screenProgress:
		return m.updateProgress(msg)
	default:
		return m.updateCalendar(msg)
	}
}

// updateCalendar handles updates on the calendar screen.
func (m SessionModel) updateCalendar(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(CalendarModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.picker.WantsProgress() {
		m.progress = NewProgressModel(m.calendar, m.store, m.runCfg.ScreenW, m.runCfg.ScreenH)
		m.screen = screenProgress
		return m, m.progress.Init()
	}

	if selected := m.picker.Selected(); selected != nil {
		pz, ok := m.calendar.ByID(selected.PuzzleID)
		if !ok {
			// The picker only lists calendar entries
			return m, cmd
		}

		m.runCfg.Seed = time.Now().UnixNano()
		model, err := NewPuzzleModel(pz, m.store, m.engCfg, m.runCfg, selected.Solved)
		if err != nil {
			return m, cmd
		}

		m.puzzle = &model
		m.screen = screenPuzzle
		return m, m.puzzle.Init()
	}

	return m, cmd
}

// updatePuzzle handles updates while a puzzle is on screen.
func (m SessionModel) updatePuzzle(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.puzzle.Update(msg)
	if model, ok := newModel.(PuzzleModel); ok {
		m.puzzle = &model
	}

	if m.puzzle.BackToCalendar() {
		m.puzzle = nil
		m.screen = screenCalendar
		m.picker = NewCalendarModel(m.calendar, m.store, m.runCfg.ScreenW, m.runCfg.ScreenH)
		return m, m.picker.Init()
	}

	if m.puzzle.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateProgress handles updates on the progress screen.
func (m SessionModel) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.progress.Update(msg)
	if model, ok := newModel.(ProgressModel); ok {
		m.progress = model
	}

	if m.progress.IsGoingBack() {
		m.screen = screenCalendar
		m.picker = NewCalendarModel(m.calendar, m.store, m.runCfg.ScreenW, m.runCfg.ScreenH)
		return m, m.picker.Init()
	}

	if m.progress.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPuzzle:
		if m.puzzle != nil {
			return m.puzzle.View()
		}
	case screenProgress:
		return m.progress.View()
	}
	return m.picker.View()
}
