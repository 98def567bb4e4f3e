package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/netwalk/internal/config"
	"github.com/vovakirdan/netwalk/internal/core"
	"github.com/vovakirdan/netwalk/internal/logging"
	"github.com/vovakirdan/netwalk/internal/registry"
	"github.com/vovakirdan/netwalk/internal/session"
	"github.com/vovakirdan/netwalk/internal/storage"
)

type contextKey string

const sessionIDKey contextKey = "netwalk-session"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2222").
	Address string

	// HostKeyPath is the path to the host key file. A leading ~ expands to
	// the home directory; the key is generated on first start.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MaxSessions caps concurrent players; 0 means unlimited.
	MaxSessions int

	// Sizes are the free-play sizes offered in the menu.
	Sizes []SizeOption

	// Logger receives connection events. Nil logs to stderr.
	Logger *log.Logger
}

// SSHConfigFrom builds a server config from the file configuration.
func SSHConfigFrom(c config.ServerConfig) SSHServerConfig {
	return SSHServerConfig{
		Address:     c.Address,
		HostKeyPath: c.HostKey,
		IdleTimeout: time.Duration(c.IdleTimeoutMinutes) * time.Minute,
		MaxSessions: c.MaxSessions,
	}
}

// SSHServer wraps a Wish SSH server that hosts one NetWalk session per
// connection.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	sessions *session.Registry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          logging.Prefix + "-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		sessions: session.NewRegistry(logger),
		logger:   logger,
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		srv.closeStore()
		return nil, err
	}

	// Middlewares run last to first.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.sessionMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey expands the host key path and makes sure its directory
// exists.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		path = filepath.Join("~", ".netwalk", "host_key")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// sessionMiddleware registers a player session for the connection's
// lifetime and turns connections away once the server is full.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := session.NewID()
		sess, err := s.sessions.TryConnect(id, s.config.MaxSessions)
		if err != nil {
			s.logger.Warn("server full, rejecting session",
				"user", sshSession.User(),
				"remote", sshSession.RemoteAddr().String(),
				"error", err,
			)
			wish.Fatalln(sshSession, "NetWalk is full right now, try again later.")
			return
		}
		sess.Login(sshSession.User())
		sshSession.Context().SetValue(sessionIDKey, id)

		defer s.sessions.Disconnect(id)
		next(sshSession)
	}
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	id, _ := sshSession.Context().Value(sessionIDKey).(session.ID)
	sess, err := s.sessions.Get(id)
	if err != nil {
		s.logger.Error("no session for connection", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
	}

	model := NewSessionModel(s.store, cfg, sess, s.config.Sizes, s.logger.With("user", sshSession.User()))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.closeStore()
		return err
	}

	s.logger.Info("shutting down...", "sessions", s.sessions.Count())
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.closeStore()
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

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Sessions returns the registry of connected players.
func (s *SSHServer) Sessions() *session.Registry {
	return s.sessions
}

type sessionState int

const (
	stateMenu sessionState = iota
	stateModeSelect
	stateGame
	stateScores
)

// SessionModel manages the full flow of one connection:
// menu -> mode select -> game -> menu, with the scoreboard off the menu.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	sess     *session.Session
	sizes    []SizeOption
	logger   *log.Logger
	state    sessionState
	gameID   string
	menu     MenuModel
	mode     NetwalkMenuModel
	scores   ScoreboardModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, sess *session.Session, sizes []SizeOption, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return SessionModel{
		store:  store,
		config: cfg,
		sess:   sess,
		sizes:  sizes,
		logger: logger,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session. Sub-models signal their end
// with tea.Quit; those commands are swallowed here so the connection
// stays open.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateModeSelect:
		return m.updateModeSelect(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.game = nil
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.WantsScoreboard():
		m.state = stateScores
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.Selected() != nil:
		m.gameID = m.menu.Selected().GameID
		m.state = stateModeSelect
		m.mode = NewNetwalkMenuModel(m.gameID, m.sizes, m.config.ScreenW, m.config.ScreenH)
		return m, m.mode.Init()
	}
	return m, cmd
}

// updateModeSelect handles the campaign level / free-play size picker.
func (m SessionModel) updateModeSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMode, cmd := m.mode.Update(msg)
	if modeModel, ok := newMode.(NetwalkMenuModel); ok {
		m.mode = modeModel
	}

	switch {
	case m.mode.IsQuitting():
		return m.quit()
	case m.mode.WantsBack():
		return m.toMenu()
	case m.mode.Selected() != nil:
		return m.startGame(*m.mode.Selected())
	}
	return m, cmd
}

func (m SessionModel) startGame(sel NetwalkSelection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.logger.Error("could not create game", "game", m.gameID, "error", err)
		return m.toMenu()
	}

	model := NewModel(game, m.store, sel.Apply(m.config), ModelOptions{
		Player:    m.sess.User(),
		Session:   m.sess,
		Logger:    m.logger,
		AllowBack: true,
	})
	m.game = &model
	m.state = stateGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	switch {
	case m.game.BackToMenu():
		m.sess.EndGame()
		return m.toMenu()
	case m.game.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

// updateScores handles the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if sb, ok := newScores.(ScoreboardModel); ok {
		m.scores = sb
	}

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateModeSelect:
		return m.mode.View()
	case stateGame:
		return m.game.View()
	case stateScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
