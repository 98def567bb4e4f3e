package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ID uniquely identifies a connection.
type ID string

// NewID returns a random session ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Registry tracks live sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]*Session
	logger   *log.Logger
}

// NewRegistry creates an empty registry. A nil logger falls back to the
// package default.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		sessions: make(map[ID]*Session),
		logger:   logger,
	}
}

// Connect opens a session for id, or returns the one already open.
func (r *Registry) Connect(id ID) *Session {
	//nolint:errcheck // no limit, cannot fail
	s, _ := r.TryConnect(id, 0)
	return s
}

// TryConnect opens a session for id unless limit sessions are already live,
// in which case it returns ErrFull. The check and the insert happen under
// one lock. A limit of zero or less means no limit. An id that is already
// connected always gets its session back.
func (r *Registry) TryConnect(id ID, limit int) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		return s, nil
	}
	if limit > 0 && len(r.sessions) >= limit {
		return nil, fmt.Errorf("%w: limit %d", ErrFull, limit)
	}
	s := New(id)
	r.sessions[id] = s
	r.logger.Debug("session connected", "id", id, "live", len(r.sessions))
	return s, nil
}

// Disconnect closes the session for id and drops its game. It reports
// whether the session existed.
func (r *Registry) Disconnect(id ID) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	live := len(r.sessions)
	r.mu.Unlock()

	if !ok {
		return false
	}
	s.EndGame()
	r.logger.Debug("session disconnected", "id", id, "user", s.User(),
		"age", time.Since(s.Created()).Round(time.Second), "live", live)
	return true
}

// Get looks up a live session.
func (r *Registry) Get(id ID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return s, nil
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
