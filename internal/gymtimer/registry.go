package gymtimer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/fittrack/internal/timer"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("timer session not found")
	ErrTooManySessions = errors.New("too many timer sessions")
)

// Registry keeps the mounted timer sessions. Sessions share nothing but the
// clock their tick sources come from.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	clock       timer.Clock
	maxSessions int
}

// NewRegistry creates a registry; maxSessions <= 0 means no limit.
func NewRegistry(clock timer.Clock, maxSessions int) *Registry {
	if clock == nil {
		clock = timer.SystemClock
	}
	return &Registry{
		sessions:    make(map[string]*Session),
		clock:       clock,
		maxSessions: maxSessions,
	}
}

// Create mounts a new session. hooksFor builds the engine hooks once the
// session exists, so they can refer to it.
func (r *Registry) Create(hooksFor func(*Session) timer.Hooks) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManySessions, r.maxSessions)
	}

	session := &Session{
		ID:        uuid.NewString(),
		CreatedAt: r.clock.Now(),
	}
	var hooks timer.Hooks
	if hooksFor != nil {
		hooks = hooksFor(session)
	}
	session.Engine = timer.NewEngine(timer.EngineParams{
		Clock: r.clock,
		Hooks: hooks,
	})

	r.sessions[session.ID] = session
	return session, nil
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

// Delete unmounts the session and releases its tick source.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	session.Engine.Close()
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll unmounts every session and returns how many it closed.
func (r *Registry) CloseAll() int {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Engine.Close()
	}
	return len(sessions)
}
