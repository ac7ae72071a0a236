package gymtimer

import (
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/timer"
)

// Session is one mounted timer view. It owns its engine for its whole life.
type Session struct {
	ID        string
	CreatedAt time.Time
	Engine    *timer.Engine

	mu              sync.Mutex
	completions     int
	lastCompletedAt *time.Time
}

type SessionView struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	timer.State
	Display         string          `json:"display"`
	Indicator       timer.Indicator `json:"indicator"`
	Completions     int             `json:"completions"`
	LastCompletedAt *time.Time      `json:"lastCompletedAt,omitempty"`
}

func (s *Session) recordCompletion(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions++
	s.lastCompletedAt = &at
}

func (s *Session) View() SessionView {
	state := s.Engine.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionView{
		ID:              s.ID,
		CreatedAt:       s.CreatedAt,
		State:           state,
		Display:         state.Display(),
		Indicator:       state.Indicator(),
		Completions:     s.completions,
		LastCompletedAt: s.lastCompletedAt,
	}
}
