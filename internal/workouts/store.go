package workouts

import (
	"strings"
	"sync"
	"time"
)

// Store keeps the logged workouts in memory, most recent first.
type Store struct {
	mu       sync.RWMutex
	workouts []Workout
	lastID   int
	now      func() time.Time
}

func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now: now,
	}
}

// Add validates and stores the workout, assigning ids and the creation time.
func (s *Store) Add(w Workout) (*Workout, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	stored := Workout{
		ID:        s.lastID,
		Name:      strings.TrimSpace(w.Name),
		Exercises: make([]Exercise, len(w.Exercises)),
		Duration:  w.Duration,
		CreatedAt: s.now(),
	}
	for i, ex := range w.Exercises {
		ex.ID = i + 1
		ex.Name = strings.TrimSpace(ex.Name)
		stored.Exercises[i] = ex
	}

	s.workouts = append([]Workout{stored}, s.workouts...)

	added := stored.clone()
	return &added, nil
}

// List returns up to limit workouts, most recent first. limit <= 0 means all.
func (s *Store) List(limit int) []Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.workouts)
	if limit > 0 && limit < n {
		n = limit
	}
	return cloneWorkouts(s.workouts[:n])
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workouts)
}

// clone copies the workout along with its exercises, so callers never share
// backing arrays with the store.
func (w Workout) clone() Workout {
	c := w
	c.Exercises = make([]Exercise, len(w.Exercises))
	copy(c.Exercises, w.Exercises)
	return c
}

func cloneWorkouts(ws []Workout) []Workout {
	out := make([]Workout, len(ws))
	for i, w := range ws {
		out[i] = w.clone()
	}
	return out
}
