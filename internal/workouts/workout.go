package workouts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidWorkout = errors.New("invalid workout")

type Exercise struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight,omitempty"`
}

type Workout struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	// Duration is in minutes.
	Duration  int       `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the workout as submitted by the tracker form.
func (w Workout) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidWorkout)
	}
	if len(w.Exercises) == 0 {
		return fmt.Errorf("%w: at least one exercise needed", ErrInvalidWorkout)
	}
	if w.Duration < 0 {
		return fmt.Errorf("%w: negative duration %d", ErrInvalidWorkout, w.Duration)
	}
	for i, ex := range w.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("%w: exercise %d has no name", ErrInvalidWorkout, i+1)
		}
		if ex.Sets < 0 || ex.Reps < 0 || ex.Weight < 0 {
			return fmt.Errorf("%w: exercise [%s] has negative sets, reps or weight", ErrInvalidWorkout, ex.Name)
		}
	}
	return nil
}
