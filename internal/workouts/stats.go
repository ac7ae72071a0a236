package workouts

import (
	"math"
	"time"
)

const (
	statsWindow  = 7 * 24 * time.Hour
	recentOnDash = 5
)

type Stats struct {
	TotalWorkouts  int       `json:"totalWorkouts"`
	ThisWeek       int       `json:"thisWeek"`
	TotalExercises int       `json:"totalExercises"`
	AvgDuration    int       `json:"avgDuration"`
	Recent         []Workout `json:"recent"`
}

// Stats computes the dashboard numbers as of now.
func (s *Store) Stats(now time.Time) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	weekAgo := now.Add(-statsWindow)
	stats := Stats{
		TotalWorkouts: len(s.workouts),
	}

	totalDuration := 0
	for _, w := range s.workouts {
		if !w.CreatedAt.Before(weekAgo) {
			stats.ThisWeek++
		}
		stats.TotalExercises += len(w.Exercises)
		totalDuration += w.Duration
	}
	if len(s.workouts) > 0 {
		stats.AvgDuration = int(math.Round(float64(totalDuration) / float64(len(s.workouts))))
	}

	n := min(recentOnDash, len(s.workouts))
	stats.Recent = cloneWorkouts(s.workouts[:n])

	return stats
}
