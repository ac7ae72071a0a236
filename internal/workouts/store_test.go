package workouts

import (
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func fakeWorkout(exercises int, duration int) Workout {
	w := Workout{
		Name:     gofakeit.HipsterWord() + " day",
		Duration: duration,
	}
	for i := 0; i < exercises; i++ {
		w.Exercises = append(w.Exercises, Exercise{
			Name:   gofakeit.Noun(),
			Sets:   gofakeit.Number(1, 5),
			Reps:   gofakeit.Number(5, 15),
			Weight: float64(gofakeit.Number(0, 200)),
		})
	}
	return w
}

func TestWorkout_Validate(t *testing.T) {
	valid := Workout{
		Name:      "Upper Body Strength",
		Exercises: []Exercise{{Name: "Bench Press", Sets: 3, Reps: 12, Weight: 135}},
		Duration:  45,
	}
	require.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		modify func(w *Workout)
	}{
		{name: "empty name", modify: func(w *Workout) { w.Name = "" }},
		{name: "blank name", modify: func(w *Workout) { w.Name = "   " }},
		{name: "no exercises", modify: func(w *Workout) { w.Exercises = nil }},
		{name: "negative duration", modify: func(w *Workout) { w.Duration = -1 }},
		{name: "exercise without name", modify: func(w *Workout) { w.Exercises[0].Name = " " }},
		{name: "negative sets", modify: func(w *Workout) { w.Exercises[0].Sets = -1 }},
		{name: "negative reps", modify: func(w *Workout) { w.Exercises[0].Reps = -2 }},
		{name: "negative weight", modify: func(w *Workout) { w.Exercises[0].Weight = -5 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := valid
			w.Exercises = append([]Exercise(nil), valid.Exercises...)
			tc.modify(&w)
			assert.ErrorIs(t, w.Validate(), ErrInvalidWorkout)
		})
	}
}

func TestStore_AddAndList(t *testing.T) {
	clock := &testClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := NewStore(clock.Now)

	first, err := store.Add(Workout{
		Name:      "  Leg Day ",
		Exercises: []Exercise{{Name: " Squats", Sets: 4, Reps: 8, Weight: 100}, {Name: "Lunges", Sets: 3, Reps: 10}},
		Duration:  50,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Leg Day", first.Name)
	assert.Equal(t, clock.now, first.CreatedAt)
	require.Len(t, first.Exercises, 2)
	assert.Equal(t, 1, first.Exercises[0].ID)
	assert.Equal(t, "Squats", first.Exercises[0].Name)
	assert.Equal(t, 2, first.Exercises[1].ID)

	clock.Set(clock.now.Add(time.Hour))
	second, err := store.Add(fakeWorkout(3, 30))
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	_, err = store.Add(Workout{Name: "nothing"})
	assert.ErrorIs(t, err, ErrInvalidWorkout)
	assert.Equal(t, 2, store.Count())

	all := store.List(0)
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].ID)
	assert.Equal(t, 1, all[1].ID)

	limited := store.List(1)
	require.Len(t, limited, 1)
	assert.Equal(t, 2, limited[0].ID)

	assert.Len(t, store.List(10), 2)
}

func TestStore_Stats(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := &testClock{}
	store := NewStore(clock.Now)

	empty := store.Stats(now)
	assert.Equal(t, 0, empty.TotalWorkouts)
	assert.Equal(t, 0, empty.AvgDuration)
	assert.Empty(t, empty.Recent)

	// 10 days ago, exactly 7 days ago, 1 day ago
	clock.Set(now.Add(-10 * 24 * time.Hour))
	_, err := store.Add(fakeWorkout(2, 40))
	require.NoError(t, err)
	clock.Set(now.Add(-7 * 24 * time.Hour))
	_, err = store.Add(fakeWorkout(1, 45))
	require.NoError(t, err)
	clock.Set(now.Add(-24 * time.Hour))
	_, err = store.Add(fakeWorkout(4, 0))
	require.NoError(t, err)

	stats := store.Stats(now)
	assert.Equal(t, 3, stats.TotalWorkouts)
	assert.Equal(t, 2, stats.ThisWeek)
	assert.Equal(t, 7, stats.TotalExercises)
	// (40 + 45 + 0) / 3 = 28.33
	assert.Equal(t, 28, stats.AvgDuration)
	require.Len(t, stats.Recent, 3)
	assert.Equal(t, 3, stats.Recent[0].ID)
}

func TestStore_StatsRecentCapped(t *testing.T) {
	store := NewStore(nil)
	for i := 0; i < 8; i++ {
		_, err := store.Add(fakeWorkout(1, 31))
		require.NoError(t, err)
	}
	_, err := store.Add(fakeWorkout(1, 30))
	require.NoError(t, err)

	stats := store.Stats(time.Now())
	assert.Equal(t, 9, stats.TotalWorkouts)
	assert.Equal(t, 9, stats.ThisWeek)
	assert.Equal(t, 31, stats.AvgDuration)
	require.Len(t, stats.Recent, 5)
	assert.Equal(t, 9, stats.Recent[0].ID)
	assert.Equal(t, 5, stats.Recent[4].ID)
}

func TestStore_ReturnedWorkoutsAreCopies(t *testing.T) {
	store := NewStore(nil)
	added, err := store.Add(Workout{
		Name:      "Push Day",
		Exercises: []Exercise{{Name: "Bench Press", Sets: 5, Reps: 5, Weight: 80}},
		Duration:  45,
	})
	require.NoError(t, err)

	added.Exercises[0].Name = "changed by add caller"
	listed := store.List(0)
	require.Len(t, listed, 1)
	listed[0].Exercises[0].Reps = 100
	recent := store.Stats(time.Now()).Recent
	require.Len(t, recent, 1)
	recent[0].Exercises[0].Weight = 1

	stored := store.List(1)[0].Exercises[0]
	assert.Equal(t, Exercise{ID: 1, Name: "Bench Press", Sets: 5, Reps: 5, Weight: 80}, stored)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	store := NewStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Add(fakeWorkout(2, 20))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all := store.List(0)
	require.Len(t, all, 20)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].ID, all[i].ID)
	}
}
