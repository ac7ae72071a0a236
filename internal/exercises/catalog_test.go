package exercises

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoadCatalog_Embedded(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)

	assert.Equal(t, []string{"Chest", "Back", "Legs", "Shoulders", "Arms", "Core"}, c.Categories())
	for _, category := range c.Categories() {
		exercises, err := c.List(category, "")
		require.NoError(t, err)
		assert.Len(t, exercises, 4, category)
	}

	deadlifts, err := c.Get("Back", "Deadlifts")
	require.NoError(t, err)
	assert.Equal(t, Exercise{
		Category:    "Back",
		Name:        "Deadlifts",
		Difficulty:  "Advanced",
		Equipment:   "Barbell",
		Description: "Lift barbell from floor to hip level, focus on form",
	}, *deadlifts)
}

func TestCatalog_List(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)

	pushUps, err := c.List("arms", "PUSH")
	require.NoError(t, err)
	require.Len(t, pushUps, 1)
	assert.Equal(t, "Close-grip Push-ups", pushUps[0].Name)

	curls, err := c.List("Arms", " curl ")
	require.NoError(t, err)
	require.Len(t, curls, 2)
	assert.Equal(t, "Bicep Curls", curls[0].Name)
	assert.Equal(t, "Hammer Curls", curls[1].Name)

	none, err := c.List("Core", "bench")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = c.List("Cardio", "")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalog_Get(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)

	plank, err := c.Get("core", "plank")
	require.NoError(t, err)
	assert.Equal(t, "Plank", plank.Name)

	_, err = c.Get("Core", "Burpees")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
	_, err = c.Get("Neck", "Plank")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestLoadCatalog_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exercises.csv")
	content := "# custom\nCardio;Rowing;Beginner;Rower;Pull the handle, push with legs\nCardio;Burpees;Advanced;Bodyweight;Squat, plank, jump\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cardio"}, c.Categories())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestNewCatalog_InvalidRecords(t *testing.T) {
	_, err := NewCatalog(csv.NewReader(strings.NewReader("Chest;Bench Press;Intermediate\n")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not have 5 elements")

	_, err = NewCatalog(csv.NewReader(strings.NewReader(";Bench Press;Intermediate;Barbell;desc\n")))
	require.Error(t, err)

	_, err = NewCatalog(csv.NewReader(strings.NewReader("# only a comment\n")))
	require.Error(t, err)
}
