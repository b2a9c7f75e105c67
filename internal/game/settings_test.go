package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettings_Defaults(t *testing.T) {
	for _, key := range []string{
		"MAZE_SIZE", "MAZE_SEED", "WINDOW_WIDTH", "WINDOW_HEIGHT",
		"MOUSE_SENSITIVITY", "MAZE_CEILING", "MAZE_AUDIO",
	} {
		// Empty values fail to parse and fall back to the defaults.
		t.Setenv(key, "")
	}
	s := LoadSettings()
	assert.Equal(t, DefaultMazeSize, s.MazeSize)
	assert.Equal(t, uint64(0), s.Seed)
	assert.Equal(t, WindowWidth, s.WindowW)
	assert.Equal(t, WindowHeight, s.WindowH)
	assert.InDelta(t, DefaultSensitivity, s.Sensitivity, 1e-9)
	assert.False(t, s.Ceiling)
	assert.True(t, s.Audio)
}

func TestLoadSettings_Overrides(t *testing.T) {
	t.Setenv("MAZE_SIZE", "25")
	t.Setenv("MAZE_SEED", "12345")
	t.Setenv("WINDOW_WIDTH", "1920")
	t.Setenv("WINDOW_HEIGHT", "1080")
	t.Setenv("MOUSE_SENSITIVITY", "0.3")
	t.Setenv("MAZE_CEILING", "true")
	t.Setenv("MAZE_AUDIO", "false")

	s := LoadSettings()
	assert.Equal(t, 25, s.MazeSize)
	assert.Equal(t, uint64(12345), s.Seed)
	assert.Equal(t, 1920, s.WindowW)
	assert.Equal(t, 1080, s.WindowH)
	assert.InDelta(t, 0.3, s.Sensitivity, 1e-9)
	assert.True(t, s.Ceiling)
	assert.False(t, s.Audio)
}

func TestLoadSettings_ClampsOutOfRange(t *testing.T) {
	t.Setenv("MAZE_SIZE", "1000")
	t.Setenv("MOUSE_SENSITIVITY", "9.5")
	t.Setenv("WINDOW_WIDTH", "1")

	s := LoadSettings()
	assert.Equal(t, 99, s.MazeSize)
	assert.InDelta(t, MaxSensitivity, s.Sensitivity, 1e-9)
	assert.Equal(t, 320, s.WindowW)
}

func TestLoadSettings_RejectsGarbage(t *testing.T) {
	t.Setenv("MAZE_SIZE", "banana")
	t.Setenv("MAZE_SEED", "-3")
	t.Setenv("MAZE_AUDIO", "maybe")

	s := LoadSettings()
	assert.Equal(t, DefaultMazeSize, s.MazeSize)
	assert.Equal(t, uint64(0), s.Seed)
	assert.True(t, s.Audio)
}
