package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings is the runtime configuration, loaded from the environment with
// an optional .env file. Every value has a playable default so the game
// runs with no configuration at all.
type Settings struct {
	MazeSize    int
	Seed        uint64 // 0 = seed from the clock
	WindowW     int
	WindowH     int
	Sensitivity float64
	Ceiling     bool
	Audio       bool
}

// LoadSettings reads MAZE_* / WINDOW_* variables, merging in a .env file
// when one is present.
func LoadSettings() Settings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "settings: ignoring .env: %v\n", err)
	}

	return Settings{
		MazeSize:    envInt("MAZE_SIZE", DefaultMazeSize, 2, 99),
		Seed:        envUint("MAZE_SEED", 0),
		WindowW:     envInt("WINDOW_WIDTH", WindowWidth, 320, 7680),
		WindowH:     envInt("WINDOW_HEIGHT", WindowHeight, 240, 4320),
		Sensitivity: envFloat("MOUSE_SENSITIVITY", DefaultSensitivity, MinSensitivity, MaxSensitivity),
		Ceiling:     envBool("MAZE_CEILING", false),
		Audio:       envBool("MAZE_AUDIO", true),
	}
}

func envInt(key string, def, lo, hi int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %s=%q is not an integer, using %d\n", key, s, def)
		return def
	}
	return clamp(v, lo, hi)
}

func envUint(key string, def uint64) uint64 {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %s=%q is not an unsigned integer, using %d\n", key, s, def)
		return def
	}
	return v
}

func envFloat(key string, def, lo, hi float64) float64 {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %s=%q is not a number, using %g\n", key, s, def)
		return def
	}
	return clampF(v, lo, hi)
}

func envBool(key string, def bool) bool {
	s, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %s=%q is not a bool, using %v\n", key, s, def)
		return def
	}
	return v
}
