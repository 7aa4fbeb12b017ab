package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds the defaults of the drill CLI, read from the environment
type Env struct {
	Players    int
	Lines      int
	StartLine  int
	Direction  string
	Passes     int
	PlayerID   int
	LineConfig string
	LogLevel   string
}

// LoadEnv loads the given .env files, or ./.env when none are given, and
// reads the DRILL_* variables. Missing files are ignored and variables
// already set in the environment win over the files.
func LoadEnv(files ...string) (*Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	env := &Env{
		Direction:  getEnv("DRILL_DIRECTION", "right"),
		LineConfig: getEnv("DRILL_LINE_CONFIG", ""),
		LogLevel:   getEnv("DRILL_LOG_LEVEL", "info"),
	}

	ints := []struct {
		key    string
		def    int
		target *int
	}{
		{key: "DRILL_PLAYERS", def: 10, target: &env.Players},
		{key: "DRILL_LINES", def: 4, target: &env.Lines},
		{key: "DRILL_START_LINE", def: 1, target: &env.StartLine},
		{key: "DRILL_PASSES", def: 100, target: &env.Passes},
		{key: "DRILL_PLAYER_ID", def: 0, target: &env.PlayerID},
	}
	for _, v := range ints {
		value, err := getEnvInt(v.key, v.def)
		if err != nil {
			return nil, err
		}
		*v.target = value
	}

	return env, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidEnvValue, key, value)
	}
	return n, nil
}
