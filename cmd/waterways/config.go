package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/waterways/puzzle"
)

// Config holds the driver settings, read from the environment after an
// optional .env file.
type Config struct {
	InputDir  string
	OutputDir string
	Mode      puzzle.Mode
	Level     int
	Cases     []string
	MaxSteps  int
	LogLevel  string
}

// loadConfig loads .env files (missing files are ignored) and resolves
// every setting with its default.
func loadConfig(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	mode, err := puzzle.ParseMode(getEnv("WATERWAYS_MODE", string(puzzle.ModeRoute)))
	if err != nil {
		return Config{}, err
	}
	level, err := atoiEnv("WATERWAYS_LEVEL", 4)
	if err != nil {
		return Config{}, err
	}
	maxSteps, err := atoiEnv("WATERWAYS_MAX_STEPS", 0)
	if err != nil {
		return Config{}, err
	}
	if maxSteps < 0 {
		return Config{}, fmt.Errorf("config: WATERWAYS_MAX_STEPS must be non-negative, got %d", maxSteps)
	}

	var cases []string
	for _, c := range strings.Split(getEnv("WATERWAYS_CASES", "example,1,2,3,4,5"), ",") {
		if c = strings.TrimSpace(c); c != "" {
			cases = append(cases, c)
		}
	}

	return Config{
		InputDir:  getEnv("WATERWAYS_INPUT_DIR", "input"),
		OutputDir: getEnv("WATERWAYS_OUTPUT_DIR", "output"),
		Mode:      mode,
		Level:     level,
		Cases:     cases,
		MaxSteps:  maxSteps,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}
