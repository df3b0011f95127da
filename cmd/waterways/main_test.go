package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waterways/puzzle"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{
		"WATERWAYS_INPUT_DIR", "WATERWAYS_OUTPUT_DIR", "WATERWAYS_MODE",
		"WATERWAYS_LEVEL", "WATERWAYS_CASES", "WATERWAYS_MAX_STEPS", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, puzzle.ModeRoute, cfg.Mode)
	assert.Equal(t, 4, cfg.Level)
	assert.Equal(t, []string{"example", "1", "2", "3", "4", "5"}, cfg.Cases)
	assert.Equal(t, 0, cfg.MaxSteps)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	for _, k := range []string{"WATERWAYS_MODE", "WATERWAYS_LEVEL", "WATERWAYS_CASES"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("WATERWAYS_MODE=trace\nWATERWAYS_LEVEL=6\nWATERWAYS_CASES= a , b ,\n"), 0o644))

	cfg, err := loadConfig(env)
	require.NoError(t, err)
	assert.Equal(t, puzzle.ModeTrace, cfg.Mode)
	assert.Equal(t, 6, cfg.Level)
	assert.Equal(t, []string{"a", "b"}, cfg.Cases)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("WATERWAYS_MODE", "sail")
	_, err := loadConfig()
	assert.ErrorIs(t, err, puzzle.ErrUnknownMode)

	t.Setenv("WATERWAYS_MODE", "same")
	t.Setenv("WATERWAYS_MAX_STEPS", "-2")
	_, err = loadConfig()
	assert.Error(t, err)

	t.Setenv("WATERWAYS_MAX_STEPS", "")
	t.Setenv("WATERWAYS_LEVEL", "four")
	_, err = loadConfig()
	assert.Error(t, err)
}

func TestRunCase(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		InputDir:  filepath.Join(dir, "in"),
		OutputDir: filepath.Join(dir, "out"),
		Mode:      puzzle.ModeTrace,
		Level:     5,
	}
	in, out := puzzle.CasePaths(cfg.InputDir, cfg.OutputDir, cfg.Level, "1")
	require.NoError(t, os.MkdirAll(filepath.Dir(in), 0o755))
	require.NoError(t, os.WriteFile(in, []byte("2\nLL\nLL\n1\n0,0\n"), 0o644))

	var logs bytes.Buffer
	require.NoError(t, runCase(cfg, "1", zerolog.New(&logs)))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "", string(got))
	assert.Contains(t, logs.String(), "query failed")
	assert.Contains(t, logs.String(), `"case":"1"`)

	assert.Error(t, runCase(cfg, "missing", zerolog.New(&logs)))
}
