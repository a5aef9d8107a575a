package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"MAZE_ROWS", "MAZE_COLS", "WINDOW_WIDTH", "WINDOW_HEIGHT", "MAZE_SEED",
	"VELOCITY_STEP", "BALL_DAMPING", "WIN_GRAVITY", "TARGET_FPS", "DEBUG",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		VelocityStep: DefaultVelocityStep,
		BallDamping:  DefaultBallDamping,
		WinGravity:   DefaultWinGravity,
		TargetFPS:    DefaultTargetFPS,
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_ROWS", "20")
	t.Setenv("MAZE_COLS", "30")
	t.Setenv("MAZE_SEED", "1234")
	t.Setenv("VELOCITY_STEP", "12.5")
	t.Setenv("DEBUG", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, 30, cfg.Cols)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 12.5, cfg.VelocityStep)
	assert.True(t, cfg.Debug)
}

func TestFromEnvParseErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_ROWS", "many")
	t.Setenv("BALL_DAMPING", "x")

	_, err := FromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "MAZE_ROWS")
	assert.Contains(t, err.Error(), "BALL_DAMPING")
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	base, err := FromEnv()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }, "MAZE_ROWS"},
		{"negative cols", func(c *Config) { c.Cols = -2 }, "MAZE_COLS"},
		{"no width", func(c *Config) { c.WindowWidth = 0 }, "WINDOW_WIDTH"},
		{"damping above one", func(c *Config) { c.BallDamping = 1.5 }, "BALL_DAMPING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/.env", []byte("MAZE_ROWS=7\nMAZE_COLS=9\n"), 0644))
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Rows)
	assert.Equal(t, 9, cfg.Cols)
}
