package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults used when the environment does not say otherwise.
const (
	DefaultRows         = 15
	DefaultCols         = 10
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
	DefaultVelocityStep = 42.0 // px/s per key press
	DefaultBallDamping  = 0.55 // fraction of velocity kept per second
	DefaultWinGravity   = 600.0
	DefaultTargetFPS    = 60
)

// Config holds the application's configuration values.
type Config struct {
	Rows         int     // Maze rows (cells stacked vertically)
	Cols         int     // Maze columns (cells side by side)
	WindowWidth  int     // Viewport width in pixels
	WindowHeight int     // Viewport height in pixels
	Seed         int64   // Random seed, 0 for a clock-based seed
	VelocityStep float64 // Velocity added to the ball per key press
	BallDamping  float64 // Fraction of velocity the ball keeps per second
	WinGravity   float64 // Gravity switched on after a win
	TargetFPS    int     // Frame rate requested from raylib
	Debug        bool    // Write logs to the logs directory
}

// Load reads a .env file when present and builds the configuration from
// environment variables, falling back to defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("%s [INFO] .env file not found or could not be loaded: %v", LogApp, err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (Config, error) {
	var errs []error

	cfg := Config{
		Rows:         getEnvAsInt("MAZE_ROWS", DefaultRows, &errs),
		Cols:         getEnvAsInt("MAZE_COLS", DefaultCols, &errs),
		WindowWidth:  getEnvAsInt("WINDOW_WIDTH", DefaultWindowWidth, &errs),
		WindowHeight: getEnvAsInt("WINDOW_HEIGHT", DefaultWindowHeight, &errs),
		Seed:         int64(getEnvAsInt("MAZE_SEED", 0, &errs)),
		VelocityStep: getEnvAsFloat("VELOCITY_STEP", DefaultVelocityStep, &errs),
		BallDamping:  getEnvAsFloat("BALL_DAMPING", DefaultBallDamping, &errs),
		WinGravity:   getEnvAsFloat("WIN_GRAVITY", DefaultWinGravity, &errs),
		TargetFPS:    getEnvAsInt("TARGET_FPS", DefaultTargetFPS, &errs),
		Debug:        getEnvAsBool("DEBUG", false, &errs),
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	return cfg, nil
}

// Validate rejects sizes the game cannot lay out.
func (c Config) Validate() error {
	checks := []struct {
		key string
		ok  bool
	}{
		{"MAZE_ROWS", c.Rows > 0},
		{"MAZE_COLS", c.Cols > 0},
		{"WINDOW_WIDTH", c.WindowWidth > 0},
		{"WINDOW_HEIGHT", c.WindowHeight > 0},
		{"VELOCITY_STEP", c.VelocityStep > 0},
		{"BALL_DAMPING", c.BallDamping > 0 && c.BallDamping <= 1},
		{"TARGET_FPS", c.TargetFPS > 0},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalidConfig, check.key)
		}
	}
	return nil
}

// getEnvAsInt retrieves an environment variable as an integer or returns the default if not set.
func getEnvAsInt(key string, defaultValue int, errs *[]error) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err))
		return defaultValue
	}
	return value
}

// getEnvAsFloat retrieves an environment variable as a float or returns the default if not set.
func getEnvAsFloat(key string, defaultValue float64, errs *[]error) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidConfig, key, err))
		return defaultValue
	}
	return value
}

// getEnvAsBool retrieves an environment variable as a bool or returns the default if not set.
func getEnvAsBool(key string, defaultValue bool, errs *[]error) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidConfig, key, err))
		return defaultValue
	}
	return value
}
