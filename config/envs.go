package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidValue is returned when an environment variable cannot be used.
var ErrInvalidValue = errors.New("invalid configuration value")

// Defaults give a 41x21 board.
const (
	defaultColumns  = 41
	defaultRows     = 21
	defaultExitSide = "right"
	defaultLetters  = 5
)

// Config holds the application's configuration values.
type Config struct {
	Columns  int    // Number of maze columns
	Rows     int    // Number of maze rows
	Seed     int64  // Random seed; 0 derives one from the current time
	ExitSide string // Boundary holding the exit ("right" or "bottom")
	Letters  int    // Dead-end letters to place after generation
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	c, err := Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	return c
}

// Load reads the configuration from the current environment.
func Load() (Config, error) {
	var (
		c   Config
		err error
	)

	if c.Columns, err = getEnvAsIntWithDefault("MAZE_COLUMNS", defaultColumns); err != nil {
		return Config{}, err
	}
	if c.Rows, err = getEnvAsIntWithDefault("MAZE_ROWS", defaultRows); err != nil {
		return Config{}, err
	}
	if c.Letters, err = getEnvAsIntWithDefault("MAZE_LETTERS", defaultLetters); err != nil {
		return Config{}, err
	}

	seed := getEnvWithDefault("MAZE_SEED", "0")
	if c.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
		return Config{}, fmt.Errorf("%w: MAZE_SEED must be an integer: %v", ErrInvalidValue, err)
	}

	c.ExitSide = getEnvWithDefault("MAZE_EXIT", defaultExitSide)

	if c.Columns <= 0 || c.Rows <= 0 {
		return Config{}, fmt.Errorf("%w: maze dimensions must be positive, got %dx%d", ErrInvalidValue, c.Columns, c.Rows)
	}
	if c.Letters < 0 {
		return Config{}, fmt.Errorf("%w: MAZE_LETTERS must not be negative", ErrInvalidValue)
	}

	return c, nil
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
