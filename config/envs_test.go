package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	keys := []string{"MAZE_COLUMNS", "MAZE_ROWS", "MAZE_SEED", "MAZE_EXIT", "MAZE_LETTERS"}

	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t, keys)

		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, Config{
			Columns:  41,
			Rows:     21,
			Seed:     0,
			ExitSide: "right",
			Letters:  5,
		}, c)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("MAZE_COLUMNS", "12")
		t.Setenv("MAZE_ROWS", "8")
		t.Setenv("MAZE_SEED", "-77")
		t.Setenv("MAZE_EXIT", "bottom")
		t.Setenv("MAZE_LETTERS", "0")

		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, Config{
			Columns:  12,
			Rows:     8,
			Seed:     -77,
			ExitSide: "bottom",
			Letters:  0,
		}, c)
	})

	t.Run("Invalid values", func(t *testing.T) {
		testCases := []struct {
			key, value string
		}{
			{"MAZE_COLUMNS", "wide"},
			{"MAZE_COLUMNS", "0"},
			{"MAZE_ROWS", "-3"},
			{"MAZE_SEED", "1.5"},
			{"MAZE_LETTERS", "-1"},
		}
		for _, tc := range testCases {
			t.Run(tc.key+"="+tc.value, func(t *testing.T) {
				clearEnv(t, keys)
				t.Setenv(tc.key, tc.value)

				_, err := Load()
				assert.ErrorIs(t, err, ErrInvalidValue)
			})
		}
	})
}

// clearEnv unsets keys for the duration of the test.
func clearEnv(t *testing.T, keys []string) {
	t.Helper()
	for _, key := range keys {
		// Setenv registers the restore; Unsetenv then removes the key.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
