package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads yaml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
board-size: 4
win-check: every-turn
players:
  - name: Alice
    mark: O
  - name: Bob
    mark: X
redis:
  enabled: true
  host: cache
  port: "6380"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the values are taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 4, conf.BoardSize)
		assert.Equal(t, "every-turn", conf.WinCheck)
		assert.Equal(t, []Player{{Name: "Alice", Mark: "O"}, {Name: "Bob", Mark: "X"}}, conf.Players)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe:results", conf.Redis.Key)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: a missing file is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)

		// Then: defaults apply
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 3, conf.BoardSize)
		assert.Equal(t, "board-full", conf.WinCheck)
		assert.Equal(t, DefaultPlayers(), conf.Players)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("TICTACTOE_BOARD_SIZE", "5")

		conf, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 5, conf.BoardSize)
	})
}

func TestRedis_Validate(t *testing.T) {
	assert.NoError(t, (&Redis{Host: "localhost", Port: "6379"}).Validate())
	assert.ErrorIs(t, (&Redis{Port: "6379"}).Validate(), ErrAddrNotFound)
}
