package tetris_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := tetris.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, 500*time.Millisecond, cfg.LockDelay)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*tetris.Config)
		field string
	}{
		{"zero width", func(c *tetris.Config) { c.Width = 0 }, "width"},
		{"narrow", func(c *tetris.Config) { c.Width = 3 }, "width"},
		{"zero height", func(c *tetris.Config) { c.Height = 0 }, "height"},
		{"negative buffer", func(c *tetris.Config) { c.BufferRows = -1 }, "buffer_rows"},
		{"short field", func(c *tetris.Config) { c.Height, c.BufferRows = 2, 1 }, "height"},
		{"huge width", func(c *tetris.Config) { c.Width = 10_000_000_000 }, "width"},
		{"huge field", func(c *tetris.Config) { c.Width, c.Height = 1024, 2048 }, "height"},
		{"huge buffer", func(c *tetris.Config) { c.BufferRows = tetris.MaxCells }, "buffer_rows"},
		{"negative preview", func(c *tetris.Config) { c.Preview = -1 }, "preview"},
		{"unknown randomizer", func(c *tetris.Config) { c.Randomizer = "weighted" }, "randomizer"},
		{"level zero", func(c *tetris.Config) { c.StartLevel = 0 }, "start_level"},
		{"negative lines per level", func(c *tetris.Config) { c.LinesPerLevel = -1 }, "lines_per_level"},
		{"negative gravity", func(c *tetris.Config) { c.Gravity = -time.Second }, "gravity"},
		{"soft drop factor", func(c *tetris.Config) { c.SoftDropFactor = 0 }, "soft_drop_factor"},
		{"negative lock delay", func(c *tetris.Config) { c.LockDelay = -1 }, "lock_delay"},
		{"negative lock resets", func(c *tetris.Config) { c.MaxLockResets = -1 }, "max_lock_resets"},
		{"negative entry delay", func(c *tetris.Config) { c.EntryDelay = -1 }, "entry_delay"},
		{"negative line clear delay", func(c *tetris.Config) { c.LineClearDelay = -1 }, "line_clear_delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			tt.edit(&cfg)

			err := cfg.Validate()
			var cerr *tetris.ConfigError
			require.True(t, errors.As(err, &cerr), "got %v", err)
			assert.Equal(t, tt.field, cerr.Field)

			_, err = tetris.New(cfg)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := tetris.LoadConfig(strings.NewReader("width: 12\nlock_delay: 250ms\nrandomizer: uniform\n"))
	require.NoError(t, err)

	want := tetris.DefaultConfig()
	want.Width = 12
	want.LockDelay = 250 * time.Millisecond
	want.Randomizer = tetris.RandomizerUniform
	assert.Equal(t, want, cfg)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := tetris.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, tetris.DefaultConfig(), cfg)
}

func TestLoadConfigRejects(t *testing.T) {
	_, err := tetris.LoadConfig(strings.NewReader("widht: 12\n"))
	assert.ErrorContains(t, err, "decode config")

	_, err = tetris.LoadConfig(strings.NewReader("width: 2\n"))
	var cerr *tetris.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "width", cerr.Field)

	_, err = tetris.LoadConfig(strings.NewReader("width: 10000000000\n"))
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "width", cerr.Field)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height: 24\nentry_delay: 100ms\n"), 0o644))

	cfg, err := tetris.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Height)
	assert.Equal(t, 100*time.Millisecond, cfg.EntryDelay)

	_, err = tetris.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
