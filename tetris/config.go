package tetris

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the rules of a session.
type Config struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	BufferRows int `yaml:"buffer_rows"` // hidden rows above the visible field
	Preview    int `yaml:"preview"`

	Seed       uint64 `yaml:"seed"`
	Randomizer string `yaml:"randomizer"`

	DisableHold bool `yaml:"disable_hold"`

	StartLevel    int `yaml:"start_level"`
	LinesPerLevel int `yaml:"lines_per_level"` // 0 keeps the start level forever

	// Gravity is a fixed time per row. Zero follows GravityInterval.
	Gravity        time.Duration `yaml:"gravity"`
	SoftDropFactor int           `yaml:"soft_drop_factor"`

	LockDelay     time.Duration `yaml:"lock_delay"`
	MaxLockResets int           `yaml:"max_lock_resets"`

	EntryDelay     time.Duration `yaml:"entry_delay"`
	LineClearDelay time.Duration `yaml:"line_clear_delay"`
}

// MaxCells bounds the size of the field, buffer rows included.
const MaxCells = 1 << 20

// DefaultConfig returns guideline rules on a 10x20 field.
func DefaultConfig() Config {
	return Config{
		Width:          10,
		Height:         20,
		BufferRows:     2,
		Preview:        5,
		Randomizer:     RandomizerBag,
		StartLevel:     1,
		LinesPerLevel:  10,
		SoftDropFactor: 20,
		LockDelay:      500 * time.Millisecond,
		MaxLockResets:  15,
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return &ConfigError{Field: "width", Reason: "must be positive"}
	case c.Height <= 0:
		return &ConfigError{Field: "height", Reason: "must be positive"}
	case c.Width < 4:
		return &ConfigError{Field: "width", Reason: "must be at least 4"}
	case c.BufferRows < 0:
		return &ConfigError{Field: "buffer_rows", Reason: "must not be negative"}
	case c.Height+c.BufferRows < 4:
		return &ConfigError{Field: "height", Reason: "height plus buffer rows must be at least 4"}
	case c.Width > MaxCells:
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("must not exceed %d", MaxCells)}
	case c.Height > MaxCells/c.Width:
		return &ConfigError{Field: "height", Reason: fmt.Sprintf("field must not exceed %d cells", MaxCells)}
	case c.BufferRows > MaxCells/c.Width-c.Height:
		return &ConfigError{Field: "buffer_rows", Reason: fmt.Sprintf("field must not exceed %d cells", MaxCells)}
	case c.Preview < 0:
		return &ConfigError{Field: "preview", Reason: "must not be negative"}
	case c.Randomizer != "" && c.Randomizer != RandomizerBag && c.Randomizer != RandomizerUniform:
		return &ConfigError{Field: "randomizer", Reason: fmt.Sprintf("unknown policy %q", c.Randomizer)}
	case c.StartLevel < 1:
		return &ConfigError{Field: "start_level", Reason: "must be at least 1"}
	case c.LinesPerLevel < 0:
		return &ConfigError{Field: "lines_per_level", Reason: "must not be negative"}
	case c.Gravity < 0:
		return &ConfigError{Field: "gravity", Reason: "must not be negative"}
	case c.SoftDropFactor < 1:
		return &ConfigError{Field: "soft_drop_factor", Reason: "must be at least 1"}
	case c.LockDelay < 0:
		return &ConfigError{Field: "lock_delay", Reason: "must not be negative"}
	case c.MaxLockResets < 0:
		return &ConfigError{Field: "max_lock_resets", Reason: "must not be negative"}
	case c.EntryDelay < 0:
		return &ConfigError{Field: "entry_delay", Reason: "must not be negative"}
	case c.LineClearDelay < 0:
		return &ConfigError{Field: "line_clear_delay", Reason: "must not be negative"}
	}
	return nil
}

// LoadConfig decodes YAML over DefaultConfig, so missing keys keep their
// defaults, then validates the result.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
