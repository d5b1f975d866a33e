package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// defaultHomeDir is created under the user's home directory.
const defaultHomeDir = ".mathclash"

// ErrInvalidLevelTimes is returned when a level time limit is not positive.
var ErrInvalidLevelTimes = errors.New("level time limits must be positive")

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string          `env:"MATHCLASH_HOME"`       // data directory, e.g. $HOME/.mathclash
	Passphrase  string          `env:"MATHCLASH_PASSPHRASE"` // seals the profile file when set
	Seed        *int64          `env:"MATHCLASH_SEED"`       // nil picks a random seed
	LaxDivision bool            `env:"MATHCLASH_LAX_DIVISION"`
	LevelTimes  []time.Duration `env:"MATHCLASH_LEVEL_TIMES" envSeparator:"," envDefault:"20s,15s,10s"`
	Verbose     bool            `env:"MATHCLASH_VERBOSE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfig parses the environment and fills in the default home directory.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home: %w", err)
		}
		cfg.Home = filepath.Join(dir, defaultHomeDir)
	}
	return cfg, nil
}

// Validate checks values that env parsing cannot.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("home directory is required")
	}
	for _, d := range c.LevelTimes {
		if d <= 0 {
			return fmt.Errorf("%w: %v", ErrInvalidLevelTimes, d)
		}
	}
	return nil
}
