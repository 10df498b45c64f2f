// Package config holds the wordgrid CLI configuration, loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Dictionary backends accepted by Validator.
const (
	ValidatorTrie  = "trie"
	ValidatorIndex = "index"
	ValidatorSet   = "set"
)

// Config holds all wordgrid configuration.
type Config struct {
	// Grid is the letter stream file. Whitespace in it is ignored.
	Grid string `yaml:"grid"`
	// Dictionary is a word list, one word per line.
	Dictionary string `yaml:"dictionary"`
	// Index is a saved dictionary index. Used by the "index" validator and
	// written by "index build".
	Index string `yaml:"index"`

	// Validator selects the dictionary backend: trie, index or set.
	Validator string `yaml:"validator"`
	// Workers bounds parallel line expansion. 1 runs sequentially.
	Workers int `yaml:"workers"`
	// AntiDiagonals enables the top-right to bottom-left extension.
	AntiDiagonals bool `yaml:"anti_diagonals"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Grid:       "input.txt",
		Dictionary: "wordlist.txt",
		Index:      "wordlist.idx",
		Validator:  ValidatorTrie,
		Workers:    1,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	switch c.Validator {
	case ValidatorTrie, ValidatorIndex, ValidatorSet:
	default:
		return fmt.Errorf("%w: unknown validator %q", ErrInvalidConfig, c.Validator)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}
