// Package config loads runner settings from defaults, an optional YAML
// file and AOC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// patternRx accepts a file name with exactly one integer verb, e.g. "input%02d.txt".
var patternRx = regexp.MustCompile(`^[^%]*%0?[0-9]*d[^%]*$`)

// Config holds runner settings.
type Config struct {
	// InputDir is the directory puzzle inputs are read from.
	InputDir string `mapstructure:"input_dir"`
	// InputPattern names a day's input file; it must contain one %d verb.
	InputPattern string `mapstructure:"input_pattern"`
	// Workers bounds how many days are solved at the same time.
	Workers int `mapstructure:"workers"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		InputDir:     "inputs",
		InputPattern: "input%02d.txt",
		Workers:      runtime.NumCPU(),
		LogLevel:     "info",
	}
}

// Load merges, lowest precedence first: defaults, the YAML file at path
// (skipped when path is empty), and AOC_INPUT_DIR / AOC_INPUT_PATTERN /
// AOC_WORKERS / AOC_LOG_LEVEL. The result is validated.
func Load(path string) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("input_dir", def.InputDir)
	v.SetDefault("input_pattern", def.InputPattern)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("aoc")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the runner cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.InputDir == "":
		return fmt.Errorf("%w: input_dir is empty", ErrInvalidConfig)
	case !patternRx.MatchString(c.InputPattern):
		return fmt.Errorf("%w: input_pattern %q needs exactly one %%d verb", ErrInvalidConfig, c.InputPattern)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// InputFile returns the file name for day according to InputPattern.
func (c *Config) InputFile(day int) string {
	return fmt.Sprintf(c.InputPattern, day)
}
