// SPDX-License-Identifier: MIT

// Package config loads pathstep settings from an optional TOML file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned for unknown keys or out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment overrides, applied after the TOML file.
const (
	EnvAddr      = "PATHSTEP_ADDR"
	EnvLogLevel  = "PATHSTEP_LOG_LEVEL"
	EnvLogFormat = "PATHSTEP_LOG_FORMAT"
	EnvLogFile   = "PATHSTEP_LOG_FILE"
	EnvDelay     = "PATHSTEP_DELAY"
)

const (
	defaultAddr            = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
	defaultLogMaxSize      = 100 // megabytes
	defaultLogMaxAge       = 28  // days
	defaultDelay           = 200 * time.Millisecond
)

// Duration is a time.Duration that decodes from TOML strings such as "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig    `toml:"http"`
	Logging LoggingConfig `toml:"logging"`
	Player  PlayerConfig  `toml:"player"`
}

// HTTPConfig governs the HTTP server.
type HTTPConfig struct {
	Addr            string   `toml:"addr"`
	AllowedOrigins  []string `toml:"allowed_origins"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// LoggingConfig controls structured logging. An empty File logs to stdout.
type LoggingConfig struct {
	Level   string `toml:"level"`
	Format  string `toml:"format"` // text|json
	File    string `toml:"file"`
	MaxSize int    `toml:"max_size"` // megabytes
	MaxAge  int    `toml:"max_age"`  // days
}

// PlayerConfig drives the terminal player and the server's initial scenario.
// An empty Graph selects the built-in sample scenario.
type PlayerConfig struct {
	Delay Duration `toml:"delay"`
	Graph string   `toml:"graph"`
	Start string   `toml:"start"`
	End   string   `toml:"end"`
}

// Default returns the configuration used when no file or environment is set.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            defaultAddr,
			ReadTimeout:     Duration{defaultReadTimeout},
			WriteTimeout:    Duration{defaultWriteTimeout},
			ShutdownTimeout: Duration{defaultShutdownTimeout},
		},
		Logging: LoggingConfig{
			Level:   defaultLoggingLevel,
			Format:  defaultLoggingFormat,
			MaxSize: defaultLogMaxSize,
			MaxAge:  defaultLogMaxAge,
		},
		Player: PlayerConfig{
			Delay: Duration{defaultDelay},
		},
	}
}

// Load starts from Default, decodes path when non-empty, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: unknown keys %v in %s", ErrInvalidConfig, undecoded, path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.HTTP.Addr = valueOrDefault(EnvAddr, c.HTTP.Addr)
	c.Logging.Level = valueOrDefault(EnvLogLevel, c.Logging.Level)
	c.Logging.Format = valueOrDefault(EnvLogFormat, c.Logging.Format)
	c.Logging.File = valueOrDefault(EnvLogFile, c.Logging.File)

	if v := os.Getenv(EnvDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvDelay, err)
		}
		c.Player.Delay = Duration{d}
	}

	return nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Logging.MaxSize < 0 || c.Logging.MaxAge < 0 {
		return fmt.Errorf("%w: logging.max_size and logging.max_age must be ≥ 0", ErrInvalidConfig)
	}
	if c.Player.Delay.Duration < 0 {
		return fmt.Errorf("%w: player.delay %s is negative", ErrInvalidConfig, c.Player.Delay)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: http.addr is empty", ErrInvalidConfig)
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
