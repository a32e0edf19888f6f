// Package config loads the optional per-application TOML configuration used by
// App.Run. Every key has a default, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/footprint-tools/subcmd/internal/log"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the runtime settings of an application built on this library.
type Config struct {
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
	LogMaxSizeMB int    `toml:"log_max_size_mb"`
	Color        string `toml:"color"`
	// ColorTheme names a built-in palette, e.g. "ocean" or "mono-light".
	ColorTheme string `toml:"color_theme"`
	Pager      string `toml:"pager"`
	NoPager    bool   `toml:"no_pager"`
	// RetryMaxAttempts bounds interactive prompt retries. 0 retries forever.
	RetryMaxAttempts int  `toml:"retry_max_attempts"`
	History          bool `toml:"history"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		LogLevel:     "warn",
		LogMaxSizeMB: 5,
		Color:        ColorAuto,
	}
}

// Load reads the TOML file at path on top of Defaults. A missing file yields the
// defaults. Unknown keys are logged and ignored.
func Load(path string) (Config, error) {
	cfg := Defaults()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Defaults(), fmt.Errorf("read config %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		log.Warn("config: unknown key %q in %s", key.String(), path)
	}

	if err := cfg.validate(); err != nil {
		return Defaults(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text on top of Defaults.
func Decode(text string) (Config, error) {
	cfg := Defaults()
	if _, err := toml.Decode(text, &cfg); err != nil {
		return Defaults(), err
	}
	if err := cfg.validate(); err != nil {
		return Defaults(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if c.RetryMaxAttempts < 0 {
		return fmt.Errorf("retry_max_attempts must not be negative, got %d", c.RetryMaxAttempts)
	}
	if c.LogMaxSizeMB < 0 {
		return fmt.Errorf("log_max_size_mb must not be negative, got %d", c.LogMaxSizeMB)
	}
	return nil
}

// EnvPrefix returns the environment variable prefix for an application name,
// e.g. "burger" -> "BURGER_".
func EnvPrefix(app string) string {
	up := strings.ToUpper(app)
	up = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, up)
	return up + "_"
}

// ApplyEnv overrides settings from the environment:
// NO_COLOR and <APP>_NO_COLOR force colour off, <APP>_LOG_LEVEL sets the level,
// <APP>_RETRY_MAX_ATTEMPTS sets the retry budget, <APP>_COLOR_THEME picks the
// palette and <APP>_NO_PAGER disables the pager.
func (c Config) ApplyEnv(app string, getenv func(string) string) Config {
	prefix := EnvPrefix(app)

	if getenv("NO_COLOR") != "" || getenv(prefix+"NO_COLOR") != "" {
		c.Color = ColorNever
	}
	if level := getenv(prefix + "LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if v := getenv(prefix + "RETRY_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.RetryMaxAttempts = n
		} else {
			log.Warn("config: ignoring %sRETRY_MAX_ATTEMPTS=%q", prefix, v)
		}
	}
	if theme := getenv(prefix + "COLOR_THEME"); theme != "" {
		c.ColorTheme = theme
	}
	if getenv(prefix+"NO_PAGER") != "" {
		c.NoPager = true
	}
	return c
}

// ColorEnabled reports whether output should be styled given whether stdout is a terminal.
func (c Config) ColorEnabled(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
