// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the datetime command from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"gonih.org/datetime"
)

// EnvVar names the environment variable holding the path of the config file.
const EnvVar = "DATETIME_CONFIG"

// Config holds the settings of the datetime command.
type Config struct {
	// Layout is used to format and parse date-times.
	Layout string `toml:"layout"`
	// DateLayout is used to format and parse dates.
	DateLayout string `toml:"date_layout"`
	// Offset is the UTC offset of printed date-times, like "Z" or "+05:30".
	Offset string `toml:"offset"`
	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	c := new(Config)
	c.applyDefaults()
	return c
}

// Load loads configuration from a TOML file. Keys missing from the file get
// their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undec[0].String(), path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by DATETIME_CONFIG. If it is unset, the
// default locations are tried, and Default is returned if none exists.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./datetime.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "datetime", "config.toml"))
	}
	return paths
}

func (c *Config) applyDefaults() {
	if c.Layout == "" {
		c.Layout = datetime.ISODateTime
	}
	if c.DateLayout == "" {
		c.DateLayout = datetime.ISODate
	}
	if c.Offset == "" {
		c.Offset = "Z"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that the offset parses and the log level is known.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.UTCOffset(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// UTCOffset returns the parsed Offset.
func (c *Config) UTCOffset() (datetime.Offset, error) {
	o, err := datetime.ParseOffset(c.Offset)
	if err != nil {
		return datetime.Offset{}, fmt.Errorf("offset: %w", err)
	}
	return o, nil
}
