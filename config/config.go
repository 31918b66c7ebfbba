// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/rolodex/codec"
	"github.com/spf13/viper"
)

const (
	// DefaultFile is the contact store used when none is configured.
	DefaultFile = "contacts.json"

	envPrefix = "ROLODEX"
	appName   = "rolodex"
)

// Config holds settings for the rolodex command.
type Config struct {
	// File is the contact store: a .json or .yaml file, or a BadgerDB
	// directory (existing directory or .badger suffix).
	File string `mapstructure:"file"`

	// Format forces the text format of a contact file (json or yaml).
	// Default: empty, chosen by the file extension
	Format string `mapstructure:"format"`

	// LogLevel is one of debug, info, warn, error.
	// Default: warn
	LogLevel string `mapstructure:"log_level"`

	// ImportWorkers is the number of files decoded concurrently by import.
	// Default: 4
	ImportWorkers int `mapstructure:"import_workers"`
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithFile sets the contact store path.
func WithFile(path string) Option {
	return func(c *Config) {
		c.File = path
	}
}

// WithFormat sets the contact file format.
func WithFormat(format string) Option {
	return func(c *Config) {
		c.Format = format
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithImportWorkers sets the import pool size.
func WithImportWorkers(n int) Option {
	return func(c *Config) {
		c.ImportWorkers = n
	}
}

// DefaultConfig returns a Config with defaults for local use.
func DefaultConfig() *Config {
	return &Config{
		File:          DefaultFile,
		LogLevel:      "warn",
		ImportWorkers: 4,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	cfg.Apply(opts...)
	return cfg
}

// Apply applies options on top of the current values.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Load reads configuration in increasing priority: defaults, a rolodex.yaml
// file, then ROLODEX_* environment variables. If path is empty the file is
// searched for in ".", $XDG_CONFIG_HOME/rolodex and ~/.config/rolodex; not
// finding one is not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("file", defaults.File)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("import_workers", defaults.ImportWorkers)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(appName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, appName))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", appName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Normalize ensures the configuration is in a canonical form.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.File = strings.TrimSpace(c.File)
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
}

// FileFormat returns the configured format. ok is false when the format
// should be chosen by extension.
func (c *Config) FileFormat() (f codec.Format, ok bool, err error) {
	if c.Format == "" {
		return 0, false, nil
	}
	f, err = codec.ParseFormat(c.Format)
	if err != nil {
		return 0, false, fmt.Errorf("config: invalid Format: %w", err)
	}
	return f, true, nil
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.File == "" {
		return errors.New("config: File is required")
	}
	if _, _, err := c.FileFormat(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid LogLevel %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.ImportWorkers < 1 {
		return errors.New("config: ImportWorkers must be greater than 0")
	}
	return nil
}
