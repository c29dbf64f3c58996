// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"os"

	logging "github.com/op/go-logging"
	yaml "gopkg.in/yaml.v2"
)

var log = logging.MustGetLogger("config")

const (
	DefaultFillFactor = 4
	DefaultLogLevel   = "info"
)

// Config is the dustgrid runtime configuration.
type Config struct {
	// FillFactor is the maximum child count of the dust index's
	// interior nodes before they split.
	FillFactor int `yaml:"fill-factor"`
	// LogLevel is a go-logging level name (debug, info, warning, ...).
	LogLevel string `yaml:"log-level"`
}

// Load reads the YAML configuration at path. A missing file yields the
// defaults; an unreadable, malformed or invalid file is fatal.
func Load(path string) Config {
	cfg := Config{FillFactor: DefaultFillFactor, LogLevel: DefaultLogLevel}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg
		}
		log.Errorf("read config file error: %v", err)
		os.Exit(1)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		log.Errorf("yaml unmarshal error: %v", err)
		os.Exit(1)
	}
	if err = cfg.Validate(); err != nil {
		log.Errorf("invalid config: %v", err)
		os.Exit(1)
	}
	return cfg
}

// Validate applies defaults to zeroed fields and checks field ranges.
func (c *Config) Validate() error {
	if c.FillFactor == 0 {
		c.FillFactor = DefaultFillFactor
	}
	if c.FillFactor < 2 {
		return fmt.Errorf("config: fill-factor must be at least 2, got %d", c.FillFactor)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, err := logging.LogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log-level %q", c.LogLevel)
	}
	return nil
}
