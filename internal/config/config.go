// Package config loads the showcase server configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/jackielii/showcase/guard"
	"github.com/jackielii/showcase/pages"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "showcase.yml"

type Config struct {
	Addr            string         `yaml:"addr"`
	LogLevel        string         `yaml:"logLevel"`
	Pretty          bool           `yaml:"pretty"`
	Minify          bool           `yaml:"minify"`
	ShutdownTimeout time.Duration  `yaml:"shutdownTimeout"`
	Guard           Guard          `yaml:"guard"`
	Metadata        pages.Metadata `yaml:"metadata"`
}

type Guard struct {
	Pattern string `yaml:"pattern"`
	Target  string `yaml:"target"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		Minify:          true,
		ShutdownTimeout: 10 * time.Second,
		Guard: Guard{
			Pattern: guard.DefaultPattern,
			Target:  "/",
		},
		Metadata: pages.DefaultMetadata(),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Metadata = cfg.Metadata.WithDefaults()
	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	if cfg.Guard.Pattern == "" {
		cfg.Guard.Pattern = guard.DefaultPattern
	}
	if cfg.Guard.Target == "" {
		cfg.Guard.Target = "/"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = Default().ShutdownTimeout
	}
	return cfg, nil
}
