// Package config loads pngpress settings from defaults, an optional YAML
// file and PNGPRESS_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix = "pngpress"
	envDir    = "PNGPRESS_CONF_DIR"
	fileName  = "pngpress.yaml"
)

// Version ...
var Version = "dev"

// Config ...
type Config struct {
	InputRoot  string `envconfig:"INPUT_ROOT" yaml:"input_root"`
	OutputRoot string `envconfig:"OUTPUT_ROOT" yaml:"output_root"`
	Width      uint   `envconfig:"WIDTH" yaml:"width"`
	Height     uint   `envconfig:"HEIGHT" yaml:"height"`
	Develop    bool   `envconfig:"DEVELOP" yaml:"develop"`
	SentryDSN  string `envconfig:"SENTRY_DSN" yaml:"sentry_dsn"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		InputRoot:  "images",
		OutputRoot: "compressed_images",
		Width:      300,
		Height:     300,
	}
}

// Dir returns PNGPRESS_CONF_DIR, or the working directory.
func Dir() string {
	if dir := os.Getenv(envDir); dir != "" {
		return dir
	}
	dir, _ := os.Getwd()
	return dir
}

// Load reads pngpress.yaml from Dir when present, then the environment.
func Load() (*Config, error) {
	return LoadFrom(Dir())
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir string) (*Config, error) {
	c := Default()
	if err := c.readFile(filepath.Join(dir, fileName)); err != nil {
		return nil, err
	}
	if err := envconfig.Process(envPrefix, c); err != nil {
		return nil, err
	}
	if c.Width == 0 || c.Height == 0 {
		return nil, fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	return c, nil
}

func (c *Config) readFile(name string) error {
	data, err := os.ReadFile(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: %s: %w", name, err)
	}
	return nil
}
