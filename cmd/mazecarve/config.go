// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the maze parameters, read from flags and an optional YAML file.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
	Solve  bool  `yaml:"solve"`
}

// defaultConfig is used for anything neither the file nor the flags set.
func defaultConfig() Config {
	return Config{Width: 16, Height: 8}
}

// loadConfig decodes path over the defaults. Unknown keys are rejected; an
// empty file keeps the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}

	return cfg, nil
}

// validate rejects dimensions the grid builder cannot use.
func (c Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}

	return nil
}
