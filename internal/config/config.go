// Package config provides the configuration loader for hnwords.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up when no --config flag is
// given.
const DefaultFileName = "hnwords.yaml"

// Config is the hnwords configuration file.
type Config struct {
	// Input is the path of the JSON dump to analyse.
	Input string `yaml:"input"`
	// Top caps the keyword ranking length.
	Top int `yaml:"top"`
	// MinPoints and MinComments are the exclusive popularity thresholds.
	MinPoints   int `yaml:"minPoints"`
	MinComments int `yaml:"minComments"`
	// ExcludePrefix drops stories whose title starts with it.
	ExcludePrefix string `yaml:"excludePrefix"`
	// StopWords are counted out in addition to the built-in set.
	StopWords []string `yaml:"stopWords"`
	// Graph is an optional path for the rendered task graph.
	Graph string `yaml:"graph"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input:         "hn_stories.json",
		Top:           100,
		MinPoints:     50,
		MinComments:   1,
		ExcludePrefix: "Ask HN",
	}
}

// Load reads a configuration file and fills unset values with defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "unable to read config file %s", path)
	}

	var file Config
	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return cfg, errors.Wrapf(err, "unable to parse config file %s", path)
	}

	if file.Input != "" {
		cfg.Input = file.Input
	}
	if file.Top != 0 {
		cfg.Top = file.Top
	}
	if file.MinPoints != 0 {
		cfg.MinPoints = file.MinPoints
	}
	if file.MinComments != 0 {
		cfg.MinComments = file.MinComments
	}
	if file.ExcludePrefix != "" {
		cfg.ExcludePrefix = file.ExcludePrefix
	}
	cfg.StopWords = file.StopWords
	cfg.Graph = file.Graph

	return cfg, cfg.Validate()
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input must be set")
	}
	if c.Top <= 0 {
		return errors.New("top must be greater than 0")
	}
	if c.MinPoints < 0 || c.MinComments < 0 {
		return errors.New("popularity thresholds must not be negative")
	}

	return nil
}
