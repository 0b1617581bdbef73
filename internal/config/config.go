package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the workspace settings for the analyzer CLI.
type Config struct {
	// Language is the default language code for analysis.
	Language string `yaml:"language"`
	// MaxTextLength caps analyzed text in characters.
	MaxTextLength int `yaml:"max_text_length"`
	// TopWords is how many ranked rare words to persist per saved analysis.
	TopWords int `yaml:"top_words"`
	// Workers bounds batch concurrency; 0 means NumCPU.
	Workers int `yaml:"workers"`
}

func Default() *Config {
	return &Config{
		Language:      "en",
		MaxTextLength: 100000,
		TopWords:      20,
		Workers:       0,
	}
}

// Load reads the config at path. A missing file yields defaults;
// malformed yaml is an error. Unset fields fall back to defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.Language == "" {
		c.Language = Default().Language
	}
	if c.MaxTextLength <= 0 {
		c.MaxTextLength = Default().MaxTextLength
	}
	if c.TopWords <= 0 {
		c.TopWords = Default().TopWords
	}
	if c.Workers < 0 {
		c.Workers = 0
	}
	return c, nil
}

// Save writes the config to path.
func Save(path string, c *Config) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
