// Package config loads doclens configuration from a YAML file with
// environment overrides. Precedence: flags > environment > file > defaults;
// flag handling lives in the command layer.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all doclens settings.
type Config struct {
	// DocsDir is the directory scanned for documentation files.
	DocsDir string `yaml:"docs_dir"`

	// Output is the path of the generated markdown report.
	Output string `yaml:"output"`

	// Extension selects which files are scanned (must include the dot).
	Extension string `yaml:"extension"`

	// Color toggles terminal styling of the console report.
	Color bool `yaml:"color"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DocsDir:   "docs",
		Output:    "DOCUMENT_OPTIMIZATION_REPORT.md",
		Extension: ".md",
		Color:     true,
	}
}

// Load reads configuration from a YAML file. A missing file is not an
// error: defaults apply. Environment overrides are applied afterwards.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("DOCLENS_DOCS_DIR"); dir != "" {
		c.DocsDir = dir
	}
	if out := os.Getenv("DOCLENS_OUTPUT"); out != "" {
		c.Output = out
	}
	if ext := os.Getenv("DOCLENS_EXTENSION"); ext != "" {
		c.Extension = ext
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	return nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
