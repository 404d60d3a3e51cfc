// Package config loads sheen's own configuration file.
//
// The file is YAML, located at <user config dir>/sheen/config.yaml.
// A missing file is not an error — every field has a default derived
// from the standard user directories — but a present-and-malformed
// file is, so typos fail loudly instead of silently regenerating
// artifacts into the wrong place.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/sheen/internal/model"
)

// Config holds sheen's settings. YAML keys use snake_case.
type Config struct {
	// OutputDir is where generated artifacts are written.
	// Default: <user config dir>/sheen/themes.
	OutputDir string `yaml:"output_dir"`

	// UpstreamConfigDir is the upstream tool's config directory,
	// searched for theme selection and theme definitions.
	// Default: <user config dir>/opencode.
	UpstreamConfigDir string `yaml:"upstream_config_dir"`

	// StateDir is the upstream state directory holding the KV store.
	// Default: $XDG_STATE_HOME, falling back to ~/.local/state.
	StateDir string `yaml:"state_dir"`

	// SharePaths are extra theme search directories.
	// Default: /usr/local/share/opencode/themes.
	SharePaths []string `yaml:"share_paths"`

	// Dialects are the shells to generate integration scripts for.
	// Default: all supported dialects.
	Dialects []model.Dialect `yaml:"dialects"`
}

// DefaultPath returns the standard location of the config file.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining user config dir: %w", err)
	}
	return filepath.Join(configDir, "sheen", "config.yaml"), nil
}

// Load reads the config file at path. A nonexistent file yields the
// defaults; any other read or parse failure is an error.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults()
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := defaults()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// defaults builds a Config from the standard user directories.
func defaults() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("determining user config dir: %w", err)
	}

	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determining home dir: %w", err)
		}
		stateDir = filepath.Join(home, ".local", "state")
	}

	return &Config{
		OutputDir:         filepath.Join(configDir, "sheen", "themes"),
		UpstreamConfigDir: filepath.Join(configDir, "opencode"),
		StateDir:          stateDir,
		SharePaths:        []string{"/usr/local/share/opencode/themes"},
		Dialects:          model.AllDialects(),
	}, nil
}

// validate rejects configs that would misbehave later: empty paths
// and unsupported dialects.
func (c *Config) validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.UpstreamConfigDir == "" {
		return fmt.Errorf("upstream_config_dir must not be empty")
	}
	if len(c.Dialects) == 0 {
		return fmt.Errorf("dialects must not be empty")
	}
	for _, d := range c.Dialects {
		if !d.IsValid() {
			return fmt.Errorf("unsupported dialect %q in dialects (valid: zsh, bash)", d)
		}
	}
	return nil
}
