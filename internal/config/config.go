// ABOUTME: YAML configuration for the linekit demo REPL.
// ABOUTME: Resolves ~/.linekit paths and merges file values over defaults.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings for the prompt.
type Config struct {
	// Multiline enables soft newlines (Alt+Enter).
	Multiline bool `yaml:"multiline"`
	// Prompt is the glyph shown before the input line.
	Prompt string `yaml:"prompt"`
	// Placeholder is the dim hint shown while the buffer is empty.
	Placeholder string `yaml:"placeholder"`
	// HistoryFile is the path history is persisted to.
	HistoryFile string `yaml:"historyFile"`
	// HistoryLimit caps the number of persisted entries.
	HistoryLimit int `yaml:"historyLimit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Multiline:    true,
		Prompt:       "❯ ",
		Placeholder:  "Type a command, / for completions",
		HistoryFile:  filepath.Join(Dir(), "history"),
		HistoryLimit: 500,
	}
}

// Dir returns the linekit config directory (~/.linekit).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".linekit"
	}
	return filepath.Join(home, ".linekit")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// KeybindingsPath returns the default keybindings file path.
func KeybindingsPath() string {
	return filepath.Join(Dir(), "keybindings.json")
}

// Load reads the config file at path, layered over Default. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = Default().HistoryLimit
	}
	return cfg, nil
}
