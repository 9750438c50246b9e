// Package config loads console configuration and watches it for changes.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the console configuration.
type Config struct {
	// Prompt is the input prompt string.
	Prompt string `toml:"prompt"`

	// ScriptDir is the directory of Lua command scripts.
	ScriptDir string `toml:"script_dir"`

	// Aliases maps an alias name to the command line it expands to. Each
	// alias is registered as a single-literal command.
	Aliases map[string]string `toml:"alias"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Prompt: "> ",
	}
}

// Load reads a TOML configuration file. A missing file is not an error; the
// defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	return cfg, nil
}
