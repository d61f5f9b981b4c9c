package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/johns/sessmd/internal/render"
	"github.com/johns/sessmd/internal/transcript"
)

// Config holds all sessmd configuration.
type Config struct {
	Report render.ReportConfig `toml:"report"`
	Tools  ToolsConfig         `toml:"tools"`
}

type ToolsConfig struct {
	// ExtraMutating names additional tools whose invocations count as
	// file modifications, e.g. NotebookEdit.
	ExtraMutating []string `toml:"extra_mutating"`
}

// DefaultConfig returns config matching the stock report format.
func DefaultConfig() Config {
	return Config{
		Report: render.ReportConfig{
			Title:    "Claude Session Summary",
			Date:     "July 27, 2025",
			Overview: "This session focused on redesigning Patina's session management system.",
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	return cfg, nil
}

// ToolTable returns the default tool classification extended with any
// configured mutating tools.
func (c Config) ToolTable() transcript.ToolTable {
	return transcript.DefaultTools().WithMutating(c.Tools.ExtraMutating)
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "sessmd", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "sessmd", "config.toml"))
	}

	return paths
}
