// Package config loads tool configuration from an optional TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DrawIO holds defaults for generated draw.io files.
type DrawIO struct {
	PageName   string  `toml:"page_name"`
	PageWidth  float64 `toml:"page_width"`
	PageHeight float64 `toml:"page_height"`
}

// Excalidraw holds defaults for generated Excalidraw scenes.
type Excalidraw struct {
	// Seed fixes element seeds and nonces for reproducible output.
	// Zero means seed from the clock.
	Seed uint64 `toml:"seed"`
}

// SVG holds defaults for rendered SVG output.
type SVG struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Config is the top-level tool configuration.
type Config struct {
	DrawIO     DrawIO     `toml:"drawio"`
	Excalidraw Excalidraw `toml:"excalidraw"`
	SVG        SVG        `toml:"svg"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DrawIO: DrawIO{
			PageName:   "Page-1",
			PageWidth:  850,
			PageHeight: 1100,
		},
		SVG: SVG{
			Width:  800,
			Height: 600,
		},
	}
}

// Load reads the configuration at path, layered over the defaults. A
// missing file is not an error; empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
