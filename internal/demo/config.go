// Package demo opens a glfw window with a GL context for the examples.
package demo

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the demo window.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// GL is the requested core profile version as major, minor.
	GL         [2]int   `yaml:"gl"`
	VSync      bool     `yaml:"vsync"`
	Resizable  bool     `yaml:"resizable"`
	ClearColor [4]uint8 `yaml:"clear_color"`
	Debug      bool     `yaml:"debug"`
}

func DefaultConfig(title string) Config {
	return Config{
		Title:      title,
		Width:      960,
		Height:     720,
		GL:         [2]int{4, 1},
		VSync:      true,
		Resizable:  true,
		ClearColor: [4]uint8{255, 255, 255, 255},
	}
}

// LoadConfig overlays the YAML file at path onto def. A missing file is not
// an error.
func LoadConfig(path string, def Config) (Config, error) {
	if path == "" {
		return def, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return def, nil
	} else if err != nil {
		return def, err
	}
	cfg := def
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return def, fmt.Errorf("demo: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return def, fmt.Errorf("demo: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d", c.Width, c.Height)
	}
	if c.GL[0] < 3 || (c.GL[0] == 3 && c.GL[1] < 2) {
		return fmt.Errorf("GL %d.%d has no core profile", c.GL[0], c.GL[1])
	}
	return nil
}

func (c Config) Clear() color.Color {
	return color.NRGBA{R: c.ClearColor[0], G: c.ClearColor[1], B: c.ClearColor[2], A: c.ClearColor[3]}
}
