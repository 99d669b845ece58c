// Package config reads the TOML settings of the lgl binary.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/kjkrol/lgl/pkg/gfx"
)

// DefaultFile is read when no -config flag is given.
const DefaultFile = "lgl.toml"

// DefaultScenes are shown when neither the config nor the command line
// name any.
var DefaultScenes = []string{"ebo_rectangle", "hello_triangle"}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	// FPS caps the frame rate; 0 leaves it to vsync.
	FPS int `toml:"fps"`
}

type Config struct {
	Window   Window   `toml:"window"`
	Scenes   []string `toml:"scenes"`
	LogLevel string   `toml:"log_level"`
	// ShaderDir replaces the embedded shader files of the scenes when set.
	ShaderDir  string     `toml:"shader_dir"`
	ClearColor [4]float32 `toml:"clear_color"`
}

func Default() Config {
	wc := gfx.DefaultWindowConfig()
	return Config{
		Window: Window{
			Width:  wc.Width,
			Height: wc.Height,
			Title:  wc.Title,
		},
		Scenes:     append([]string(nil), DefaultScenes...),
		LogLevel:   "info",
		ClearColor: gfx.ClearColor,
	}
}

// Read decodes r over the defaults. Unknown keys are rejected.
func Read(r io.Reader) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(bufio.NewReader(r))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return c, fmt.Errorf("config: %s", strict.String())
		}
		return c, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

// Open reads the config file at filename. A missing file yields the
// defaults when optional is true.
func Open(filename string, optional bool) (Config, error) {
	fp, err := os.Open(filename)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: %w", err)
	}
	defer fp.Close()
	return Read(fp)
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS < 0 {
		return fmt.Errorf("config: fps %d must not be negative", c.Window.FPS)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: clear_color[%d] = %v is outside [0, 1]", i, v)
		}
	}
	return nil
}

// WindowConfig converts the window table for the platform layer.
func (c Config) WindowConfig() gfx.WindowConfig {
	wc := gfx.DefaultWindowConfig()
	wc.Width = c.Window.Width
	wc.Height = c.Window.Height
	if c.Window.Title != "" {
		wc.Title = c.Window.Title
	}
	return wc
}
