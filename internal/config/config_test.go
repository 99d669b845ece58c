package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, 600, c.Window.Height)
	assert.Equal(t, "lgl", c.Window.Title)
	assert.Equal(t, []string{"ebo_rectangle", "hello_triangle"}, c.Scenes)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1}, c.ClearColor)
	assert.NoError(t, c.Validate())

	c.Scenes[0] = "changed"
	assert.Equal(t, "ebo_rectangle", DefaultScenes[0])
}

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader(`
scenes = ["textures", "transformations"]
log_level = "debug"
shader_dir = "assets/shaders"

[window]
width = 1024
height = 768
fps = 60
`))
	require.NoError(t, err)
	assert.Equal(t, 1024, c.Window.Width)
	assert.Equal(t, 768, c.Window.Height)
	assert.Equal(t, "lgl", c.Window.Title, "unset keys keep their default")
	assert.Equal(t, 60, c.Window.FPS)
	assert.Equal(t, []string{"textures", "transformations"}, c.Scenes)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "assets/shaders", c.ShaderDir)

	wc := c.WindowConfig()
	assert.Equal(t, 1024, wc.Width)
	assert.Equal(t, 3, wc.GLMajor)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"unknown key", "[window]\ndepth = 24\n", "depth"},
		{"bad size", "[window]\nwidth = 0\n", "window size 0x600"},
		{"negative fps", "[window]\nfps = -1\n", "fps -1"},
		{"color range", "clear_color = [0.2, 0.3, 2.0, 1.0]\n", "clear_color[2]"},
		{"syntax", "scenes = [\n", "config:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.doc))
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, DefaultFile)

	c, err := Open(missing, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Open(missing, false)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(missing, []byte("[window]\ntitle = \"demo\"\n"), 0o644))
	c, err = Open(missing, false)
	require.NoError(t, err)
	assert.Equal(t, "demo", c.WindowConfig().Title)
}
