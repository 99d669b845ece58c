// Package scenes holds the tutorial scenes: each one builds its shader
// program through pkg/shader and draws with a gfx.Device.
package scenes

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"go.uber.org/zap"

	"github.com/kjkrol/lgl/pkg/gfx"
	"github.com/kjkrol/lgl/pkg/shader"
)

//go:embed shaders
var embedded embed.FS

// Shaders is the embedded shader directory.
func Shaders() fs.FS {
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		panic(err)
	}
	return sub
}

type Options struct {
	// Shaders replaces the embedded shader files, e.g. with os.DirFS.
	Shaders fs.FS
	Logger  *zap.Logger
}

func (o Options) shaders() fs.FS {
	if o.Shaders != nil {
		return o.Shaders
	}
	return Shaders()
}

func (o Options) compiler(dev gfx.Device) *shader.Compiler {
	return shader.NewCompiler(dev, shader.WithLogger(o.Logger))
}

var registry = map[string]func(Options) gfx.Scene{
	"hello_triangle":  func(o Options) gfx.Scene { return NewHelloTriangle(o, Triangle) },
	"hello_rectangle": func(o Options) gfx.Scene { return NewHelloTriangle(o, Rectangle) },
	"ebo_rectangle":   func(o Options) gfx.Scene { return NewEBORectangle(o) },
	"intro_shaders":   func(o Options) gfx.Scene { return NewIntroShaders(o) },
	"textures":        func(o Options) gfx.Scene { return NewTextures(o) },
	"transformations": func(o Options) gfx.Scene { return NewTransformations(o) },
	"wgsl_triangle":   func(o Options) gfx.Scene { return NewWGSLTriangle(o) },
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string, opts Options) (gfx.Scene, bool) {
	newScene, ok := registry[name]
	if !ok {
		return nil, false
	}
	return newScene(opts), true
}

// Select resolves names in order.
func Select(names []string, opts Options) ([]gfx.Scene, error) {
	selected := make([]gfx.Scene, 0, len(names))
	for _, name := range names {
		scene, ok := Lookup(name, opts)
		if !ok {
			return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
		}
		selected = append(selected, scene)
	}
	return selected, nil
}

// All returns every scene in Names order.
func All(opts Options) []gfx.Scene {
	all, _ := Select(Names(), opts)
	return all
}

// programScene is the state every scene shares: one program and one mesh.
type programScene struct {
	name string
	opts Options
	prog *shader.Program
	mesh *gfx.Mesh
}

func (s *programScene) Name() string { return s.name }

func (s *programScene) Close(gfx.Device) {
	s.mesh.Release()
	s.mesh = nil
	if s.prog != nil {
		s.prog.Release()
		s.prog = nil
	}
}

func (s *programScene) draw() {
	s.prog.Use()
	s.mesh.Draw()
}
