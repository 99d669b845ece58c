package scenes

import (
	"time"

	"github.com/kjkrol/lgl/pkg/gfx"
)

// WGSLTriangle draws the hello triangle from a WGSL module holding both
// entry points, translated to GLSL when the program is built.
type WGSLTriangle struct {
	programScene
}

func NewWGSLTriangle(opts Options) *WGSLTriangle {
	return &WGSLTriangle{programScene{name: "wgsl_triangle", opts: opts}}
}

func (s *WGSLTriangle) Init(dev gfx.Device) error {
	prog, err := s.opts.compiler(dev).Load(s.opts.shaders(), "triangle.wgsl", "triangle.wgsl")
	if err != nil {
		return err
	}
	s.prog = prog
	s.mesh, err = gfx.NewMesh(dev, triangleVertices, nil, gfx.Attrib{Size: 3})
	return err
}

func (s *WGSLTriangle) Draw(gfx.Device, time.Duration) { s.draw() }
