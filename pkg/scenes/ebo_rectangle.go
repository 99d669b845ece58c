package scenes

import (
	"time"

	"github.com/kjkrol/lgl/pkg/gfx"
)

// EBORectangle draws an indexed rectangle with a single-source shader.
type EBORectangle struct {
	programScene
}

func NewEBORectangle(opts Options) *EBORectangle {
	return &EBORectangle{programScene{name: "ebo_rectangle", opts: opts}}
}

func (s *EBORectangle) Init(dev gfx.Device) error {
	prog, err := s.opts.compiler(dev).LoadCombined(s.opts.shaders(), "ebo_rectangle.glsl")
	if err != nil {
		return err
	}
	s.prog = prog
	s.mesh, err = gfx.NewMesh(dev, rectangleVertices, rectangleIndices, gfx.Attrib{Size: 3})
	return err
}

func (s *EBORectangle) Draw(gfx.Device, time.Duration) { s.draw() }
