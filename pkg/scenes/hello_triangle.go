package scenes

import (
	"time"

	"github.com/kjkrol/lgl/pkg/gfx"
	"github.com/kjkrol/lgl/pkg/shader"
)

const (
	helloVertex = `#version 330 core
layout (location = 0) in vec3 vs_Pos;
void main() {
  gl_Position = vec4(vs_Pos, 1.0);
}
`
	helloFragment = `#version 330 core
out vec4 out_Col;
void main() {
  out_Col = vec4(1.0, 0.5, 0.2, 1.0);
}
`
)

type Variant uint8

const (
	Triangle Variant = iota
	Rectangle
)

var (
	triangleVertices = []float32{
		-0.5, -0.5, 0.0, // bottom left
		0.5, -0.5, 0.0, // bottom right
		0.0, 0.5, 0.0, // center top
	}
	rectangleVertices = []float32{
		0.5, 0.5, 0.0, // top right
		0.5, -0.5, 0.0, // bottom right
		-0.5, -0.5, 0.0, // bottom left
		-0.5, 0.5, 0.0, // top left
	}
	rectangleIndices = []uint32{0, 1, 3, 1, 2, 3}
)

// HelloTriangle draws a flat orange triangle, or a rectangle made of two
// indexed triangles, with shaders given inline.
type HelloTriangle struct {
	programScene
	variant Variant
}

func NewHelloTriangle(opts Options, variant Variant) *HelloTriangle {
	name := "hello_triangle"
	if variant == Rectangle {
		name = "hello_rectangle"
	}
	return &HelloTriangle{programScene: programScene{name: name, opts: opts}, variant: variant}
}

func (s *HelloTriangle) Init(dev gfx.Device) error {
	prog, err := s.opts.compiler(dev).Compile(shader.VertexSource(helloVertex), shader.FragmentSource(helloFragment))
	if err != nil {
		return err
	}
	s.prog = prog

	vertices, indices := triangleVertices, []uint32(nil)
	if s.variant == Rectangle {
		vertices, indices = rectangleVertices, rectangleIndices
	}
	s.mesh, err = gfx.NewMesh(dev, vertices, indices, gfx.Attrib{Size: 3})
	return err
}

func (s *HelloTriangle) Draw(gfx.Device, time.Duration) { s.draw() }
