package scenes

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/lgl/pkg/gfx"
)

var colorTriangle = []float32{
	// position       color
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom left
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom right
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top center
}

// IntroShaders draws a triangle with per-vertex colors blended with a
// green that pulses over time through the u_Col uniform.
type IntroShaders struct {
	programScene
}

func NewIntroShaders(opts Options) *IntroShaders {
	return &IntroShaders{programScene{name: "intro_shaders", opts: opts}}
}

func (s *IntroShaders) Init(dev gfx.Device) error {
	prog, err := s.opts.compiler(dev).Load(s.opts.shaders(), "intro_shaders.vert.glsl", "intro_shaders.frag.glsl")
	if err != nil {
		return err
	}
	s.prog = prog
	s.mesh, err = gfx.NewMesh(dev, colorTriangle, []uint32{0, 1, 2}, gfx.Attrib{Size: 3}, gfx.Attrib{Size: 3})
	return err
}

// Pulse maps elapsed time onto [0, 1] along a sine wave.
func Pulse(elapsed time.Duration) float32 {
	return float32((math.Sin(elapsed.Seconds()) + 1) * 0.5)
}

func (s *IntroShaders) Draw(_ gfx.Device, elapsed time.Duration) {
	s.prog.SetVec4("u_Col", mgl32.Vec4{0, Pulse(elapsed), 0, 1})
	s.draw()
}
