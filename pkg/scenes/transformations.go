package scenes

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/lgl/pkg/gfx"
)

// Transformations is the textures scene moved to the lower right corner
// and spun around the z axis through the u_Trans matrix.
type Transformations struct {
	Textures
}

func NewTransformations(opts Options) *Transformations {
	return &Transformations{Textures{
		programScene: programScene{name: "transformations", opts: opts},
		vertexShader: "transformations.vert.glsl",
	}}
}

// Transform translates by (0.5, -0.5, 0) after rotating elapsed seconds
// around z.
func Transform(elapsed time.Duration) mgl32.Mat4 {
	trans := mgl32.Translate3D(0.5, -0.5, 0)
	return trans.Mul4(mgl32.HomogRotate3DZ(float32(elapsed.Seconds())))
}

func (s *Transformations) Draw(dev gfx.Device, elapsed time.Duration) {
	s.bindTextures(dev)
	s.prog.SetMat4("u_Trans", Transform(elapsed))
	s.draw()
}
