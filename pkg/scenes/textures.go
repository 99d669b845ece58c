package scenes

import (
	"image/color"
	"time"

	"github.com/kjkrol/lgl/pkg/gfx"
)

var texturedQuad = []float32{
	// position       color          uv
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
}

var texturedLayout = []gfx.Attrib{{Size: 3}, {Size: 3}, {Size: 2}}

// Textures draws a quad blending two generated textures bound to units 0
// and 1.
type Textures struct {
	programScene
	vertexShader string
	textures     [2]uint32
}

func NewTextures(opts Options) *Textures {
	return &Textures{
		programScene: programScene{name: "textures", opts: opts},
		vertexShader: "textures.vert.glsl",
	}
}

func (s *Textures) Init(dev gfx.Device) error {
	prog, err := s.opts.compiler(dev).Load(s.opts.shaders(), s.vertexShader, "textures.frag.glsl")
	if err != nil {
		return err
	}
	s.prog = prog
	s.mesh, err = gfx.NewMesh(dev, texturedQuad, rectangleIndices, texturedLayout...)
	if err != nil {
		return err
	}

	s.textures[0] = uploadTexture(dev, 0, Checkerboard(color.RGBA{R: 181, G: 136, B: 99, A: 255}, color.RGBA{R: 240, G: 217, B: 181, A: 255}))
	s.textures[1] = uploadTexture(dev, 1, Ring(color.RGBA{R: 255, G: 204, B: 0, A: 255}))

	s.prog.SetInt("tex_0", 0)
	s.prog.SetInt("tex_1", 1)
	return nil
}

func (s *Textures) bindTextures(dev gfx.Device) {
	for unit, tex := range s.textures {
		dev.ActiveTexture(uint32(unit))
		dev.BindTexture(tex)
	}
}

func (s *Textures) Draw(dev gfx.Device, _ time.Duration) {
	s.bindTextures(dev)
	s.draw()
}

func (s *Textures) Close(dev gfx.Device) {
	for i, tex := range s.textures {
		if tex != 0 {
			dev.DeleteTexture(tex)
			s.textures[i] = 0
		}
	}
	s.programScene.Close(dev)
}
