package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kjkrol/lgl/internal/softgl"
	"github.com/kjkrol/lgl/pkg/gfx"
	"github.com/kjkrol/lgl/pkg/shader"
)

const (
	meshVertex = `#version 330 core
layout (location = 0) in vec3 vs_Pos;
layout (location = 1) in vec2 vs_UV;
out vec2 fs_UV;
void main() {
  fs_UV = vs_UV;
  gl_Position = vec4(vs_Pos, 1.0);
}
`
	meshFragment = `#version 330 core
in vec2 fs_UV;
out vec4 out_Col;
void main() {
  out_Col = vec4(fs_UV, 0.0, 1.0);
}
`
)

func TestMeshLayoutErrors(t *testing.T) {
	dev := softgl.New()
	_, err := gfx.NewMesh(dev, []float32{0, 0, 0}, nil)
	assert.ErrorContains(t, err, "at least one attribute")

	_, err = gfx.NewMesh(dev, []float32{0, 0, 0}, nil, gfx.Attrib{Size: 5})
	assert.ErrorContains(t, err, "attribute size 5")

	_, err = gfx.NewMesh(dev, []float32{0, 0, 0, 0}, nil, gfx.Attrib{Size: 3})
	assert.ErrorContains(t, err, "not a multiple of stride 3")
	assert.Zero(t, dev.LiveObjects())
}

func TestMeshDraw(t *testing.T) {
	dev := softgl.New()
	prog, err := shader.Compile(dev, meshVertex, meshFragment, shader.WithLogger(zap.NewNop()))
	require.NoError(t, err)

	vertices := []float32{
		0, 0, 0, 0, 0,
		1, 0, 0, 1, 0,
		0, 1, 0, 0, 1,
		1, 1, 0, 1, 1,
	}
	arrays, err := gfx.NewMesh(dev, vertices, nil, gfx.Attrib{Size: 3}, gfx.Attrib{Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(4), arrays.Count())

	indexed, err := gfx.NewMesh(dev, vertices, []uint32{0, 1, 2, 2, 1, 3}, gfx.Attrib{Size: 3}, gfx.Attrib{Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(6), indexed.Count())

	prog.Use()
	arrays.Draw()
	indexed.Draw()
	require.Equal(t, softgl.NoError, dev.GetError())

	draws := dev.Draws()
	require.Len(t, draws, 2)
	assert.False(t, draws[0].Indexed)
	assert.Equal(t, int32(4), draws[0].Count)
	assert.True(t, draws[1].Indexed)
	assert.Equal(t, int32(6), draws[1].Count)

	arrays.Release()
	indexed.Release()
	indexed.Release()
	var nilMesh *gfx.Mesh
	nilMesh.Release()
	assert.Zero(t, dev.LiveObjects())
}
