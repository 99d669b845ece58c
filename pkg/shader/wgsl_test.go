package shader_test

import (
	"testing"

	"github.com/gogpu/naga/glsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kjkrol/lgl/internal/softgl"
	"github.com/kjkrol/lgl/pkg/shader"
)

const triangleWGSL = `@vertex
fn vs_main(@location(0) pos: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(pos, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.5, 0.2, 1.0);
}
`

func TestTranslateWGSL(t *testing.T) {
	for _, stage := range []shader.Stage{shader.Vertex, shader.Fragment} {
		t.Run(stage.String(), func(t *testing.T) {
			out, err := shader.TranslateWGSL(triangleWGSL, stage, glsl.Version330)
			require.NoError(t, err)
			assert.Contains(t, out, "#version 330 core")
			assert.Contains(t, out, "void main()")
		})
	}
}

func TestTranslateWGSLErrors(t *testing.T) {
	_, err := shader.TranslateWGSL("fn broken( {", shader.Vertex, glsl.Version330)
	assert.ErrorContains(t, err, "parse wgsl")

	vertexOnly := "@vertex\nfn vs_main() -> @builtin(position) vec4<f32> {\n    return vec4<f32>(0.0, 0.0, 0.0, 1.0);\n}\n"
	_, err = shader.TranslateWGSL(vertexOnly, shader.Fragment, glsl.Version330)
	assert.ErrorContains(t, err, "no fragment entry point")
}

func TestCompileBrokenWGSL(t *testing.T) {
	gl := softgl.New()
	compiler := shader.NewCompiler(gl, shader.WithLogger(zap.NewNop()))

	vs := shader.Source{Stage: shader.Vertex, Lang: shader.WGSL, Text: "fn broken( {", Path: "broken.wgsl"}
	prog, err := compiler.Compile(vs, shader.FragmentSource(fragmentSrc))

	assert.False(t, prog.Valid())
	assert.ErrorIs(t, err, shader.ErrCompile)
	var d *shader.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.NotNil(t, d.Err)
	assert.Equal(t, "broken.wgsl", d.Path)
	assert.Equal(t, 0, gl.LiveShaders())
	assert.Equal(t, 0, gl.LivePrograms())
}
