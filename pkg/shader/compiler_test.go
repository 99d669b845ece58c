package shader_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kjkrol/lgl/internal/softgl"
	"github.com/kjkrol/lgl/pkg/shader"
)

const (
	vertexSrc = `#version 330 core
layout (location = 0) in vec3 vs_Pos;
uniform mat4 u_Trans;
void main() {
  gl_Position = u_Trans * vec4(vs_Pos, 1.0);
}
`
	fragmentSrc = `#version 330 core
uniform vec4 u_Col;
uniform bool u_Flag;
uniform int tex_0;
uniform float u_Mix;
out vec4 FragColor;
void main() {
  FragColor = u_Flag ? u_Col : vec4(u_Mix);
}
`
	brokenSrc = `#version 330 core
void main() {
  gl_Position = vec4(0.0)
}
`
)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestCompileValidPair(t *testing.T) {
	gl := softgl.New()
	logger, logs := observed()

	prog, err := shader.Compile(gl, vertexSrc, fragmentSrc, shader.WithLogger(logger))
	require.NoError(t, err)
	require.True(t, prog.Valid())
	assert.NotZero(t, prog.Handle())
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())

	assert.Equal(t, 0, gl.LiveShaders(), "stage objects are released after linking")
	assert.Equal(t, 1, gl.LivePrograms())

	prog.Release()
	assert.False(t, prog.Valid())
	assert.Equal(t, 0, gl.LivePrograms())
	assert.Equal(t, softgl.NoError, gl.GetError())
}

func TestVertexCompileFailure(t *testing.T) {
	gl := softgl.New()
	logger, logs := observed()

	prog, err := shader.Compile(gl, brokenSrc, fragmentSrc, shader.WithLogger(logger))
	require.Error(t, err)
	require.NotNil(t, prog)
	assert.False(t, prog.Valid())

	var d *shader.Diagnostic
	require.True(t, errors.As(err, &d))
	assert.Equal(t, shader.ShaderCompileFailure, d.Kind)
	assert.Equal(t, shader.Vertex, d.Stage)
	assert.Regexp(t, `^compiler_test\.go:\d+$`, d.Caller.String())
	assert.Contains(t, d.Log, "0:4(1): error:")
	assert.ErrorIs(t, err, shader.ErrCompile)
	assert.NotErrorIs(t, err, shader.ErrLink)
	assert.Contains(t, err.Error(), "error compiling vertex shader in compiler_test.go:")

	// the fragment stage is never compiled and no program is created
	assert.Equal(t, softgl.Calls{CompileShader: 1}, gl.Calls())
	assert.Equal(t, 0, gl.LiveShaders())
	assert.Equal(t, 0, gl.LivePrograms())

	entries := logs.FilterMessage("shader diagnostic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "vertex", entries[0].ContextMap()["stage"])
}

func TestFragmentCompileFailure(t *testing.T) {
	gl := softgl.New()
	logger, _ := observed()

	_, err := shader.Compile(gl, vertexSrc, "#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0) }\n", shader.WithLogger(logger))

	var d *shader.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, shader.Fragment, d.Stage)
	assert.Contains(t, err.Error(), "error compiling fragment shader")
	assert.Equal(t, softgl.Calls{CompileShader: 2}, gl.Calls(), "no link after a failed stage")
	assert.Equal(t, 0, gl.LiveShaders(), "vertex stage released")
	assert.Equal(t, 0, gl.LivePrograms())
}

func TestLinkFailure(t *testing.T) {
	gl := softgl.New()
	logger, logs := observed()
	fs := "#version 330 core\nin vec3 v_Normal;\nout vec4 c;\nvoid main() { c = vec4(v_Normal, 1.0); }\n"

	prog, err := shader.Compile(gl, vertexSrc, fs, shader.WithLogger(logger))
	require.Error(t, err)
	assert.False(t, prog.Valid())
	assert.ErrorIs(t, err, shader.ErrLink)
	assert.Equal(t, softgl.Calls{CompileShader: 2, CreateProgram: 1, LinkProgram: 1}, gl.Calls())
	var d *shader.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, shader.NoStage, d.Stage, "link failures belong to no single stage")
	assert.Equal(t, "none", d.Stage.String())
	assert.Contains(t, err.Error(), "error linking shader program in compiler_test.go:")
	assert.Contains(t, err.Error(), "`v_Normal'")

	assert.Equal(t, 0, gl.LiveShaders())
	assert.Equal(t, 0, gl.LivePrograms())
	assert.Equal(t, 1, logs.FilterMessage("shader diagnostic").Len())
}

func TestInvalidProgramIsInert(t *testing.T) {
	gl := softgl.New()
	prog, err := shader.Compile(gl, brokenSrc, fragmentSrc, shader.WithLogger(zap.NewNop()))
	require.Error(t, err)

	assert.Equal(t, shader.NotFound, prog.Location("u_Col"))
	prog.SetFloat("u_Mix", 1)
	prog.Use()
	prog.Release()
	_, ok := shader.Get[float32](prog, "u_Mix")
	assert.False(t, ok)
	assert.Equal(t, softgl.NoError, gl.GetError())

	var nilProg *shader.Program
	assert.False(t, nilProg.Valid())
	assert.Zero(t, nilProg.Handle())
}

func TestUniformRoundTrip(t *testing.T) {
	gl := softgl.New()
	prog, err := shader.Compile(gl, vertexSrc, fragmentSrc, shader.WithLogger(zap.NewNop()))
	require.NoError(t, err)

	assert.Equal(t, shader.NotFound, prog.Location("u_Unknown"))
	assert.NotEqual(t, shader.NotFound, prog.Location("u_Col"))

	prog.SetBool("u_Flag", true)
	flag, ok := shader.Get[bool](prog, "u_Flag")
	require.True(t, ok)
	assert.True(t, flag)
	prog.SetBool("u_Flag", false)
	flag, _ = shader.Get[bool](prog, "u_Flag")
	assert.False(t, flag)

	prog.SetInt("tex_0", 3)
	unit, _ := shader.Get[int32](prog, "tex_0")
	assert.Equal(t, int32(3), unit)

	prog.SetFloat("u_Mix", 0.25)
	mix, _ := shader.Get[float32](prog, "u_Mix")
	assert.Equal(t, float32(0.25), mix)

	col := mgl32.Vec4{0.1, 0.2, 0.3, 1}
	prog.SetVec4("u_Col", col)
	gotCol, _ := shader.Get[mgl32.Vec4](prog, "u_Col")
	assert.Equal(t, col, gotCol)

	trans := mgl32.Translate3D(0.5, -0.5, 0).Mul4(mgl32.HomogRotate3DZ(1.2))
	shader.Set(prog, "u_Trans", trans)
	gotTrans, _ := shader.Get[mgl32.Mat4](prog, "u_Trans")
	assert.Equal(t, trans, gotTrans)

	// unknown names are ignored
	prog.SetFloat("u_Unknown", 1)
	assert.Equal(t, softgl.NoError, gl.GetError())
	assert.Equal(t, prog.Handle(), gl.CurrentProgram(), "setters bind the program")
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/basic.vs": {Data: []byte(vertexSrc)},
		"shaders/basic.fs": {Data: []byte(fragmentSrc)},
	}

	t.Run("ok", func(t *testing.T) {
		gl := softgl.New()
		prog, err := shader.Load(gl, fsys, "shaders/basic.vs", "shaders/./basic.fs", shader.WithLogger(zap.NewNop()))
		require.NoError(t, err)
		assert.True(t, prog.Valid())
	})

	t.Run("missing file", func(t *testing.T) {
		gl := softgl.New()
		logger, logs := observed()
		prog, err := shader.Load(gl, fsys, "shaders/basic.vs", "shaders/missing.fs", shader.WithLogger(logger))

		assert.False(t, prog.Valid())
		assert.ErrorIs(t, err, shader.ErrFileOpen)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		var d *shader.Diagnostic
		require.ErrorAs(t, err, &d)
		assert.Equal(t, shader.Fragment, d.Stage)
		assert.Equal(t, "shaders/missing.fs", d.Path)

		assert.Equal(t, 0, gl.LiveShaders(), "no GL object is created")
		assert.Equal(t, 0, gl.LivePrograms())
		assert.Equal(t, 1, logs.FilterMessage("shader diagnostic").Len())
	})

	t.Run("compile error names the file", func(t *testing.T) {
		gl := softgl.New()
		bad := fstest.MapFS{
			"a.vs": {Data: []byte(brokenSrc)},
			"a.fs": {Data: []byte(fragmentSrc)},
		}
		compiler := shader.NewCompiler(gl, shader.WithLogger(zap.NewNop()))
		_, err := compiler.Load(bad, "a.vs", "a.fs")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error compiling vertex shader in a.vs via compiler_test.go:")
	})
}

func TestCombined(t *testing.T) {
	src := `// rectangle
#version 330 core
#ifdef VERTEX
layout (location = 0) in vec3 vs_Pos;
void main() { gl_Position = vec4(vs_Pos, 1.0); }
#endif
#ifdef FRAGMENT
out vec4 FragColor;
void main() { FragColor = vec4(1.0, 0.5, 0.2, 1.0); }
#endif
`
	vs, frag := shader.Combined(src)
	assert.Equal(t, shader.Vertex, vs.Stage)
	assert.Equal(t, shader.Fragment, frag.Stage)
	assert.Contains(t, vs.Text, "#version 330 core\n#define VERTEX\n")
	assert.Contains(t, frag.Text, "#version 330 core\n#define FRAGMENT\n")

	gl := softgl.New()
	prog, err := shader.NewCompiler(gl, shader.WithLogger(zap.NewNop())).Compile(vs, frag)
	require.NoError(t, err)
	assert.True(t, prog.Valid())

	noVersion, _ := shader.Combined("void main() {}\n")
	assert.Equal(t, "#version 330 core\n#define VERTEX\nvoid main() {}\n", noVersion.Text)
}
