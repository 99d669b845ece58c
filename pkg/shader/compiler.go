package shader

import (
	"github.com/gogpu/naga/glsl"
	"go.uber.org/zap"
)

// Compiler turns a vertex and a fragment source into a linked Program.
type Compiler struct {
	gl          GL
	logger      *zap.Logger
	glslVersion glsl.Version
}

type Option func(*Compiler)

// WithLogger sets the logger diagnostics are written to. Defaults to zap.L().
func WithLogger(l *zap.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGLSLVersion sets the GLSL version WGSL sources are translated to.
func WithGLSLVersion(v glsl.Version) Option {
	return func(c *Compiler) {
		c.glslVersion = v
	}
}

func NewCompiler(gl GL, opts ...Option) *Compiler {
	c := &Compiler{
		gl:          gl,
		logger:      zap.L(),
		glslVersion: glsl.Version330,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles and links vs and fs using a default Compiler.
func Compile(gl GL, vs, fs string, opts ...Option) (*Program, error) {
	return NewCompiler(gl, opts...).compile(VertexSource(vs), FragmentSource(fs), callerAt(1))
}

// Compile compiles vs as the vertex stage and fs as the fragment stage and
// links them. The first failure stops the remaining steps; it is logged and
// returned as a *Diagnostic together with an invalid, non-nil Program.
// Intermediate shader objects are released on every path.
func (c *Compiler) Compile(vs, fs Source) (*Program, error) {
	return c.compile(vs, fs, callerAt(1))
}

func (c *Compiler) compile(vs, fs Source, caller Caller) (*Program, error) {
	vs.Stage = Vertex
	fs.Stage = Fragment

	vsHandle, err := c.compileStage(vs, caller)
	if err != nil {
		return c.invalid(), err
	}
	fsHandle, err := c.compileStage(fs, caller)
	if err != nil {
		c.gl.DeleteShader(vsHandle)
		return c.invalid(), err
	}

	program := c.gl.CreateProgram()
	c.gl.AttachShader(program, vsHandle)
	c.gl.AttachShader(program, fsHandle)
	c.gl.LinkProgram(program)
	linked := c.gl.ProgramLinked(program)
	var infoLog string
	if !linked {
		infoLog = c.gl.ProgramInfoLog(program)
	}

	c.gl.DetachShader(program, vsHandle)
	c.gl.DetachShader(program, fsHandle)
	c.gl.DeleteShader(vsHandle)
	c.gl.DeleteShader(fsHandle)

	if !linked {
		c.gl.DeleteProgram(program)
		return c.invalid(), c.report(&Diagnostic{
			Kind:   ProgramLinkFailure,
			Caller: caller,
			Log:    infoLog,
		})
	}

	c.logger.Debug("shader program linked",
		zap.Uint32("program", program),
		zap.Stringer("caller", caller))
	return &Program{gl: c.gl, handle: program}, nil
}

func (c *Compiler) compileStage(src Source, caller Caller) (uint32, error) {
	text := src.Text
	if src.Lang == WGSL {
		translated, err := TranslateWGSL(src.Text, src.Stage, c.glslVersion)
		if err != nil {
			return 0, c.report(&Diagnostic{
				Kind:   ShaderCompileFailure,
				Stage:  src.Stage,
				Path:   src.Path,
				Caller: caller,
				Log:    err.Error(),
				Err:    err,
			})
		}
		text = translated
	}

	handle := c.gl.CreateShader(src.Stage)
	c.gl.ShaderSource(handle, text)
	c.gl.CompileShader(handle)
	if !c.gl.ShaderCompiled(handle) {
		infoLog := c.gl.ShaderInfoLog(handle)
		c.gl.DeleteShader(handle)
		return 0, c.report(&Diagnostic{
			Kind:   ShaderCompileFailure,
			Stage:  src.Stage,
			Path:   src.Path,
			Caller: caller,
			Log:    infoLog,
		})
	}
	return handle, nil
}

func (c *Compiler) report(d *Diagnostic) error {
	c.logger.Error("shader diagnostic", d.fields()...)
	return d
}

func (c *Compiler) invalid() *Program {
	return &Program{gl: c.gl}
}
