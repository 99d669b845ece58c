package shader

// GL is the part of an OpenGL context the compiler and programs talk to.
// A GL value is bound to one context and must only be used from the thread
// that owns it.
type GL interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// GetUniformLocation returns -1 when name is not an active uniform.
	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4fv(location int32, transpose bool, m *[16]float32)
	GetUniformiv(program uint32, location int32) int32
	GetUniformfv(program uint32, location int32, dst []float32)
}
