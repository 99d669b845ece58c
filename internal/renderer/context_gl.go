//go:build !js

// Package renderer implements gfx.Device on top of the current OpenGL 3.3
// core context.
package renderer

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/lgl/pkg/gfx"
	"github.com/kjkrol/lgl/pkg/shader"
)

// Context forwards every call to the GL context current on the calling
// thread. It must only be used from that thread.
type Context struct{}

var _ gfx.Device = (*Context)(nil)

// New loads the GL function pointers. A context must already be current.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	return &Context{}, nil
}

// Version reports the GL and GLSL versions of the driver.
func (c *Context) Version() (glVersion, glslVersion string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
}

func shaderType(stage shader.Stage) uint32 {
	switch stage {
	case shader.Vertex:
		return gl.VERTEX_SHADER
	case shader.Fragment:
		return gl.FRAGMENT_SHADER
	}
	return 0
}

func (c *Context) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(shaderType(stage))
}

func (c *Context) ShaderSource(name uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(name, 1, csources, nil)
	free()
}

func (c *Context) CompileShader(name uint32) { gl.CompileShader(name) }

func (c *Context) ShaderCompiled(name uint32) bool {
	var status int32
	gl.GetShaderiv(name, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(name uint32) string {
	var logLength int32
	gl.GetShaderiv(name, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(name, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(name uint32) { gl.DeleteShader(name) }

func (c *Context) CreateProgram() uint32 { return gl.CreateProgram() }

func (c *Context) AttachShader(program, name uint32) { gl.AttachShader(program, name) }

func (c *Context) DetachShader(program, name uint32) { gl.DetachShader(program, name) }

func (c *Context) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (c *Context) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (c *Context) UseProgram(program uint32) { gl.UseProgram(program) }

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (c *Context) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (c *Context) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (c *Context) UniformMatrix4fv(location int32, transpose bool, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &m[0])
}

func (c *Context) GetUniformiv(program uint32, location int32) int32 {
	var v int32
	gl.GetUniformiv(program, location, &v)
	return v
}

func (c *Context) GetUniformfv(program uint32, location int32, dst []float32) {
	if len(dst) == 0 {
		return
	}
	if len(dst) == 1 {
		gl.GetUniformfv(program, location, &dst[0])
		return
	}
	// glGetUniformfv writes every component of the uniform
	var buf [16]float32
	gl.GetUniformfv(program, location, &buf[0])
	copy(dst, buf[:])
}

func (c *Context) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (c *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (c *Context) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT) }

func (c *Context) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (c *Context) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (c *Context) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (c *Context) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func bufferTarget(target gfx.BufferTarget) uint32 {
	if target == gfx.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func (c *Context) BindBuffer(target gfx.BufferTarget, buffer uint32) {
	gl.BindBuffer(bufferTarget(target), buffer)
}

func (c *Context) BufferFloat32(target gfx.BufferTarget, data []float32) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) BufferUint32(target gfx.BufferTarget, data []uint32) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (c *Context) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
}

func (c *Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func primitive(gfx.Primitive) uint32 {
	return gl.TRIANGLES
}

func (c *Context) DrawArrays(mode gfx.Primitive, first, count int32) {
	gl.DrawArrays(primitive(mode), first, count)
}

func (c *Context) DrawElements(mode gfx.Primitive, count int32) {
	gl.DrawElements(primitive(mode), count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (c *Context) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (c *Context) ActiveTexture(unit uint32) { gl.ActiveTexture(gl.TEXTURE0 + unit) }

func (c *Context) BindTexture(texture uint32) { gl.BindTexture(gl.TEXTURE_2D, texture) }

func (c *Context) TexImage2D(img *image.RGBA) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	b := img.Bounds()
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix[img.PixOffset(b.Min.X, b.Min.Y):]))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

func (c *Context) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }
