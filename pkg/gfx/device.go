package gfx

import (
	"image"

	"github.com/kjkrol/lgl/pkg/shader"
)

type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Primitive is the assembly mode of a draw call. Meshes are always
// triangle lists.
type Primitive uint8

const Triangles Primitive = 0

// Device is the GL context scenes draw with. It extends shader.GL with the
// buffer, vertex array, texture and draw calls the scenes need. All
// vertex attributes are float32 and all indices uint32.
type Device interface {
	shader.GL

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	// Clear clears the color buffer.
	Clear()

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferFloat32(target BufferTarget, data []float32)
	BufferUint32(target BufferTarget, data []uint32)
	DeleteBuffer(buffer uint32)

	// VertexAttribPointer describes attribute index of the bound array
	// buffer. stride and offset are in bytes.
	VertexAttribPointer(index uint32, size, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	DrawArrays(mode Primitive, first, count int32)
	DrawElements(mode Primitive, count int32)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(texture uint32)
	// TexImage2D uploads img to the texture bound to the active unit and
	// generates its mipmaps.
	TexImage2D(img *image.RGBA)
	DeleteTexture(texture uint32)
}
