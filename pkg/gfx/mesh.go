package gfx

import "fmt"

// Attrib is one interleaved float attribute of a vertex.
type Attrib struct {
	Size int32
}

// Mesh is a vertex array with its vertex buffer and optional index buffer.
type Mesh struct {
	dev     Device
	vao     uint32
	vbo     uint32
	ebo     uint32
	count   int32
	indexed bool
}

// NewMesh uploads interleaved vertices laid out as layout describes, bound
// to attribute indices 0..len(layout)-1. With indices the mesh is drawn
// with DrawElements.
func NewMesh(dev Device, vertices []float32, indices []uint32, layout ...Attrib) (*Mesh, error) {
	var stride int32
	for _, a := range layout {
		if a.Size < 1 || a.Size > 4 {
			return nil, fmt.Errorf("attribute size %d out of range", a.Size)
		}
		stride += a.Size
	}
	if stride == 0 {
		return nil, fmt.Errorf("mesh needs at least one attribute")
	}
	if len(vertices) == 0 || len(vertices)%int(stride) != 0 {
		return nil, fmt.Errorf("vertex data length %d is not a multiple of stride %d", len(vertices), stride)
	}

	m := &Mesh{dev: dev}
	m.vao = dev.GenVertexArray()
	dev.BindVertexArray(m.vao)

	m.vbo = dev.GenBuffer()
	dev.BindBuffer(ArrayBuffer, m.vbo)
	dev.BufferFloat32(ArrayBuffer, vertices)

	if len(indices) > 0 {
		m.ebo = dev.GenBuffer()
		dev.BindBuffer(ElementArrayBuffer, m.ebo)
		dev.BufferUint32(ElementArrayBuffer, indices)
		m.indexed = true
		m.count = int32(len(indices))
	} else {
		m.count = int32(len(vertices)) / stride
	}

	offset := 0
	for i, a := range layout {
		dev.VertexAttribPointer(uint32(i), a.Size, stride*4, offset*4)
		dev.EnableVertexAttribArray(uint32(i))
		offset += int(a.Size)
	}
	dev.BindVertexArray(0)
	return m, nil
}

func (m *Mesh) Count() int32 {
	return m.count
}

func (m *Mesh) Draw() {
	m.dev.BindVertexArray(m.vao)
	if m.indexed {
		m.dev.DrawElements(Triangles, m.count)
	} else {
		m.dev.DrawArrays(Triangles, 0, m.count)
	}
}

// Release deletes the GPU objects. It is safe to call on a nil Mesh.
func (m *Mesh) Release() {
	if m == nil {
		return
	}
	if m.ebo != 0 {
		m.dev.DeleteBuffer(m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		m.dev.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		m.dev.DeleteVertexArray(m.vao)
		m.vao = 0
	}
}
