package softgl

import (
	"image"

	"github.com/kjkrol/lgl/pkg/gfx"
)

type buffer struct {
	floats []float32
	uints  []uint32
}

type attrib struct {
	buffer  uint32
	size    int32
	stride  int32
	offset  int
	enabled bool
}

type vertexArray struct {
	attribs  map[uint32]*attrib
	elements uint32
}

// Draw records one draw call.
type Draw struct {
	Mode    gfx.Primitive
	First   int32
	Count   int32
	Indexed bool
	Program uint32
	VAO     uint32
	// Textures maps texture units to the texture bound there.
	Textures map[uint32]uint32
}

// Texture is the image uploaded to a texture object.
type Texture struct {
	Width, Height int
	Pix           []uint8
}

type device struct {
	lastObject uint32
	buffers    map[uint32]*buffer
	vaos       map[uint32]*vertexArray
	textures   map[uint32]*Texture
	units      map[uint32]uint32

	boundArray uint32
	boundVAO   uint32
	activeUnit uint32
	clearColor [4]float32
	viewport   [4]int32
	clears     int
	draws      []Draw
}

func newDevice() device {
	return device{
		buffers:  make(map[uint32]*buffer),
		vaos:     make(map[uint32]*vertexArray),
		textures: make(map[uint32]*Texture),
		units:    make(map[uint32]uint32),
	}
}

func (d *device) genObject() uint32 {
	d.lastObject++
	return d.lastObject
}

// Draws returns the draw calls recorded so far.
func (c *Context) Draws() []Draw { return c.draws }

// Clears is the number of Clear calls.
func (c *Context) Clears() int { return c.clears }

func (c *Context) ClearColorValue() [4]float32 { return c.clearColor }

func (c *Context) ViewportValue() [4]int32 { return c.viewport }

// TextureImage returns the image uploaded to texture, if any.
func (c *Context) TextureImage(texture uint32) (*Texture, bool) {
	t, ok := c.textures[texture]
	return t, ok && t != nil
}

// LiveObjects counts buffers, vertex arrays and textures not yet deleted.
func (c *Context) LiveObjects() int {
	return len(c.buffers) + len(c.vaos) + len(c.textures)
}

func (c *Context) Viewport(x, y, width, height int32) {
	if width < 0 || height < 0 {
		c.setError(InvalidValue)
		return
	}
	c.viewport = [4]int32{x, y, width, height}
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = [4]float32{clamp(r), clamp(g), clamp(b), clamp(a)}
}

func clamp(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func (c *Context) Clear() { c.clears++ }

func (c *Context) GenVertexArray() uint32 {
	name := c.genObject()
	c.vaos[name] = &vertexArray{attribs: make(map[uint32]*attrib)}
	return name
}

func (c *Context) BindVertexArray(vao uint32) {
	if _, ok := c.vaos[vao]; vao != 0 && !ok {
		c.setError(InvalidOperation)
		return
	}
	c.boundVAO = vao
}

func (c *Context) DeleteVertexArray(vao uint32) {
	delete(c.vaos, vao)
	if c.boundVAO == vao {
		c.boundVAO = 0
	}
}

func (c *Context) GenBuffer() uint32 {
	name := c.genObject()
	c.buffers[name] = &buffer{}
	return name
}

func (c *Context) BindBuffer(target gfx.BufferTarget, name uint32) {
	if _, ok := c.buffers[name]; name != 0 && !ok {
		c.setError(InvalidOperation)
		return
	}
	switch target {
	case gfx.ArrayBuffer:
		c.boundArray = name
	case gfx.ElementArrayBuffer:
		vao, ok := c.vaos[c.boundVAO]
		if !ok {
			c.setError(InvalidOperation)
			return
		}
		vao.elements = name
	default:
		c.setError(InvalidEnum)
	}
}

func (c *Context) bound(target gfx.BufferTarget) *buffer {
	switch target {
	case gfx.ArrayBuffer:
		return c.buffers[c.boundArray]
	case gfx.ElementArrayBuffer:
		if vao, ok := c.vaos[c.boundVAO]; ok {
			return c.buffers[vao.elements]
		}
	}
	return nil
}

func (c *Context) BufferFloat32(target gfx.BufferTarget, data []float32) {
	b := c.bound(target)
	if b == nil {
		c.setError(InvalidOperation)
		return
	}
	b.floats, b.uints = append([]float32(nil), data...), nil
}

func (c *Context) BufferUint32(target gfx.BufferTarget, data []uint32) {
	b := c.bound(target)
	if b == nil {
		c.setError(InvalidOperation)
		return
	}
	b.uints, b.floats = append([]uint32(nil), data...), nil
}

func (c *Context) DeleteBuffer(name uint32) {
	delete(c.buffers, name)
	if c.boundArray == name {
		c.boundArray = 0
	}
	for _, vao := range c.vaos {
		if vao.elements == name {
			vao.elements = 0
		}
	}
}

func (c *Context) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	vao, ok := c.vaos[c.boundVAO]
	if !ok || c.boundArray == 0 {
		c.setError(InvalidOperation)
		return
	}
	if size < 1 || size > 4 || stride < 0 || offset < 0 {
		c.setError(InvalidValue)
		return
	}
	a := vao.attrib(index)
	a.buffer, a.size, a.stride, a.offset = c.boundArray, size, stride, offset
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	vao, ok := c.vaos[c.boundVAO]
	if !ok {
		c.setError(InvalidOperation)
		return
	}
	vao.attrib(index).enabled = true
}

func (v *vertexArray) attrib(index uint32) *attrib {
	a, ok := v.attribs[index]
	if !ok {
		a = &attrib{}
		v.attribs[index] = a
	}
	return a
}

// vertices is the number of whole vertices every enabled attribute can
// supply.
func (c *Context) vertices(vao *vertexArray) int {
	n := -1
	for _, a := range vao.attribs {
		if !a.enabled {
			continue
		}
		b, ok := c.buffers[a.buffer]
		if !ok {
			return 0
		}
		stride := int(a.stride)
		if stride == 0 {
			stride = int(a.size) * 4
		}
		total := len(b.floats) * 4
		avail := 0
		if end := a.offset + int(a.size)*4; total >= end {
			avail = (total-end)/stride + 1
		}
		if n < 0 || avail < n {
			n = avail
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

func (c *Context) drawable() (*vertexArray, bool) {
	if c.current == 0 {
		c.setError(InvalidOperation)
		return nil, false
	}
	vao, ok := c.vaos[c.boundVAO]
	if !ok {
		c.setError(InvalidOperation)
		return nil, false
	}
	return vao, true
}

func (c *Context) DrawArrays(mode gfx.Primitive, first, count int32) {
	if mode != gfx.Triangles {
		c.setError(InvalidEnum)
		return
	}
	vao, ok := c.drawable()
	if !ok {
		return
	}
	if first < 0 || count < 0 {
		c.setError(InvalidValue)
		return
	}
	if int(first+count) > c.vertices(vao) {
		c.setError(InvalidOperation)
		return
	}
	c.record(Draw{Mode: mode, First: first, Count: count})
}

func (c *Context) DrawElements(mode gfx.Primitive, count int32) {
	if mode != gfx.Triangles {
		c.setError(InvalidEnum)
		return
	}
	vao, ok := c.drawable()
	if !ok {
		return
	}
	if count < 0 {
		c.setError(InvalidValue)
		return
	}
	elements, ok := c.buffers[vao.elements]
	if !ok || int(count) > len(elements.uints) {
		c.setError(InvalidOperation)
		return
	}
	limit := c.vertices(vao)
	for _, idx := range elements.uints[:count] {
		if int(idx) >= limit {
			c.setError(InvalidOperation)
			return
		}
	}
	c.record(Draw{Mode: mode, Count: count, Indexed: true})
}

func (c *Context) record(d Draw) {
	d.Program, d.VAO = c.current, c.boundVAO
	d.Textures = make(map[uint32]uint32, len(c.units))
	for unit, tex := range c.units {
		if tex != 0 {
			d.Textures[unit] = tex
		}
	}
	c.draws = append(c.draws, d)
}

func (c *Context) GenTexture() uint32 {
	name := c.genObject()
	c.textures[name] = nil
	return name
}

func (c *Context) ActiveTexture(unit uint32) {
	if unit > 31 {
		c.setError(InvalidEnum)
		return
	}
	c.activeUnit = unit
}

func (c *Context) BindTexture(texture uint32) {
	if _, ok := c.textures[texture]; texture != 0 && !ok {
		c.setError(InvalidOperation)
		return
	}
	c.units[c.activeUnit] = texture
}

func (c *Context) TexImage2D(img *image.RGBA) {
	name := c.units[c.activeUnit]
	if name == 0 {
		c.setError(InvalidOperation)
		return
	}
	if img == nil {
		c.setError(InvalidValue)
		return
	}
	b := img.Bounds()
	pix := make([]uint8, 0, b.Dx()*b.Dy()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := img.PixOffset(b.Min.X, y)
		pix = append(pix, img.Pix[start:start+b.Dx()*4]...)
	}
	c.textures[name] = &Texture{Width: b.Dx(), Height: b.Dy(), Pix: pix}
}

func (c *Context) DeleteTexture(texture uint32) {
	delete(c.textures, texture)
	for unit, tex := range c.units {
		if tex == texture {
			c.units[unit] = 0
		}
	}
}
