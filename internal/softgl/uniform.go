package softgl

import "strings"

type slotKind uint8

const (
	intSlot slotKind = iota
	floatSlot
	otherSlot
)

type uniformSlot struct {
	typ    string
	kind   slotKind
	ints   int32
	floats []float32
}

var floatComponents = map[string]int{
	"float": 1, "vec2": 2, "vec3": 3, "vec4": 4,
	"mat2": 4, "mat3": 9, "mat4": 16, "mat4x4": 16, "mat3x3": 9, "mat2x2": 4,
}

func isSampler(typ string) bool {
	return strings.HasPrefix(typ, "sampler") || strings.HasPrefix(typ, "isampler") || strings.HasPrefix(typ, "usampler")
}

func newUniformSlot(typ string) *uniformSlot {
	if n, ok := floatComponents[typ]; ok {
		return &uniformSlot{typ: typ, kind: floatSlot, floats: make([]float32, n)}
	}
	if typ == "bool" || typ == "int" || typ == "uint" || isSampler(typ) {
		return &uniformSlot{typ: typ, kind: intSlot}
	}
	return &uniformSlot{typ: typ, kind: otherSlot}
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	p, ok := c.programs[program]
	if !ok {
		c.setError(InvalidValue)
		return -1
	}
	if !p.linked {
		c.setError(InvalidOperation)
		return -1
	}
	if strings.HasPrefix(name, "gl_") {
		return -1
	}
	loc, ok := p.names[name]
	if !ok {
		return -1
	}
	return loc
}

// currentSlot resolves a location of the bound program for a uniform
// write. ok is false when the write must be ignored.
func (c *Context) currentSlot(location int32) (*uniformSlot, bool) {
	if location == -1 {
		return nil, false
	}
	p, ok := c.programs[c.current]
	if c.current == 0 || !ok {
		c.setError(InvalidOperation)
		return nil, false
	}
	slot, ok := p.slots[location]
	if !ok {
		c.setError(InvalidOperation)
		return nil, false
	}
	return slot, true
}

func (c *Context) Uniform1i(location int32, v int32) {
	slot, ok := c.currentSlot(location)
	if !ok {
		return
	}
	if slot.kind != intSlot {
		c.setError(InvalidOperation)
		return
	}
	if slot.typ == "bool" && v != 0 {
		v = 1
	}
	slot.ints = v
}

func (c *Context) Uniform1f(location int32, v float32) {
	c.writeFloats(location, "float", v)
}

func (c *Context) Uniform4f(location int32, x, y, z, w float32) {
	c.writeFloats(location, "vec4", x, y, z, w)
}

func (c *Context) UniformMatrix4fv(location int32, transpose bool, m *[16]float32) {
	values := *m
	if transpose {
		for col := 0; col < 4; col++ {
			for row := 0; row < 4; row++ {
				values[col*4+row] = m[row*4+col]
			}
		}
	}
	c.writeFloats(location, "mat4", values[:]...)
}

func (c *Context) writeFloats(location int32, typ string, values ...float32) {
	slot, ok := c.currentSlot(location)
	if !ok {
		return
	}
	if slot.kind != floatSlot || len(slot.floats) != len(values) || (slot.typ != typ && !(typ == "mat4" && slot.typ == "mat4x4")) {
		c.setError(InvalidOperation)
		return
	}
	copy(slot.floats, values)
}

func (c *Context) programSlot(program uint32, location int32) (*uniformSlot, bool) {
	p, ok := c.programs[program]
	if !ok {
		c.setError(InvalidValue)
		return nil, false
	}
	if !p.linked {
		c.setError(InvalidOperation)
		return nil, false
	}
	slot, ok := p.slots[location]
	if !ok || slot.kind == otherSlot {
		c.setError(InvalidOperation)
		return nil, false
	}
	return slot, true
}

func (c *Context) GetUniformiv(program uint32, location int32) int32 {
	slot, ok := c.programSlot(program, location)
	if !ok {
		return 0
	}
	if slot.kind == intSlot {
		return slot.ints
	}
	return int32(slot.floats[0])
}

func (c *Context) GetUniformfv(program uint32, location int32, dst []float32) {
	slot, ok := c.programSlot(program, location)
	if !ok {
		return
	}
	if slot.kind == intSlot {
		if len(dst) > 0 {
			dst[0] = float32(slot.ints)
		}
		return
	}
	copy(dst, slot.floats)
}
