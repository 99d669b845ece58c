package shader

import "github.com/go-gl/mathgl/mgl32"

// Location is a uniform location inside a program.
type Location int32

// NotFound is returned for names that are not active uniforms.
const NotFound Location = -1

// Value lists the Go types a uniform can be set from.
type Value interface {
	bool | int32 | float32 | mgl32.Vec4 | mgl32.Mat4
}

// Location looks the uniform up by name. Lookups are not cached.
func (p *Program) Location(name string) Location {
	if !p.Valid() {
		return NotFound
	}
	loc := p.gl.GetUniformLocation(p.handle, name)
	if loc < 0 {
		return NotFound
	}
	return Location(loc)
}

// Set binds p and writes v to the uniform called name. Unknown names are
// ignored.
func Set[T Value](p *Program, name string, v T) {
	loc := p.Location(name)
	if loc == NotFound {
		return
	}
	p.gl.UseProgram(p.handle)
	l := int32(loc)
	switch x := any(v).(type) {
	case bool:
		var i int32
		if x {
			i = 1
		}
		p.gl.Uniform1i(l, i)
	case int32:
		p.gl.Uniform1i(l, x)
	case float32:
		p.gl.Uniform1f(l, x)
	case mgl32.Vec4:
		p.gl.Uniform4f(l, x[0], x[1], x[2], x[3])
	case mgl32.Mat4:
		p.gl.UniformMatrix4fv(l, false, (*[16]float32)(&x))
	}
}

// Get reads the current value of a uniform back from the context. ok is
// false when the program is invalid or the uniform does not exist.
func Get[T Value](p *Program, name string) (v T, ok bool) {
	loc := p.Location(name)
	if loc == NotFound {
		return v, false
	}
	l := int32(loc)
	switch out := any(&v).(type) {
	case *bool:
		*out = p.gl.GetUniformiv(p.handle, l) != 0
	case *int32:
		*out = p.gl.GetUniformiv(p.handle, l)
	case *float32:
		var dst [1]float32
		p.gl.GetUniformfv(p.handle, l, dst[:])
		*out = dst[0]
	case *mgl32.Vec4:
		p.gl.GetUniformfv(p.handle, l, out[:])
	case *mgl32.Mat4:
		p.gl.GetUniformfv(p.handle, l, out[:])
	}
	return v, true
}

func (p *Program) SetBool(name string, v bool)       { Set(p, name, v) }
func (p *Program) SetInt(name string, v int32)       { Set(p, name, v) }
func (p *Program) SetFloat(name string, v float32)   { Set(p, name, v) }
func (p *Program) SetVec4(name string, v mgl32.Vec4) { Set(p, name, v) }
func (p *Program) SetMat4(name string, v mgl32.Mat4) { Set(p, name, v) }
