// Package softgl is an in-memory OpenGL context. It compiles shaders with
// the GLSL front end, links them with interface matching, stores uniform
// values and records the device calls scenes make, so that everything built
// on shader.GL and gfx.Device runs without a GPU.
package softgl

import (
	"github.com/kjkrol/lgl/internal/glsl"
	"github.com/kjkrol/lgl/pkg/shader"
)

// Error codes returned by GetError.
const (
	NoError          uint32 = 0
	InvalidEnum      uint32 = 0x0500
	InvalidValue     uint32 = 0x0501
	InvalidOperation uint32 = 0x0502
)

type shaderObject struct {
	stage    shader.Stage
	source   string
	compiled bool
	infoLog  string
	unit     *glsl.Unit
	pending  bool // deleted while still attached
	attached int
}

type programObject struct {
	attached []uint32
	linked   bool
	infoLog  string
	names    map[string]int32
	slots    map[int32]*uniformSlot
	pending  bool // deleted while current
}

// Calls counts the compile and link requests a Context has received.
type Calls struct {
	CompileShader int
	CreateProgram int
	LinkProgram   int
}

// Context implements shader.GL and gfx.Device. Like a real context it is
// not safe for concurrent use.
type Context struct {
	lastName uint32
	shaders  map[uint32]*shaderObject
	programs map[uint32]*programObject
	current  uint32
	err      uint32
	calls    Calls

	device
}

func New() *Context {
	return &Context{
		shaders:  make(map[uint32]*shaderObject),
		programs: make(map[uint32]*programObject),
		device:   newDevice(),
	}
}

func (c *Context) genName() uint32 {
	c.lastName++
	return c.lastName
}

func (c *Context) setError(code uint32) {
	if c.err == NoError {
		c.err = code
	}
}

// GetError returns and clears the first error recorded since the last call.
func (c *Context) GetError() uint32 {
	code := c.err
	c.err = NoError
	return code
}

// LiveShaders is the number of shader objects not yet deleted.
func (c *Context) LiveShaders() int {
	n := 0
	for _, s := range c.shaders {
		if !s.pending {
			n++
		}
	}
	return n
}

// LivePrograms is the number of program objects not yet deleted.
func (c *Context) LivePrograms() int {
	n := 0
	for _, p := range c.programs {
		if !p.pending {
			n++
		}
	}
	return n
}

// Calls returns the compile and link requests made so far, including
// failed ones.
func (c *Context) Calls() Calls {
	return c.calls
}

// CurrentProgram is the program bound with UseProgram.
func (c *Context) CurrentProgram() uint32 {
	return c.current
}

func (c *Context) CreateShader(stage shader.Stage) uint32 {
	if stage != shader.Vertex && stage != shader.Fragment {
		c.setError(InvalidEnum)
		return 0
	}
	name := c.genName()
	c.shaders[name] = &shaderObject{stage: stage}
	return name
}

func (c *Context) ShaderSource(name uint32, source string) {
	s, ok := c.shaders[name]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	s.source = source
}

func (c *Context) CompileShader(name uint32) {
	c.calls.CompileShader++
	s, ok := c.shaders[name]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	s.compiled = false
	s.unit = nil
	unit, err := glsl.Parse(s.source)
	if err != nil {
		s.infoLog = err.Error() + "\n"
		return
	}
	if unit.Version < 330 || unit.Profile == "es" {
		s.infoLog = (&glsl.Error{Line: 1, Column: 1, Msg: unsupportedVersion(unit.Version, unit.Profile)}).Error() + "\n"
		return
	}
	s.unit = unit
	s.compiled = true
	s.infoLog = ""
}

func (c *Context) ShaderCompiled(name uint32) bool {
	s, ok := c.shaders[name]
	if !ok {
		c.setError(InvalidValue)
		return false
	}
	return s.compiled
}

func (c *Context) ShaderInfoLog(name uint32) string {
	s, ok := c.shaders[name]
	if !ok {
		c.setError(InvalidValue)
		return ""
	}
	return s.infoLog
}

func (c *Context) DeleteShader(name uint32) {
	if name == 0 {
		return
	}
	s, ok := c.shaders[name]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	if s.attached > 0 {
		s.pending = true
		return
	}
	delete(c.shaders, name)
}

func (c *Context) CreateProgram() uint32 {
	c.calls.CreateProgram++
	name := c.genName()
	c.programs[name] = &programObject{}
	return name
}

func (c *Context) AttachShader(program, name uint32) {
	p, ok := c.programs[program]
	s, sok := c.shaders[name]
	if !ok || !sok {
		c.setError(InvalidValue)
		return
	}
	for _, a := range p.attached {
		if a == name {
			c.setError(InvalidOperation)
			return
		}
	}
	p.attached = append(p.attached, name)
	s.attached++
}

func (c *Context) DetachShader(program, name uint32) {
	p, ok := c.programs[program]
	s, sok := c.shaders[name]
	if !ok || !sok {
		c.setError(InvalidValue)
		return
	}
	for i, a := range p.attached {
		if a == name {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			s.attached--
			if s.pending && s.attached == 0 {
				delete(c.shaders, name)
			}
			return
		}
	}
	c.setError(InvalidOperation)
}

func (c *Context) LinkProgram(program uint32) {
	c.calls.LinkProgram++
	p, ok := c.programs[program]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	p.linked = false
	p.names = nil
	p.slots = nil
	names, slots, infoLog := c.link(p)
	p.infoLog = infoLog
	if infoLog != "" {
		return
	}
	p.names = names
	p.slots = slots
	p.linked = true
}

func (c *Context) ProgramLinked(program uint32) bool {
	p, ok := c.programs[program]
	if !ok {
		c.setError(InvalidValue)
		return false
	}
	return p.linked
}

func (c *Context) ProgramInfoLog(program uint32) string {
	p, ok := c.programs[program]
	if !ok {
		c.setError(InvalidValue)
		return ""
	}
	return p.infoLog
}

func (c *Context) DeleteProgram(program uint32) {
	if program == 0 {
		return
	}
	p, ok := c.programs[program]
	if !ok {
		c.setError(InvalidValue)
		return
	}
	for _, name := range append([]uint32(nil), p.attached...) {
		c.DetachShader(program, name)
	}
	if c.current == program {
		p.pending = true
		return
	}
	delete(c.programs, program)
}

func (c *Context) UseProgram(program uint32) {
	if program == 0 {
		c.releaseCurrent()
		return
	}
	p, ok := c.programs[program]
	if !ok || p.pending {
		c.setError(InvalidValue)
		return
	}
	if !p.linked {
		c.setError(InvalidOperation)
		return
	}
	if program != c.current {
		c.releaseCurrent()
	}
	c.current = program
}

func (c *Context) releaseCurrent() {
	if p, ok := c.programs[c.current]; ok && p.pending {
		delete(c.programs, c.current)
	}
	c.current = 0
}
