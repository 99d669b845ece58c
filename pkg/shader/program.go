package shader

// Program is a linked shader program. A Program returned together with a
// Diagnostic is invalid: Valid reports false, Location always returns
// NotFound and uniform writes are no-ops.
type Program struct {
	gl     GL
	handle uint32
}

func (p *Program) Handle() uint32 {
	if p == nil {
		return 0
	}
	return p.handle
}

func (p *Program) Valid() bool {
	return p != nil && p.gl != nil && p.handle != 0
}

// Use makes p the current program of its context.
func (p *Program) Use() {
	if !p.Valid() {
		return
	}
	p.gl.UseProgram(p.handle)
}

// Release deletes the program. The Program is invalid afterwards.
func (p *Program) Release() {
	if !p.Valid() {
		return
	}
	p.gl.DeleteProgram(p.handle)
	p.handle = 0
}
