package glsl

import "fmt"

// Error is a compile error at a position in the source. Error formats it
// the way GL drivers write info logs.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("0:%d(%d): error: %s", e.Line, e.Column, e.Msg)
}

func errorf(line, col int, format string, args ...any) *Error {
	return &Error{Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
}

type Storage uint8

const (
	In Storage = iota + 1
	Out
	Uniform
)

func (s Storage) String() string {
	switch s {
	case In:
		return "in"
	case Out:
		return "out"
	case Uniform:
		return "uniform"
	default:
		return "none"
	}
}

// Var is a global in, out or uniform declaration.
type Var struct {
	Storage  Storage
	Type     string
	Name     string
	ArrayLen int // 0 for non-arrays
	Location int // explicit layout location, -1 when absent
	Line     int
}

// TypeName renders the declared type including the array size.
func (v Var) TypeName() string {
	if v.ArrayLen > 0 {
		return fmt.Sprintf("%s[%d]", v.Type, v.ArrayLen)
	}
	return v.Type
}

// Unit is the global interface of one translation unit.
type Unit struct {
	Version   int
	Profile   string
	Inputs    []Var
	Outputs   []Var
	Uniforms  []Var
	Functions []string
	HasMain   bool
}

func (u *Unit) add(v Var) {
	switch v.Storage {
	case In:
		u.Inputs = append(u.Inputs, v)
	case Out:
		u.Outputs = append(u.Outputs, v)
	case Uniform:
		u.Uniforms = append(u.Uniforms, v)
	}
}

// Parse preprocesses and scans src.
func Parse(src string) (*Unit, error) {
	text, dirs, err := preprocess(src)
	if err != nil {
		return nil, err
	}
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	toks, err = expand(toks, dirs.defines)
	if err != nil {
		return nil, err
	}
	p := &parser{
		toks:    toks,
		structs: make(map[string]bool),
		unit:    &Unit{Version: dirs.version, Profile: dirs.profile},
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.unit, nil
}
