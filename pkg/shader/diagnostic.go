package shader

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
)

// Kind classifies a Diagnostic.
type Kind uint8

const (
	FileOpenFailure Kind = iota + 1
	ShaderCompileFailure
	ProgramLinkFailure
)

func (k Kind) String() string {
	switch k {
	case FileOpenFailure:
		return "file open failure"
	case ShaderCompileFailure:
		return "shader compile failure"
	case ProgramLinkFailure:
		return "program link failure"
	default:
		return "unknown failure"
	}
}

// Sentinels matched by Diagnostic.Is.
var (
	ErrFileOpen = errors.New("shader: unable to open shader file")
	ErrCompile  = errors.New("shader: compile failed")
	ErrLink     = errors.New("shader: link failed")
)

// Caller is the call site that asked for a program.
type Caller struct {
	File string
	Line int
}

func (c Caller) String() string {
	if c.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(c.File), c.Line)
}

// callerAt reports the caller skip frames above its own caller.
func callerAt(skip int) Caller {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{}
	}
	return Caller{File: file, Line: line}
}

// Diagnostic describes why a program could not be built. Log holds the raw
// info log of the driver and is not a stable format.
type Diagnostic struct {
	Kind   Kind
	Stage  Stage
	Path   string
	Caller Caller
	Log    string
	Err    error
}

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case FileOpenFailure:
		return fmt.Sprintf("unable to open %s shader %q (%s): %v", d.Stage, d.Path, d.Caller, d.Err)
	case ShaderCompileFailure:
		where := d.Caller.String()
		if d.Path != "" {
			where = d.Path + " via " + where
		}
		return fmt.Sprintf("error compiling %s shader in %s:\n%s", d.Stage, where, d.Log)
	case ProgramLinkFailure:
		return fmt.Sprintf("error linking shader program in %s:\n%s", d.Caller, d.Log)
	default:
		return fmt.Sprintf("shader: %s in %s", d.Kind, d.Caller)
	}
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

func (d *Diagnostic) Is(target error) bool {
	switch target {
	case ErrFileOpen:
		return d.Kind == FileOpenFailure
	case ErrCompile:
		return d.Kind == ShaderCompileFailure
	case ErrLink:
		return d.Kind == ProgramLinkFailure
	}
	return false
}

func (d *Diagnostic) fields() []zap.Field {
	fields := []zap.Field{
		zap.Stringer("kind", d.Kind),
		zap.Stringer("caller", d.Caller),
	}
	if d.Kind != ProgramLinkFailure {
		fields = append(fields, zap.Stringer("stage", d.Stage))
	}
	if d.Path != "" {
		fields = append(fields, zap.String("path", d.Path))
	}
	if d.Log != "" {
		fields = append(fields, zap.String("log", d.Log))
	}
	if d.Err != nil {
		fields = append(fields, zap.Error(d.Err))
	}
	return fields
}
