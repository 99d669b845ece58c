package shader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/lgl/pkg/shader"
)

func TestDiagnosticMatching(t *testing.T) {
	tests := []struct {
		kind shader.Kind
		is   error
		name string
	}{
		{shader.FileOpenFailure, shader.ErrFileOpen, "file open failure"},
		{shader.ShaderCompileFailure, shader.ErrCompile, "shader compile failure"},
		{shader.ProgramLinkFailure, shader.ErrLink, "program link failure"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error = &shader.Diagnostic{Kind: tt.kind, Log: "log"}
			assert.Equal(t, tt.name, tt.kind.String())
			for _, other := range []error{shader.ErrFileOpen, shader.ErrCompile, shader.ErrLink} {
				assert.Equal(t, other == tt.is, errors.Is(err, other))
			}
		})
	}
}

func TestDiagnosticMessages(t *testing.T) {
	caller := shader.Caller{File: "/src/scenes/triangle.go", Line: 42}

	link := &shader.Diagnostic{Kind: shader.ProgramLinkFailure, Caller: caller, Log: "error: boom\n"}
	assert.Equal(t, "error linking shader program in triangle.go:42:\nerror: boom\n", link.Error())

	compile := &shader.Diagnostic{Kind: shader.ShaderCompileFailure, Stage: shader.Fragment, Caller: caller, Log: "0:1(1): error: x\n"}
	assert.Equal(t, "error compiling fragment shader in triangle.go:42:\n0:1(1): error: x\n", compile.Error())

	open := &shader.Diagnostic{Kind: shader.FileOpenFailure, Stage: shader.Vertex, Path: "a.vs", Caller: caller, Err: errors.New("missing")}
	assert.Equal(t, `unable to open vertex shader "a.vs" (triangle.go:42): missing`, open.Error())

	assert.Equal(t, "unknown", shader.Caller{}.String())
}
