package glsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertexSrc = `#version 330 core
layout (location = 0) in vec3 vs_Pos;
layout (location = 1) in vec3 vs_Col;
uniform mat4 u_Trans;
out vec4 fs_Col;

void main() {
  fs_Col = vec4(vs_Col, 1.0);
  gl_Position = u_Trans * vec4(vs_Pos, 1.0);
}
`

func TestParseInterface(t *testing.T) {
	unit, err := Parse(vertexSrc)
	require.NoError(t, err)

	assert.Equal(t, 330, unit.Version)
	assert.Equal(t, "core", unit.Profile)
	assert.True(t, unit.HasMain)
	require.Len(t, unit.Inputs, 2)
	assert.Equal(t, Var{Storage: In, Type: "vec3", Name: "vs_Pos", Location: 0, Line: 2}, unit.Inputs[0])
	assert.Equal(t, 1, unit.Inputs[1].Location)
	require.Len(t, unit.Outputs, 1)
	assert.Equal(t, "fs_Col", unit.Outputs[0].Name)
	assert.Equal(t, "vec4", unit.Outputs[0].Type)
	require.Len(t, unit.Uniforms, 1)
	assert.Equal(t, "mat4", unit.Uniforms[0].Type)
	assert.Equal(t, []string{"main"}, unit.Functions)
}

func TestParseStatements(t *testing.T) {
	src := `#version 330 core
precision highp float;
struct Light {
  vec3 color;
  float power[2];
};
uniform Light light;
uniform float weights[4], bias = 0.5;
uniform Globals { mat4 view; } globals;
in vec2 uv;
out vec4 color;

/* helper */
float shade(in float x, float k);
float shade(in float x, float k) {
  return x * k;
}

void main() {
  vec4 acc = vec4(0.0);
  for (int i = 0; i < 4; i++) {
    if (weights[i] > 0.0) acc += vec4(light.color * weights[i], 1.0);
    else continue;
  }
  int n = 2;
  switch (n) {
  case 1:
    break;
  default:
    acc.x = shade(acc.y, .5f);
  }
  do { n--; } while (n > 0);
  color = uv.x > 0.5 ? acc : vec4(1e-3);
}
`
	unit, err := Parse(src)
	require.NoError(t, err)
	assert.True(t, unit.HasMain)
	assert.Equal(t, []string{"shade", "main"}, unit.Functions)
	require.Len(t, unit.Uniforms, 3)
	assert.Equal(t, "Light", unit.Uniforms[0].Type)
	assert.Equal(t, 4, unit.Uniforms[1].ArrayLen)
	assert.Equal(t, "float[4]", unit.Uniforms[1].TypeName())
	assert.Equal(t, "bias", unit.Uniforms[2].Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		msg  string
	}{
		{
			name: "missing semicolon before brace",
			src:  "#version 330 core\nvoid main() {\n  gl_Position = vec4(0.0)\n}\n",
			line: 4,
			msg:  "syntax error, unexpected '}', expecting ';'",
		},
		{
			name: "missing semicolon between statements",
			src:  "#version 330 core\nout vec4 c;\nvoid main() {\n  c = vec4(1.0)\n  c = vec4(0.0);\n}\n",
			line: 5,
			msg:  "syntax error, unexpected IDENTIFIER, expecting ';'",
		},
		{
			name: "unknown type",
			src:  "#version 330 core\nout vec5 c;\nvoid main() {}\n",
			line: 2,
			msg:  "syntax error, unexpected IDENTIFIER",
		},
		{
			name: "unclosed body",
			src:  "#version 330 core\nvoid main() {\n  float x = 1.0;\n",
			line: 4,
			msg:  "syntax error, unexpected end of file, expecting '}'",
		},
		{
			name: "mismatched parens",
			src:  "#version 330 core\nvoid main() {\n  float x = (1.0;\n}\n",
			line: 3,
			msg:  "syntax error, unexpected ';', expecting ')'",
		},
		{
			name: "initialized input",
			src:  "#version 330 core\nin float x = 1.0;\nvoid main() {}\n",
			line: 2,
			msg:  "cannot initialize in variable 'x'",
		},
		{
			name: "removed qualifier",
			src:  "#version 330 core\nvarying vec3 x;\nvoid main() {}\n",
			line: 2,
			msg:  "'varying' is not a valid storage qualifier in GLSL 330",
		},
		{
			name: "main redefined",
			src:  "#version 330 core\nvoid main() {}\nvoid main() {}\n",
			line: 3,
			msg:  "function 'main' redefined",
		},
		{
			name: "bad character",
			src:  "#version 330 core\nvoid main() { @ }\n",
			line: 2,
			msg:  "syntax error, unexpected character '@'",
		},
		{
			name: "late version",
			src:  "void f();\n#version 330 core\n",
			line: 2,
			msg:  "#version must appear on the first line",
		},
		{
			name: "unsupported version",
			src:  "#version 999\n",
			line: 1,
			msg:  "version '999' is not supported",
		},
		{
			name: "compound defined",
			src:  "#version 330 core\n#if defined(A) && defined(B)\n#endif\n",
			line: 2,
			msg:  "unsupported #if expression 'defined(A) && defined(B)'",
		},
		{
			name: "unterminated if",
			src:  "#version 330 core\n#ifdef VERTEX\nvoid main() {}\n",
			line: 2,
			msg:  "unterminated #if",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)
			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, tt.msg, perr.Msg)
		})
	}
}

func TestPreprocessorBranches(t *testing.T) {
	src := `#version 330 core
#define FRAGMENT
#define COUNT 3
#ifdef VERTEX
layout (location = 0) in vec2 pos;
void main() { gl_Position = vec4(pos, 0.0, 1.0); }
#else
uniform float values[COUNT];
out vec4 color;
void main() { color = vec4(values[0]); }
#endif
#if 0
this is not glsl
#endif
`
	unit, err := Parse(src)
	require.NoError(t, err)
	assert.Empty(t, unit.Inputs)
	require.Len(t, unit.Uniforms, 1)
	assert.Equal(t, 3, unit.Uniforms[0].ArrayLen)
	require.Len(t, unit.Outputs, 1)
}

func TestIfDefined(t *testing.T) {
	src := `#version 330 core
#define A
#if defined(A)
uniform float a;
#endif
#if !defined B
uniform float b;
#endif
#if defined(C)
uniform float c;
#endif
`
	unit, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, unit.Uniforms, 2)
	assert.Equal(t, "a", unit.Uniforms[0].Name)
	assert.Equal(t, "b", unit.Uniforms[1].Name)
}

func TestErrorFormat(t *testing.T) {
	err := &Error{Line: 3, Column: 7, Msg: "syntax error"}
	assert.Equal(t, "0:3(7): error: syntax error", err.Error())
}

func TestMissingVersionDefaults(t *testing.T) {
	unit, err := Parse("void main() {}\n")
	require.NoError(t, err)
	assert.Equal(t, 110, unit.Version)
}
