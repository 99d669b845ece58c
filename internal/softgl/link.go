package softgl

import (
	"fmt"
	"strings"

	"github.com/kjkrol/lgl/internal/glsl"
	"github.com/kjkrol/lgl/pkg/shader"
)

func unsupportedVersion(version int, profile string) string {
	if profile == "es" {
		return fmt.Sprintf("GLSL ES %d is not supported. Supported versions are: 3.30 and above (core)", version)
	}
	return fmt.Sprintf("GLSL %d.%02d is not supported. Supported versions are: 3.30 and above (core)", version/100, version%100)
}

// link checks the attached stages against each other and lays out the
// uniforms. It returns a non-empty info log when linking fails.
func (c *Context) link(p *programObject) (map[string]int32, map[int32]*uniformSlot, string) {
	var problems []string
	var vertex, fragment *glsl.Unit
	for _, name := range p.attached {
		s := c.shaders[name]
		if !s.compiled {
			problems = append(problems, "linking with uncompiled/unspecialized shader")
			continue
		}
		switch s.stage {
		case shader.Vertex:
			if vertex != nil {
				problems = append(problems, "multiple vertex shaders are not supported")
			}
			vertex = s.unit
		case shader.Fragment:
			if fragment != nil {
				problems = append(problems, "multiple fragment shaders are not supported")
			}
			fragment = s.unit
		}
	}
	if len(problems) > 0 {
		return nil, nil, infoLog(problems)
	}
	if vertex == nil {
		problems = append(problems, "program lacks a vertex shader")
	} else if !vertex.HasMain {
		problems = append(problems, "vertex shader lacks `main'")
	}
	if fragment == nil {
		problems = append(problems, "program lacks a fragment shader")
	} else if !fragment.HasMain {
		problems = append(problems, "fragment shader lacks `main'")
	}
	if len(problems) > 0 {
		return nil, nil, infoLog(problems)
	}

	problems = append(problems, matchVaryings(vertex, fragment)...)
	uniforms, uproblems := mergeUniforms(vertex, fragment)
	problems = append(problems, uproblems...)
	if len(problems) > 0 {
		return nil, nil, infoLog(problems)
	}

	names := make(map[string]int32)
	slots := make(map[int32]*uniformSlot)
	var next int32
	for _, u := range uniforms {
		if !glsl.BuiltinType(u.Type) {
			continue
		}
		count := u.ArrayLen
		if count == 0 {
			count = 1
		}
		names[u.Name] = next
		for i := 0; i < count; i++ {
			if u.ArrayLen > 0 {
				names[fmt.Sprintf("%s[%d]", u.Name, i)] = next
			}
			slots[next] = newUniformSlot(u.Type)
			next++
		}
	}
	return names, slots, ""
}

func matchVaryings(vertex, fragment *glsl.Unit) []string {
	outputs := make(map[string]glsl.Var, len(vertex.Outputs))
	for _, v := range vertex.Outputs {
		outputs[v.Name] = v
	}
	var problems []string
	for _, in := range fragment.Inputs {
		out, ok := outputs[in.Name]
		if !ok {
			problems = append(problems, fmt.Sprintf("fragment shader input `%s' has no matching output in the previous stage", in.Name))
			continue
		}
		if out.TypeName() != in.TypeName() {
			problems = append(problems, fmt.Sprintf("`%s' declared as type `%s' but outputted from vertex shader with type `%s'",
				in.Name, in.TypeName(), out.TypeName()))
		}
	}
	return problems
}

func mergeUniforms(vertex, fragment *glsl.Unit) ([]glsl.Var, []string) {
	var merged []glsl.Var
	seen := make(map[string]glsl.Var)
	var problems []string
	for _, unit := range []*glsl.Unit{vertex, fragment} {
		for _, u := range unit.Uniforms {
			prev, ok := seen[u.Name]
			if !ok {
				seen[u.Name] = u
				merged = append(merged, u)
				continue
			}
			if prev.TypeName() != u.TypeName() {
				problems = append(problems, fmt.Sprintf("uniform `%s' declared as type `%s' and type `%s'",
					u.Name, prev.TypeName(), u.TypeName()))
			}
		}
	}
	return merged, problems
}

func infoLog(problems []string) string {
	var sb strings.Builder
	for _, p := range problems {
		sb.WriteString("error: ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return sb.String()
}
