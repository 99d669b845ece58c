package shader

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
)

// TranslateWGSL lowers the entry point of the given stage in a WGSL module
// to GLSL source.
func TranslateWGSL(source string, stage Stage, version glsl.Version) (string, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return "", fmt.Errorf("parse wgsl: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return "", fmt.Errorf("lower wgsl: %w", err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return "", fmt.Errorf("validate wgsl: %w", err)
	}
	if len(verrs) > 0 {
		return "", fmt.Errorf("validate wgsl: %w", &verrs[0])
	}

	entry, ok := entryPoint(module, stage)
	if !ok {
		return "", fmt.Errorf("wgsl module has no %s entry point", stage)
	}
	out, _, err := glsl.Compile(module, glsl.Options{
		LangVersion: version,
		EntryPoint:  entry,
	})
	if err != nil {
		return "", fmt.Errorf("generate glsl for %s: %w", entry, err)
	}
	return out, nil
}

func entryPoint(module *ir.Module, stage Stage) (string, bool) {
	var want ir.ShaderStage
	switch stage {
	case Vertex:
		want = ir.StageVertex
	case Fragment:
		want = ir.StageFragment
	default:
		return "", false
	}
	for _, ep := range module.EntryPoints {
		if ep.Stage == want {
			return ep.Name, true
		}
	}
	return "", false
}
