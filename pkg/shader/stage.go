package shader

// Stage identifies one programmable pipeline stage. NoStage marks
// diagnostics that are not about a single stage, such as link failures.
type Stage uint8

const (
	NoStage Stage = iota
	Vertex
	Fragment
)

func (s Stage) String() string {
	switch s {
	case NoStage:
		return "none"
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Lang is the shading language a Source is written in.
type Lang uint8

const (
	GLSL Lang = iota
	WGSL
)

func (l Lang) String() string {
	if l == WGSL {
		return "wgsl"
	}
	return "glsl"
}

// Source is shader text tagged with the stage it is compiled for.
// Path is only used in diagnostics.
type Source struct {
	Stage Stage
	Lang  Lang
	Text  string
	Path  string
}

func VertexSource(text string) Source {
	return Source{Stage: Vertex, Text: text}
}

func FragmentSource(text string) Source {
	return Source{Stage: Fragment, Text: text}
}
