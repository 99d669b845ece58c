package shader

import (
	"io/fs"
	"strings"
)

const defaultVersion = "#version 330 core"

// Combined splits a single-source shader into its two stages. The source
// selects stage code with #ifdef VERTEX / #ifdef FRAGMENT; the matching
// define is inserted right after the #version directive, and a
// "#version 330 core" line is prepended when the source has none.
func Combined(text string) (vs, fs Source) {
	vs = Source{Stage: Vertex, Text: withDefine(text, "VERTEX")}
	fs = Source{Stage: Fragment, Text: withDefine(text, "FRAGMENT")}
	return vs, fs
}

func withDefine(text, define string) string {
	lines := strings.Split(text, "\n")
	header := []string{defaultVersion}
	body := lines
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		if strings.HasPrefix(trimmed, "#version") {
			header = lines[:i+1]
			body = lines[i+1:]
		}
		break
	}

	var sb strings.Builder
	for _, line := range header {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("#define " + define + "\n")
	sb.WriteString(strings.Join(body, "\n"))
	if !strings.HasSuffix(text, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}

// LoadCombined reads a single-source shader from fsys and compiles both of
// its stages.
func (c *Compiler) LoadCombined(fsys fs.FS, name string) (*Program, error) {
	caller := callerAt(1)
	src, err := c.readSource(fsys, name, Vertex, caller)
	if err != nil {
		return c.invalid(), err
	}
	vs, frag := Combined(src.Text)
	vs.Path, frag.Path = src.Path, src.Path
	return c.compile(vs, frag, caller)
}
