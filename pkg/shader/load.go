package shader

import (
	"io/fs"
	"path"
)

// Load reads both shader files from fsys and compiles them with a default
// Compiler. fsys is the base directory the paths are relative to, usually
// os.DirFS or an embed.FS.
func Load(gl GL, fsys fs.FS, vsPath, fsPath string, opts ...Option) (*Program, error) {
	return NewCompiler(gl, opts...).load(fsys, vsPath, fsPath, callerAt(1))
}

// Load reads vsPath and fsPath from fsys and compiles them. Files ending in
// .wgsl are treated as WGSL. If either file cannot be read no GL object is
// created.
func (c *Compiler) Load(fsys fs.FS, vsPath, fsPath string) (*Program, error) {
	return c.load(fsys, vsPath, fsPath, callerAt(1))
}

func (c *Compiler) load(fsys fs.FS, vsPath, fsPath string, caller Caller) (*Program, error) {
	vs, err := c.readSource(fsys, vsPath, Vertex, caller)
	if err != nil {
		return c.invalid(), err
	}
	frag, err := c.readSource(fsys, fsPath, Fragment, caller)
	if err != nil {
		return c.invalid(), err
	}
	return c.compile(vs, frag, caller)
}

func (c *Compiler) readSource(fsys fs.FS, name string, stage Stage, caller Caller) (Source, error) {
	clean := path.Clean(name)
	data, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return Source{}, c.report(&Diagnostic{
			Kind:   FileOpenFailure,
			Stage:  stage,
			Path:   name,
			Caller: caller,
			Err:    err,
		})
	}
	src := Source{Stage: stage, Text: string(data), Path: clean}
	if path.Ext(clean) == ".wgsl" {
		src.Lang = WGSL
	}
	return src, nil
}
