package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kjkrol/lgl/internal/softgl"
	"github.com/kjkrol/lgl/pkg/shader"
)

// job names the sources of one program: either a vertex/fragment pair or a
// single combined file.
type job struct {
	Vertex   string
	Fragment string
	Combined string
	// Root is the directory the names are relative to once resolved.
	Root string
}

func (j job) files() []string {
	if j.Combined != "" {
		return []string{j.Combined}
	}
	return []string{j.Vertex, j.Fragment}
}

type checker struct {
	fsys   fs.FS
	logger *zap.Logger
	out    io.Writer
}

// check compiles and links the job against a fresh headless context. A
// *shader.Diagnostic is printed and returned; any other error is returned
// unchanged.
func (c *checker) check(j job) error {
	ctx := softgl.New()
	compiler := shader.NewCompiler(ctx, shader.WithLogger(c.logger))

	var (
		prog *shader.Program
		err  error
	)
	if j.Combined != "" {
		prog, err = compiler.LoadCombined(c.fsys, j.Combined)
	} else {
		prog, err = compiler.Load(c.fsys, j.Vertex, j.Fragment)
	}
	defer prog.Release()

	var diag *shader.Diagnostic
	if errors.As(err, &diag) {
		fmt.Fprintln(c.out, strings.TrimRight(diag.Error(), "\n"))
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s: ok\n", strings.Join(j.files(), ", "))
	return nil
}

func isDiagnostic(err error) bool {
	var diag *shader.Diagnostic
	return errors.As(err, &diag)
}

// volumeRoot splits an absolute path into the root of its volume ("/" or
// `C:\`) and the slash separated name below it, as os.DirFS expects.
func volumeRoot(abs string) (root, name string) {
	vol := filepath.VolumeName(abs)
	rest := strings.TrimLeft(abs[len(vol):], `/\`)
	return vol + string(filepath.Separator), filepath.ToSlash(rest)
}

// osPath maps a name below root back to a native path.
func (j job) osPath(name string) string {
	return filepath.Join(j.Root, filepath.FromSlash(name))
}

// resolve makes every path absolute and relative to one volume root, which
// the checker opens with os.DirFS.
func (j job) resolve() (job, error) {
	var err error
	r := job{}
	resolve := func(p string) string {
		if p == "" || err != nil {
			return p
		}
		abs, aerr := filepath.Abs(p)
		if aerr != nil {
			err = aerr
			return p
		}
		root, name := volumeRoot(abs)
		if r.Root != "" && r.Root != root {
			err = fmt.Errorf("%s is on a different volume than %s", p, r.Root)
			return p
		}
		r.Root = root
		return name
	}
	r.Vertex = resolve(j.Vertex)
	r.Fragment = resolve(j.Fragment)
	r.Combined = resolve(j.Combined)
	return r, err
}
