// Command lglc compiles and links shader programs against a headless GL
// context and reports diagnostics. It needs no display.
//
//	lglc [flags] vertex.glsl fragment.glsl
//	lglc [flags] -combined shader.glsl
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/kjkrol/lgl/internal/logging"
)

var (
	logLevel  string
	combined  string
	watchMode bool
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] vertex fragment\n       %s [flags] -combined file\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.StringVar(&combined, "combined", "", "Single-source shader selecting stages with #ifdef VERTEX / FRAGMENT")
	flag.BoolVar(&watchMode, "watch", false, "Recheck whenever a shader file changes")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var errReported = errors.New("diagnostic reported")

func run() error {
	j, err := parseJob(combined, flag.Args())
	if err != nil {
		flag.Usage()
		return err
	}
	if j, err = j.resolve(); err != nil {
		return err
	}

	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	c := &checker{fsys: os.DirFS(j.Root), logger: logger, out: os.Stderr}
	if watchMode {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return c.watch(logging.Context(ctx, logger), j)
	}
	if err := c.check(j); err != nil {
		if isDiagnostic(err) {
			return errReported
		}
		return err
	}
	return nil
}

func parseJob(combined string, args []string) (job, error) {
	switch {
	case combined != "" && len(args) == 0:
		return job{Combined: combined}, nil
	case combined == "" && len(args) == 2:
		return job{Vertex: args[0], Fragment: args[1]}, nil
	case combined != "":
		return job{}, errors.New("-combined takes no positional arguments")
	default:
		return job{}, fmt.Errorf("expected a vertex and a fragment file, got %d argument(s)", len(args))
	}
}
