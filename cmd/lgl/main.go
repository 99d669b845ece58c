package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/kjkrol/lgl/internal/config"
	"github.com/kjkrol/lgl/internal/logging"
	"github.com/kjkrol/lgl/internal/platform"
	"github.com/kjkrol/lgl/internal/renderer"
	"github.com/kjkrol/lgl/pkg/gfx"
	"github.com/kjkrol/lgl/pkg/scenes"
)

var (
	configFile string
	sceneList  string
	logLevel   string
	listScenes bool
)

func init() {
	// glfw and the GL context must stay on the main thread.
	runtime.LockOSThread()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&configFile, "config", config.DefaultFile, "Path to the TOML config file")
	flag.StringVar(&sceneList, "scene", "", "Comma separated scenes to run, in order")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&listScenes, "list", false, "List the available scenes and exit")
}

func main() {
	flag.Parse()
	if listScenes {
		for _, name := range scenes.Names() {
			fmt.Println(name)
		}
		return
	}
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := config.Open(configFile, !explicit)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if sceneList != "" {
		cfg.Scenes = strings.Split(sceneList, ",")
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	opts := scenes.Options{Logger: logger}
	if cfg.ShaderDir != "" {
		opts.Shaders = os.DirFS(cfg.ShaderDir)
	}
	selected, err := scenes.Select(cfg.Scenes, opts)
	if err != nil {
		return err
	}

	win, err := platform.NewWindow(cfg.WindowConfig())
	if err != nil {
		return err
	}
	defer win.Close()

	dev, err := renderer.New()
	if err != nil {
		return err
	}
	glVersion, glslVersion := dev.Version()
	logger.Info("OpenGL context ready",
		zap.String("gl", glVersion),
		zap.String("glsl", glslVersion),
		zap.Strings("scenes", cfg.Scenes))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logging.Context(ctx, logger)

	gfx.ClearColor = cfg.ClearColor
	runner := gfx.NewRunner(win, dev)
	runner.RefreshRate(cfg.Window.FPS)
	return runner.RunAll(ctx, selected)
}
