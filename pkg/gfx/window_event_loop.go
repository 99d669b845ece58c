package gfx

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/kjkrol/lgl/internal/logging"
)

// ClearColor is the background every scene is drawn on.
var ClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

// Runner drives scenes frame by frame in one window.
type Runner struct {
	Window   Window
	Device   Device
	Strategy EventsConsumerStrategy
	// Logger defaults to the logger carried by the context.
	Logger *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// MaxFrames stops a scene after that many frames; 0 means no limit.
	MaxFrames int

	refreshDelay time.Duration
}

func NewRunner(win Window, dev Device) *Runner {
	return &Runner{
		Window:   win,
		Device:   dev,
		Strategy: DrainAllStrategy{},
		Now:      time.Now,
	}
}

// RefreshRate caps the frame rate. fps <= 0 removes the cap.
func (r *Runner) RefreshRate(fps int) {
	if fps <= 0 {
		r.refreshDelay = 0
		return
	}
	r.refreshDelay = time.Second / time.Duration(fps)
}

func (r *Runner) logger(ctx context.Context) *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return logging.From(ctx)
}

// RunAll runs the scenes one after another. A scene that fails to
// initialize is logged and skipped; the errors are returned combined.
func (r *Runner) RunAll(ctx context.Context, scenes []Scene) error {
	var errs error
	for _, scene := range scenes {
		r.Window.SetShouldClose(false)
		err := r.Run(ctx, scene)
		if errors.Is(err, context.Canceled) {
			return multierr.Append(errs, err)
		}
		if err != nil {
			r.logger(ctx).Error("scene failed", zap.String("scene", scene.Name()), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Run shows one scene until the window is asked to close, Escape is
// pressed or ctx is cancelled. The calling goroutine is locked to its OS
// thread for the duration because the GL context is bound to it.
func (r *Runner) Run(ctx context.Context, scene Scene) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var logger *zap.Logger
	if r.Logger != nil {
		logger = r.Logger.With(zap.String("scene", scene.Name()))
	} else {
		logger, ctx = logging.FromWithFields(ctx, zap.String("scene", scene.Name()))
	}
	dev := r.Device
	dev.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	width, height := r.Window.Size()
	dev.Viewport(0, 0, int32(width), int32(height))

	if err := scene.Init(dev); err != nil {
		scene.Close(dev)
		return fmt.Errorf("init scene %s: %w", scene.Name(), err)
	}
	defer scene.Close(dev)
	logger.Info("scene started")

	strategy := r.Strategy
	if strategy == nil {
		strategy = DrainAllStrategy{}
	}
	handle := func(event Event) {
		switch e := event.(type) {
		case KeyPress:
			if e.Label == EscapeLabel {
				r.Window.SetShouldClose(true)
			}
		case Resize:
			dev.Viewport(0, 0, int32(e.Width), int32(e.Height))
		case CloseRequest:
			r.Window.SetShouldClose(true)
		}
	}

	start := r.Now()
	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if r.Window.ShouldClose() || (r.MaxFrames > 0 && frame >= r.MaxFrames) {
			logger.Info("scene finished", zap.Int("frames", frame))
			return nil
		}

		strategy.Consume(r.Window.PollEvent, handle)
		frameStart := r.Now()
		dev.Clear()
		scene.Draw(dev, frameStart.Sub(start))
		r.Window.SwapBuffers()

		if r.refreshDelay > 0 {
			if wait := r.refreshDelay - r.Now().Sub(frameStart); wait > 0 {
				time.Sleep(wait)
			}
		}
	}
}
