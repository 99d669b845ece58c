// Package platform creates the native window and OpenGL context scenes are
// drawn in.
package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/lgl/pkg/gfx"
)

// Window is a glfw window whose GL context is current on the thread that
// created it.
type Window struct {
	win   *glfw.Window
	queue eventQueue
}

var _ gfx.Window = (*Window)(nil)

// NewWindow initializes glfw and opens a window with a core profile
// context. It must be called from the main thread, which has to stay
// locked for the life of the window.
func NewWindow(conf gfx.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, conf.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, conf.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	if conf.PositionX != 0 || conf.PositionY != 0 {
		win.SetPos(conf.PositionX, conf.PositionY)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	w := &Window{win: win}
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		if e, ok := convertKey(key, scancode, action, glfw.GetKeyName(key, scancode)); ok {
			w.queue.push(e)
		}
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue.push(gfx.Resize{Width: width, Height: height})
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		w.queue.push(gfx.CloseRequest{})
	})
	return w, nil
}

// PollEvent processes pending window system events and returns the next
// one.
func (w *Window) PollEvent() (gfx.Event, bool) {
	if len(w.queue.events) == 0 {
		glfw.PollEvents()
	}
	return w.queue.pop()
}

func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (int, int) { return w.win.GetFramebufferSize() }

// Close destroys the window and terminates glfw.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
