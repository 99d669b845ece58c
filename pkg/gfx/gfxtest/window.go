// Package gfxtest provides a scripted gfx.Window for running scenes
// without a display.
package gfxtest

import "github.com/kjkrol/lgl/pkg/gfx"

// Window replays queued events, one batch per frame, and counts swaps.
type Window struct {
	Width, Height int
	// Frames holds the events delivered before each frame. Frames past
	// the end deliver nothing.
	Frames [][]gfx.Event

	Swaps int
	close bool
	frame int
	queue []gfx.Event
	ready bool
}

var _ gfx.Window = (*Window)(nil)

func NewWindow(width, height int) *Window {
	return &Window{Width: width, Height: height}
}

// Queue adds events to the frame with index frame.
func (w *Window) Queue(frame int, events ...gfx.Event) {
	for len(w.Frames) <= frame {
		w.Frames = append(w.Frames, nil)
	}
	w.Frames[frame] = append(w.Frames[frame], events...)
}

func (w *Window) PollEvent() (gfx.Event, bool) {
	if !w.ready {
		if w.frame < len(w.Frames) {
			w.queue = append(w.queue, w.Frames[w.frame]...)
		}
		w.ready = true
	}
	if len(w.queue) == 0 {
		return nil, false
	}
	e := w.queue[0]
	w.queue = w.queue[1:]
	return e, true
}

func (w *Window) SwapBuffers() {
	w.Swaps++
	w.frame++
	w.ready = false
}

func (w *Window) ShouldClose() bool { return w.close }

func (w *Window) SetShouldClose(v bool) { w.close = v }

func (w *Window) Size() (int, int) { return w.Width, w.Height }
