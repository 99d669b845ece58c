package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/lgl/pkg/gfx"
)

// eventQueue buffers the events glfw delivers through callbacks until the
// runner polls them.
type eventQueue struct {
	events []gfx.Event
}

func (q *eventQueue) push(e gfx.Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) pop() (gfx.Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = q.events[:0:0]
	}
	return e, true
}

var keyLabels = map[glfw.Key]string{
	glfw.KeyEscape:    gfx.EscapeLabel,
	glfw.KeyEnter:     "Return",
	glfw.KeySpace:     "Space",
	glfw.KeyTab:       "Tab",
	glfw.KeyBackspace: "Backspace",
	glfw.KeyLeft:      "Left",
	glfw.KeyRight:     "Right",
	glfw.KeyUp:        "Up",
	glfw.KeyDown:      "Down",
}

// keyLabel names a key the way the runner matches it. Printable keys use
// the layout specific name glfw reports.
func keyLabel(key glfw.Key, name string) string {
	if label, ok := keyLabels[key]; ok {
		return label
	}
	return name
}

func convertKey(key glfw.Key, scancode int, action glfw.Action, name string) (gfx.Event, bool) {
	code := uint64(scancode)
	label := keyLabel(key, name)
	switch action {
	case glfw.Press, glfw.Repeat:
		return gfx.KeyPress{Code: code, Label: label}, true
	case glfw.Release:
		return gfx.KeyRelease{Code: code, Label: label}, true
	default:
		return nil, false
	}
}
