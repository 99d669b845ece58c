package gfx

// WindowConfig describes the window scenes are shown in.
type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
	// GLMajor and GLMinor select the core profile context version.
	GLMajor int
	GLMinor int
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{Width: 800, Height: 600, Title: "lgl", GLMajor: 3, GLMinor: 3}
}

// Window is a native window owning the GL context a Device draws into.
type Window interface {
	// PollEvent returns the next pending event without blocking.
	PollEvent() (Event, bool)
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(bool)
	Size() (int, int)
}
