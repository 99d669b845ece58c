package gfx

type Event interface{}

type KeyPress struct {
	Code  uint64
	Label string
}

type KeyRelease struct {
	Code  uint64
	Label string
}

type Resize struct {
	Width  int
	Height int
}

type CloseRequest struct{}

const EscapeLabel = "Escape"
