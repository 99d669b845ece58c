package gfx

import "time"

// Scene is one demo. Init uploads everything the scene needs; Draw renders
// a frame elapsed after the scene started; Close releases GPU objects.
type Scene interface {
	Name() string
	Init(dev Device) error
	Draw(dev Device, elapsed time.Duration)
	Close(dev Device)
}
