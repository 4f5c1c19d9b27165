package overlay

import (
	"errors"
	"image"
)

// ErrUnsupported is returned when the host cannot perform a window operation.
var ErrUnsupported = errors.New("unsupported by platform")

// State is the presenter state of the window.
type State int

const (
	StateNormal State = iota
	StateMinimized
	StateMaximized
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	}
	return "unknown"
}

// Window is the overlay window as seen by the controller.
type Window interface {
	Position() image.Point
	Size() image.Point
	Move(p image.Point)
	Resize(size image.Point)
	State() State
	SetTitle(title string)
}

// StyleFlags are extended window styles.
type StyleFlags uint

const (
	StyleTopmost StyleFlags = 1 << iota
	StyleToolWindow
)

func (f StyleFlags) Has(flag StyleFlags) bool {
	return f&flag != 0
}

// Platform covers the calls that need the OS rather than the window.
type Platform interface {
	GlobalCursorPosition() image.Point
	SetExtendedWindowStyle(flags StyleFlags) error
}
