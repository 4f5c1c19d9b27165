package overlay

import (
	"image"
	"time"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// Event is anything the UI loop delivers to the controller.
type Event interface {
	isEvent()
}

// PointerDown is a button press at a window-local position.
type PointerDown struct {
	Button Button
	At     image.Point
}

// PointerMove is a cursor move at a window-local position.
type PointerMove struct {
	At image.Point
}

// PointerUp is a button release.
type PointerUp struct {
	Button Button
}

// PointerEnter and PointerExit bracket the cursor being over the window.
type PointerEnter struct{}
type PointerExit struct{}

// Wheel carries vertical scroll notches.
type Wheel struct {
	Delta float64
}

// WindowGeometryChanged reports a position or size change. The tracker
// reads the current geometry from the window itself.
type WindowGeometryChanged struct {
	SizeChanged bool
}

// WindowActivationChanged reports focus gained or lost.
type WindowActivationChanged struct {
	Active bool
}

// Tick is the once-per-second clock update.
type Tick struct {
	Now time.Time
}

// Closing is a user-initiated close.
type Closing struct{}

// Destroying is the final teardown notification; it always arrives.
type Destroying struct{}

// OpenPicker asks for the face picker window.
type OpenPicker struct{}

// FacesListed replaces the cycling list with a fresh enumeration.
type FacesListed struct {
	Names []string
}

// FacePicked is a face chosen in the picker.
type FacePicked struct {
	Name string
}

// FaceLoaded carries a decoded face image, or the error that prevented it.
type FaceLoaded struct {
	Name  string
	Image image.Image
	Err   error
}

func (PointerDown) isEvent()             {}
func (PointerMove) isEvent()             {}
func (PointerUp) isEvent()               {}
func (PointerEnter) isEvent()            {}
func (PointerExit) isEvent()             {}
func (Wheel) isEvent()                   {}
func (WindowGeometryChanged) isEvent()   {}
func (WindowActivationChanged) isEvent() {}
func (Tick) isEvent()                    {}
func (Closing) isEvent()                 {}
func (Destroying) isEvent()              {}
func (OpenPicker) isEvent()              {}
func (FacesListed) isEvent()             {}
func (FacePicked) isEvent()              {}
func (FaceLoaded) isEvent()              {}
