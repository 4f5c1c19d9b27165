package overlay

import "image"

// Frame is one poll of the host's raw input and window state.
type Frame struct {
	// Cursor is window-local
	Cursor   image.Point
	WinPos   image.Point
	WinSize  image.Point
	Focused  bool
	Pressed  [3]bool // indexed by Button
	Released [3]bool
	Wheel    float64
}

// Global returns the cursor in screen coordinates.
func (f Frame) Global() image.Point {
	return f.WinPos.Add(f.Cursor)
}

// Inside reports whether the cursor is over the window.
func (f Frame) Inside() bool {
	return f.Cursor.In(image.Rectangle{Max: f.WinSize})
}

// InputState turns successive frames into typed events.
type InputState struct {
	primed  bool
	global  image.Point
	inside  bool
	focused bool
	pos     image.Point
	size    image.Point
}

// Translate diffs f against the previous frame. Events come out in the
// order window, focus, hover, buttons, motion, wheel.
func (s *InputState) Translate(f Frame) []Event {
	var evs []Event

	if !s.primed || f.WinPos != s.pos || f.WinSize != s.size {
		evs = append(evs, WindowGeometryChanged{SizeChanged: !s.primed || f.WinSize != s.size})
	}
	if !s.primed || f.Focused != s.focused {
		evs = append(evs, WindowActivationChanged{Active: f.Focused})
	}

	inside := f.Inside()
	if inside != s.inside {
		if inside {
			evs = append(evs, PointerEnter{})
		} else {
			evs = append(evs, PointerExit{})
		}
	}

	for b := ButtonLeft; b <= ButtonMiddle; b++ {
		if f.Pressed[b] {
			evs = append(evs, PointerDown{Button: b, At: f.Cursor})
		}
	}
	for b := ButtonLeft; b <= ButtonMiddle; b++ {
		if f.Released[b] {
			evs = append(evs, PointerUp{Button: b})
		}
	}

	global := f.Global()
	if s.primed && global != s.global {
		evs = append(evs, PointerMove{At: f.Cursor})
	}

	if f.Wheel != 0 {
		evs = append(evs, Wheel{Delta: f.Wheel})
	}

	s.primed = true
	s.global = global
	s.inside = inside
	s.focused = f.Focused
	s.pos = f.WinPos
	s.size = f.WinSize
	return evs
}
