package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/draggable-clock/internal/overlay"
)

// Window adapts the ebiten window to the overlay's Window and Platform.
type Window struct {
	title string
}

func NewWindow() *Window {
	return &Window{}
}

func (w *Window) Position() image.Point {
	x, y := ebiten.WindowPosition()
	return image.Pt(x, y)
}

func (w *Window) Size() image.Point {
	width, height := ebiten.WindowSize()
	return image.Pt(width, height)
}

func (w *Window) Move(p image.Point) {
	ebiten.SetWindowPosition(p.X, p.Y)
}

func (w *Window) Resize(size image.Point) {
	ebiten.SetWindowSize(size.X, size.Y)
}

func (w *Window) State() overlay.State {
	switch {
	case ebiten.IsWindowMinimized():
		return overlay.StateMinimized
	case ebiten.IsWindowMaximized():
		return overlay.StateMaximized
	}
	return overlay.StateNormal
}

func (w *Window) SetTitle(title string) {
	if title == w.title {
		return
	}
	w.title = title
	ebiten.SetWindowTitle(title)
}

// GlobalCursorPosition derives the screen cursor from the window origin,
// since ebiten only reports window-local positions.
func (w *Window) GlobalCursorPosition() image.Point {
	x, y := ebiten.CursorPosition()
	return w.Position().Add(image.Pt(x, y))
}

// SetExtendedWindowStyle applies what ebiten can change on a live window.
// Hiding from the taskbar is only possible before the loop starts.
func (w *Window) SetExtendedWindowStyle(flags overlay.StyleFlags) error {
	if flags.Has(overlay.StyleToolWindow) {
		return overlay.ErrUnsupported
	}
	if flags.Has(overlay.StyleTopmost) {
		ebiten.SetWindowFloating(true)
	}
	return nil
}
