package overlay

import "image"

// Drag turns cursor motion into window motion while the left button is held.
type Drag struct {
	active       bool
	anchorCursor image.Point
	anchorWindow image.Point
}

// Begin starts a drag from the given window position and global cursor.
func (d *Drag) Begin(window, cursor image.Point) {
	d.active = true
	d.anchorWindow = window
	d.anchorCursor = cursor
}

// Move returns where the window should go for the cursor, or false when idle.
func (d *Drag) Move(cursor image.Point) (image.Point, bool) {
	if !d.active {
		return image.Point{}, false
	}
	return d.anchorWindow.Add(cursor.Sub(d.anchorCursor)), true
}

// End stops the drag and reports whether one was running.
func (d *Drag) End() bool {
	was := d.active
	d.active = false
	return was
}

func (d *Drag) Active() bool {
	return d.active
}
