package clock

import (
	"math"
	"time"
)

// AngleSet is the rotation of each hand in degrees, clockwise from 12.
type AngleSet struct {
	Hour   float64
	Minute float64
	Second float64
}

// Angles computes hand rotations for a wall-clock time. Hands jump once per
// second; sub-second time is ignored.
func Angles(now time.Time) AngleSet {
	h, m, s := now.Clock()
	return AngleSet{
		Hour:   (float64(h%12) + float64(m)/60) * 30,
		Minute: float64(m) * 6,
		Second: float64(s) * 6,
	}
}

// Mode selects how hands are posed.
type Mode int

const (
	// ModeVector rotates a line from the pivot by the raw angle.
	ModeVector Mode = iota
	// ModeRounded rotates a rounded bar, which only extends downward, by the
	// opposite angle about its midpoint.
	ModeRounded
)

func (m Mode) String() string {
	if m == ModeRounded {
		return "rounded"
	}
	return "vector"
}

// Point is a screen position in pixels, y down.
type Point struct {
	X, Y float64
}

// Pose is a hand ready to draw.
type Pose struct {
	Mode Mode
	// Rotation actually applied for the mode
	Angle float64
	Pivot Point
	Tip   Point
}

// PoseHand places a hand of the given length (negative is up) at angle
// around center.
func PoseHand(mode Mode, angle, length float64, center Point) Pose {
	p := Pose{Mode: mode, Angle: angle, Pivot: center}
	extent := length
	if mode == ModeRounded {
		p.Angle = math.Mod(angle+180, 360)
		extent = math.Abs(length)
	}
	rad := p.Angle * math.Pi / 180
	p.Tip = Point{
		X: center.X - extent*math.Sin(rad),
		Y: center.Y + extent*math.Cos(rad),
	}
	return p
}
