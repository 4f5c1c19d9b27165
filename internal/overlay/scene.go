package overlay

import (
	"image"

	"github.com/iburimskiy/draggable-clock/internal/clock"
)

// Scene is everything the renderer needs for one frame.
type Scene struct {
	Angles  clock.AngleSet
	Profile clock.Profile
	Mode    clock.Mode
	Opacity clock.Layers

	Hour   clock.Gradient
	Minute clock.Gradient
	Second clock.Gradient

	// Face is nil until the first image loads. FaceVersion changes
	// whenever Face does so the host can rebuild its texture.
	Face        image.Image
	FaceName    string
	FaceVersion int

	ShowInfo bool
	Info     string
}

// HandPoses places the three hands around center in draw order.
func (s Scene) HandPoses(center clock.Point) [3]clock.Pose {
	return [3]clock.Pose{
		clock.PoseHand(s.Mode, s.Angles.Hour, s.Profile.Hour.Length, center),
		clock.PoseHand(s.Mode, s.Angles.Minute, s.Profile.Minute.Length, center),
		clock.PoseHand(s.Mode, s.Angles.Second, s.Profile.Second.Length, center),
	}
}
