package game

import (
	"image/color"
	"math"

	"github.com/iburimskiy/draggable-clock/internal/clock"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fitSquare returns the scale and offset that center an imgW x imgH image
// inside a w x h area without distortion.
func fitSquare(imgW, imgH, w, h int) (scale, dx, dy float64) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, 0
	}
	scale = math.Min(float64(w)/float64(imgW), float64(h)/float64(imgH))
	dx = (float64(w) - float64(imgW)*scale) / 2
	dy = (float64(h) - float64(imgH)*scale) / 2
	return scale, dx, dy
}

// dialRadius is the radius of the largest circle that fits the window.
func dialRadius(w, h int) float64 {
	return math.Min(float64(w), float64(h)) / 2
}

// ornamentColor darkens the hour hand color for the center cap.
func ornamentColor(g clock.Gradient, opacity float64) color.NRGBA {
	return clock.WithAlpha(clock.DarkerBy(g.Start.Color, 0.3), clamp01(opacity))
}
