package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/draggable-clock/internal/clock"
	"github.com/iburimskiy/draggable-clock/internal/overlay"
)

const (
	// Gradient approximation
	handSteps = 8

	placeholderTicks = 12
)

var placeholderColor = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

func (g *Game) drawFace(screen *ebiten.Image, s overlay.Scene) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.face == nil {
		drawPlaceholder(screen, w, h, s.Opacity.Image)
		return
	}

	fw, fh := g.face.Bounds().Dx(), g.face.Bounds().Dy()
	scale, dx, dy := fitSquare(fw, fh, w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(dx, dy)
	op.ColorScale.ScaleAlpha(float32(clamp01(s.Opacity.Image)))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.face, op)
}

// drawPlaceholder stands in for a face image that failed to load
func drawPlaceholder(screen *ebiten.Image, w, h int, opacity float64) {
	cx, cy := float32(w)/2, float32(h)/2
	r := float32(dialRadius(w, h)) - 2
	if r <= 0 {
		return
	}
	c := clock.WithAlpha(placeholderColor, opacity)
	vector.StrokeCircle(screen, cx, cy, r, 2, c, true)

	for i := 0; i < placeholderTicks; i++ {
		a := float64(i) * 2 * math.Pi / placeholderTicks
		sin, cos := math.Sincos(a)
		inner := r * 0.88
		vector.StrokeLine(screen,
			cx+inner*float32(sin), cy-inner*float32(cos),
			cx+r*float32(sin), cy-r*float32(cos),
			2, c, true)
	}
}

func (g *Game) drawHands(screen *ebiten.Image, s overlay.Scene) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	center := clock.Point{X: float64(w) / 2, Y: float64(h) / 2}
	poses := s.HandPoses(center)

	hands := [3]struct {
		grad    clock.Gradient
		hand    clock.Hand
		opacity float64
	}{
		{s.Hour, s.Profile.Hour, s.Opacity.Hour},
		{s.Minute, s.Profile.Minute, s.Opacity.Minute},
		{s.Second, s.Profile.Second, s.Opacity.Second},
	}

	for i, hd := range hands {
		pose := poses[i]
		width := float32(hd.hand.Thickness)
		for _, seg := range clock.Segments(pose, hd.grad, handSteps) {
			vector.StrokeLine(screen,
				float32(seg.From.X), float32(seg.From.Y),
				float32(seg.To.X), float32(seg.To.Y),
				width, clock.WithAlpha(seg.Color, hd.opacity), true)
		}
		if pose.Mode == clock.ModeRounded {
			// round caps at both ends
			vector.DrawFilledCircle(screen, float32(pose.Pivot.X), float32(pose.Pivot.Y), width/2,
				clock.WithAlpha(hd.grad.Start.Color, hd.opacity), true)
			vector.DrawFilledCircle(screen, float32(pose.Tip.X), float32(pose.Tip.Y), width/2,
				clock.WithAlpha(hd.grad.End.Color, hd.opacity), true)
		}
	}

	// Center ornament
	r := float32(math.Max(s.Profile.Hour.Thickness, s.Profile.Minute.Thickness))
	cx, cy := float32(center.X), float32(center.Y)
	vector.DrawFilledCircle(screen, cx, cy, r, ornamentColor(s.Hour, s.Opacity.Center), true)
	vector.StrokeCircle(screen, cx, cy, r, 1, clock.WithAlpha(s.Second.Start.Color, s.Opacity.Center), true)
}

func drawInfo(screen *ebiten.Image, s overlay.Scene) {
	if !s.ShowInfo {
		return
	}
	msg := s.Info
	if s.FaceName != "" {
		msg += "\n" + s.FaceName
	}
	ebitenutil.DebugPrintAt(screen, msg, 6, 6)
}
