package clock

import "image/color"

// Segment is one straight, single-colored piece of a hand stroke.
type Segment struct {
	From, To Point
	Color    color.NRGBA
}

// Segments breaks a posed hand into strokes that approximate its gradient:
// one solid run from the pivot to the first stop, then steps pieces blending
// toward the tip color.
func Segments(p Pose, g Gradient, steps int) []Segment {
	if steps < 1 {
		steps = 1
	}
	at := func(t float64) Point {
		return Point{
			X: p.Pivot.X + (p.Tip.X-p.Pivot.X)*t,
			Y: p.Pivot.Y + (p.Tip.Y-p.Pivot.Y)*t,
		}
	}

	start := clampf(g.Start.Offset, 0, 1)
	segs := make([]Segment, 0, steps+1)
	if start > 0 {
		segs = append(segs, Segment{From: p.Pivot, To: at(start), Color: g.Start.Color})
	}
	if start >= 1 {
		return segs
	}

	span := (1 - start) / float64(steps)
	for i := 0; i < steps; i++ {
		t0 := start + span*float64(i)
		t1 := t0 + span
		segs = append(segs, Segment{
			From:  at(t0),
			To:    at(t1),
			Color: g.At((t0 + t1) / 2),
		})
	}
	return segs
}

// WithAlpha scales a color's alpha by opacity in [0,1].
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clampf(opacity, 0, 1))
	return c
}
