package clock

import (
	"image/color"
	"testing"
)

func TestSegments_SolidThenBlend(t *testing.T) {
	base := color.NRGBA{R: 200, A: 0xff}
	g := NewGradient(base, true, 0.5)
	p := PoseHand(ModeVector, 0, -100, Point{50, 150})

	segs := Segments(p, g, 4)
	if len(segs) != 5 {
		t.Fatalf("len = %d, want 5", len(segs))
	}
	if segs[0].From != p.Pivot || segs[0].Color != base {
		t.Errorf("solid run = %+v", segs[0])
	}
	if !near(segs[0].To.Y, 100) {
		t.Errorf("solid run ends at %v, want y=100", segs[0].To)
	}
	last := segs[len(segs)-1]
	if !near(last.To.X, p.Tip.X) || !near(last.To.Y, p.Tip.Y) {
		t.Errorf("last ends at %v, want tip %v", last.To, p.Tip)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Color.R >= segs[i-1].Color.R {
			t.Errorf("segment %d not darker: %v then %v", i, segs[i-1].Color, segs[i].Color)
		}
		if !near(segs[i].From.Y, segs[i-1].To.Y) {
			t.Errorf("gap between segments %d and %d", i-1, i)
		}
	}
}

func TestSegments_Edges(t *testing.T) {
	p := PoseHand(ModeVector, 90, -10, Point{})
	base := color.NRGBA{G: 100, A: 0xff}

	if segs := Segments(p, NewGradient(base, false, 0), 3); len(segs) != 3 {
		t.Errorf("zero-length gradient: %d segments, want 3", len(segs))
	}
	if segs := Segments(p, NewGradient(base, false, 1), 3); len(segs) != 1 {
		t.Errorf("full solid: %d segments, want 1", len(segs))
	}
	if segs := Segments(p, NewGradient(base, false, 0.5), 0); len(segs) != 2 {
		t.Errorf("steps 0: %d segments, want 2", len(segs))
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}
	if got := WithAlpha(c, 0.5).A; got != 127 {
		t.Errorf("alpha = %d, want 127", got)
	}
	if got := WithAlpha(c, 1.4).A; got != 0xff {
		t.Errorf("alpha = %d, want 255", got)
	}
}
