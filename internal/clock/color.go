package clock

import (
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// GradientShift is how far the tip color moves toward black or white.
const GradientShift = 0.5

// Derive turns a configured color string into an opaque color. The first six
// characters are read as RRGGBB. Longer non-hex values are tried as CSS color
// names. Anything shorter, or unknown, becomes a random opaque color from rng.
func Derive(s string, rng *rand.Rand) color.NRGBA {
	s = strings.TrimSpace(s)
	if len(s) < 6 {
		return Random(rng)
	}
	if c, ok := parseHex(s[:6]); ok {
		return c
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: 0xff}
	}
	return Random(rng)
}

// Random returns a uniformly random opaque color.
func Random(rng *rand.Rand) color.NRGBA {
	return color.NRGBA{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
		A: 0xff,
	}
}

func parseHex(s string) (color.NRGBA, bool) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// Lerp moves each channel of from toward to by amount, truncating to a byte.
func Lerp(from, to color.NRGBA, amount float64) color.NRGBA {
	ch := func(a, b uint8) uint8 {
		v := float64(a) + (float64(b)-float64(a))*amount
		return uint8(clampf(v, 0, 255))
	}
	return color.NRGBA{
		R: ch(from.R, to.R),
		G: ch(from.G, to.G),
		B: ch(from.B, to.B),
		A: ch(from.A, to.A),
	}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DarkerBy interpolates c toward black.
func DarkerBy(c color.NRGBA, amount float64) color.NRGBA {
	return Lerp(c, color.NRGBA{A: 0xff}, amount)
}

// LighterBy interpolates c toward white.
func LighterBy(c color.NRGBA, amount float64) color.NRGBA {
	return Lerp(c, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, amount)
}

// Stop is one gradient stop, Offset in [0,1] from pivot to tip.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a two-stop brush along a hand. Before the first stop the
// base color is solid.
type Gradient struct {
	Start Stop
	End   Stop
}

// NewGradient builds the hand brush from a base color.
func NewGradient(base color.NRGBA, darken bool, length float64) Gradient {
	offset := 0.5
	if length <= 1 {
		offset = clampf(length, 0, 1)
	}
	tip := LighterBy(base, GradientShift)
	if darken {
		tip = DarkerBy(base, GradientShift)
	}
	return Gradient{
		Start: Stop{Offset: offset, Color: base},
		End:   Stop{Offset: 1, Color: tip},
	}
}

// At samples the gradient at t in [0,1].
func (g Gradient) At(t float64) color.NRGBA {
	switch {
	case t <= g.Start.Offset:
		return g.Start.Color
	case t >= g.End.Offset:
		return g.End.Color
	}
	span := g.End.Offset - g.Start.Offset
	if span <= 0 {
		return g.End.Color
	}
	return Lerp(g.Start.Color, g.End.Color, (t-g.Start.Offset)/span)
}
