package clock

// Layers is the opacity of each drawn element, each in (0,1].
type Layers struct {
	Image  float64
	Hour   float64
	Minute float64
	Second float64
	Center float64
}

// Policy offsets hands and the center ornament above the base opacity.
type Policy struct {
	HandOffset   float64
	CenterOffset float64
}

var (
	// DefaultPolicy is the layering used by the overlay.
	DefaultPolicy = Policy{HandOffset: 0.15, CenterOffset: 0.25}
	// NarrowPolicy is the older, flatter layering.
	NarrowPolicy = Policy{HandOffset: 0.1, CenterOffset: 0.2}
)

// Layers derives per-element opacity from base.
func (p Policy) Layers(base float64) Layers {
	hand := capOne(base + p.HandOffset)
	return Layers{
		Image:  capOne(base),
		Hour:   hand,
		Minute: hand,
		Second: hand,
		Center: capOne(base + p.CenterOffset),
	}
}

// Full is the hover override: everything opaque.
func Full() Layers {
	return Layers{Image: 1, Hour: 1, Minute: 1, Second: 1, Center: 1}
}

func capOne(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
