package clock

import "math"

const (
	// Non-linear regime bounds on width+height (exclusive on both ends)
	ScaleMin  = 100
	ScaleMax  = 1500
	Steepness = 1.19

	// Accepted width/height ratio for a resize to update the hands
	MinAspect = 0.8
	MaxAspect = 1.1
)

// Hand is the length and stroke thickness of one hand. Length is negative
// (screen up from the pivot); thickness is positive.
type Hand struct {
	Length    float64
	Thickness float64
}

// Profile holds the geometry of all three hands for one window size.
type Profile struct {
	Hour   Hand
	Minute Hand
	Second Hand
}

type handRange struct {
	lenMin, lenMax     float64
	thickMin, thickMax float64
}

var (
	hourRange   = handRange{10, 120, 4, 9}
	minuteRange = handRange{15, 190, 3, 8}
	secondRange = handRange{24, 250, 1, 7}
)

type step struct {
	min    int
	hour   Hand
	minute Hand
	second Hand
}

// Descending thresholds; the last row is the fallback below 100.
var stepTable = []step{
	{1500, Hand{-120, 9}, Hand{-220, 8}, Hand{-260, 7}},
	{1400, Hand{-110, 8}, Hand{-190, 7}, Hand{-240, 6}},
	{1300, Hand{-105, 8}, Hand{-160, 7}, Hand{-220, 6}},
	{1200, Hand{-100, 7}, Hand{-140, 6}, Hand{-180, 5}},
	{1100, Hand{-90, 7}, Hand{-130, 6}, Hand{-170, 5}},
	{1000, Hand{-85, 7}, Hand{-120, 6}, Hand{-160, 5}},
	{900, Hand{-80, 6}, Hand{-100, 5}, Hand{-130, 3}},
	{800, Hand{-75, 6}, Hand{-90, 5}, Hand{-120, 3}},
	{700, Hand{-60, 5}, Hand{-80, 4}, Hand{-110, 2}},
	{600, Hand{-50, 5}, Hand{-70, 4}, Hand{-90, 2}},
	{500, Hand{-40, 5}, Hand{-59, 4}, Hand{-80, 2}},
	{400, Hand{-32, 5}, Hand{-48, 4}, Hand{-68, 2}},
	{300, Hand{-22, 4}, Hand{-35, 3}, Hand{-45, 1}},
	{200, Hand{-18, 4}, Hand{-27, 3}, Hand{-38, 1}},
	{100, Hand{-15, 4}, Hand{-20, 3}, Hand{-32, 1}},
	{math.MinInt, Hand{-10, 4}, Hand{-15, 3}, Hand{-24, 1}},
}

// NonLinear maps input from [inMin,inMax] onto [outMin,outMax] along a power curve.
// Input outside the range is clamped first.
func NonLinear(input, inMin, inMax, outMin, outMax, steepness float64) float64 {
	input = math.Max(inMin, math.Min(inMax, input))
	norm := (input - inMin) / (inMax - inMin)
	return outMin + math.Pow(norm, steepness)*(outMax-outMin)
}

func (r handRange) scale(total float64) Hand {
	return Hand{
		Length:    -NonLinear(total, ScaleMin, ScaleMax, r.lenMin, r.lenMax, Steepness),
		Thickness: NonLinear(total, ScaleMin, ScaleMax, r.thickMin, r.thickMax, Steepness),
	}
}

// StepProfile looks total up in the fixed threshold table.
func StepProfile(total int) Profile {
	row := stepTable[len(stepTable)-1]
	for _, s := range stepTable {
		if total >= s.min {
			row = s
			break
		}
	}
	return Profile{Hour: row.hour, Minute: row.minute, Second: row.second}
}

// Scale derives the hand geometry for a window whose width+height is total.
func Scale(total int) Profile {
	if total > ScaleMin && total < ScaleMax {
		t := float64(total)
		return Profile{
			Hour:   hourRange.scale(t),
			Minute: minuteRange.scale(t),
			Second: secondRange.scale(t),
		}
	}
	return StepProfile(total)
}

// AspectOK reports whether w/h lies in the accepted ratio range.
func AspectOK(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	ratio := float64(w) / float64(h)
	return ratio >= MinAspect && ratio <= MaxAspect
}

// DefaultProfile is the geometry used before any size has been applied.
func DefaultProfile() Profile {
	return StepProfile(0)
}

// Scaler keeps the last accepted profile so degenerate resizes leave the hands alone.
type Scaler struct {
	profile Profile
}

func NewScaler() *Scaler {
	return &Scaler{profile: DefaultProfile()}
}

// Resize recomputes the profile for a w x h window. It returns false and the
// prior profile when the aspect ratio is rejected.
func (s *Scaler) Resize(w, h int) (Profile, bool) {
	if !AspectOK(w, h) {
		return s.profile, false
	}
	s.profile = Scale(w + h)
	return s.profile, true
}

// Profile returns the current profile
func (s *Scaler) Profile() Profile {
	return s.profile
}
