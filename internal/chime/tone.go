package chime

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine wave with a short linear fade at each end so it starts
// and stops without clicks.
type tone struct {
	freq  float64
	rate  beep.SampleRate
	pos   int
	total int
	fade  int
}

func newTone(rate beep.SampleRate, freq float64, d time.Duration) *tone {
	total := rate.N(d)
	fade := rate.N(15 * time.Millisecond)
	if fade*2 > total {
		fade = total / 2
	}
	return &tone{freq: freq, rate: rate, total: total, fade: fade}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate)) * t.gain()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// gain is the envelope at the current position
func (t *tone) gain() float64 {
	if t.fade == 0 {
		return 1
	}
	switch {
	case t.pos < t.fade:
		return float64(t.pos) / float64(t.fade)
	case t.pos >= t.total-t.fade:
		return float64(t.total-t.pos) / float64(t.fade)
	}
	return 1
}

// melody plays the chime notes back to back with a short gap.
func melody(rate beep.SampleRate, notes []float64, each time.Duration) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes)*2)
	for _, f := range notes {
		parts = append(parts, newTone(rate, f, each))
		parts = append(parts, beep.Silence(rate.N(each/4)))
	}
	return beep.Seq(parts...)
}
