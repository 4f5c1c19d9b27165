// Package chime plays a short tone on the hour.
package chime

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLength = 220 * time.Millisecond
	// Volume is in halvings of amplitude
	volume = -1.5
)

// E5 then C5
var notes = []float64{659.25, 523.25}

// Chimer sounds once when a tick lands on a whole hour.
type Chimer struct {
	mu       sync.Mutex
	log      zerolog.Logger
	lastHour int
	initDone bool
	disabled bool
	playing  atomic.Bool

	// play is swapped in tests
	play func(s beep.Streamer) error
}

func New(logger zerolog.Logger) *Chimer {
	c := &Chimer{log: logger, lastHour: -1}
	c.play = c.playSpeaker
	return c
}

// Tick implements the overlay clock hook.
func (c *Chimer) Tick(now time.Time) {
	// first tick seen in minute 0
	if now.Minute() != 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disabled || c.playing.Load() || now.Hour() == c.lastHour {
		return
	}
	c.lastHour = now.Hour()

	s := &effects.Volume{
		Streamer: melody(sampleRate, notes, noteLength),
		Base:     2,
		Volume:   volume,
	}
	c.playing.Store(true)
	// runs on the speaker goroutine with the speaker locked
	done := beep.Callback(func() { c.playing.Store(false) })
	if err := c.play(beep.Seq(s, done)); err != nil {
		c.log.Warn().Err(err).Msg("audio unavailable, chime disabled")
		c.disabled = true
		c.playing.Store(false)
		return
	}
	c.log.Debug().Int("hour", now.Hour()).Msg("chimed")
}

func (c *Chimer) playSpeaker(s beep.Streamer) error {
	if !c.initDone {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
			return err
		}
		c.initDone = true
	}
	speaker.Play(s)
	return nil
}

// Close stops anything still playing.
func (c *Chimer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initDone {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
