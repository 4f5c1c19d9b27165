package overlay

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/draggable-clock/internal/config"
)

// Outcome is what the tracker did with a geometry notification.
type Outcome int

const (
	Accepted Outcome = iota
	Debounced
	Invalid
	IgnoredMinimized
	IgnoredMaximized
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Debounced:
		return "debounced"
	case Invalid:
		return "invalid"
	case IgnoredMinimized:
		return "minimized"
	case IgnoredMaximized:
		return "maximized"
	}
	return "unknown"
}

// Tracker copies window geometry into the config when it is stable and sane.
type Tracker struct {
	cfg      *config.Config
	win      Window
	now      func() time.Time
	debounce time.Duration
	log      zerolog.Logger

	// zero until the first accepted write, so the first notification passes
	lastAccepted time.Time
}

func NewTracker(cfg *config.Config, win Window, now func() time.Time, logger zerolog.Logger) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		cfg:      cfg,
		win:      win,
		now:      now,
		debounce: config.GeometryDebounce,
		log:      logger,
	}
}

// Changed handles a position or size notification.
func (t *Tracker) Changed() Outcome {
	if t.now().Sub(t.lastAccepted) <= t.debounce {
		return Debounced
	}
	return t.record()
}

// Settle records the current geometry without the debounce window.
// Validity and presenter-state checks still apply.
func (t *Tracker) Settle() Outcome {
	return t.record()
}

func (t *Tracker) record() Outcome {
	pos := t.win.Position()
	size := t.win.Size()
	if pos.X <= 0 || pos.Y <= 0 || size.X <= 0 || size.Y <= 0 {
		t.log.Debug().
			Int("x", pos.X).Int("y", pos.Y).
			Int("w", size.X).Int("h", size.Y).
			Msg("skipping transient geometry")
		return Invalid
	}

	switch state := t.win.State(); state {
	case StateMinimized:
		t.log.Info().Msg("window is minimized, geometry not saved")
		return IgnoredMinimized
	case StateMaximized:
		t.log.Info().Msg("window is maximized, geometry not saved")
		return IgnoredMaximized
	}

	t.cfg.WindowX, t.cfg.WindowY = pos.X, pos.Y
	t.cfg.WindowW, t.cfg.WindowH = size.X, size.Y
	t.lastAccepted = t.now()
	t.log.Debug().
		Int("x", pos.X).Int("y", pos.Y).
		Int("w", size.X).Int("h", size.Y).
		Msg("geometry recorded")
	return Accepted
}
