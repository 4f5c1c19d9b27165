package overlay

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/draggable-clock/internal/config"
)

// Saver persists a config record.
type Saver interface {
	Save(cfg *config.Config) error
}

const (
	saveIdle int32 = iota
	saveRunning
	saveDone
)

// Lifecycle flushes the config at shutdown at most once, whichever of the
// closing or destroying notifications gets there first.
type Lifecycle struct {
	store Saver
	cfg   *config.Config
	stamp func(*config.Config)
	log   zerolog.Logger

	state   atomic.Int32
	closing atomic.Bool
}

// NewLifecycle creates the shutdown guard. stamp, if set, fills diagnostics
// on the copy being written.
func NewLifecycle(store Saver, cfg *config.Config, stamp func(*config.Config), logger zerolog.Logger) *Lifecycle {
	return &Lifecycle{
		store: store,
		cfg:   cfg,
		stamp: stamp,
		log:   logger,
	}
}

// Closing marks the app as shutting down and saves.
func (l *Lifecycle) Closing() bool {
	l.closing.Store(true)
	return l.SaveOnce("closing")
}

// Destroying saves unless an earlier save already succeeded.
func (l *Lifecycle) Destroying() bool {
	l.closing.Store(true)
	return l.SaveOnce("destroying")
}

// IsClosing reports whether shutdown has begun.
func (l *Lifecycle) IsClosing() bool {
	return l.closing.Load()
}

// Saved reports whether the shutdown save has completed.
func (l *Lifecycle) Saved() bool {
	return l.state.Load() == saveDone
}

// SaveOnce writes the config if no save has succeeded yet. A failed write
// releases the guard so a later notification can retry.
func (l *Lifecycle) SaveOnce(reason string) bool {
	if !l.state.CompareAndSwap(saveIdle, saveRunning) {
		l.log.Debug().Str("reason", reason).Msg("config already saved")
		return false
	}

	snap := *l.cfg
	if l.stamp != nil {
		l.stamp(&snap)
	}
	if err := l.store.Save(&snap); err != nil {
		l.log.Error().Err(err).Str("reason", reason).Msg("failed to save config")
		l.state.Store(saveIdle)
		return false
	}

	l.state.Store(saveDone)
	l.log.Info().Str("reason", reason).Msg("config saved")
	return true
}
