package assets

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/draggable-clock/internal/config"
)

// Watch re-lists the library whenever face files are created, removed or
// renamed, and hands the fresh list to cb. Bursts of events are coalesced.
// It returns when ctx is cancelled.
func Watch(ctx context.Context, lib *Library, logger zerolog.Logger, cb func(names []string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(lib.Dir()); err != nil {
		return err
	}
	logger.Info().Str("dir", lib.Dir()).Msg("watcher: started")

	// refreshTimer coalesces bursts of events into one listing
	var refreshTimer *time.Timer
	var refreshCh <-chan time.Time

	scheduleRefresh := func() {
		if refreshTimer == nil {
			refreshTimer = time.NewTimer(config.WatchDebounce)
			refreshCh = refreshTimer.C
		} else {
			refreshTimer.Reset(config.WatchDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if refreshTimer != nil {
				refreshTimer.Stop()
			}
			logger.Info().Msg("watcher: stopped")
			return nil

		case <-refreshCh:
			names, err := lib.List()
			if err != nil {
				logger.Warn().Err(err).Msg("watcher: list failed")
				continue
			}
			logger.Debug().Int("count", len(names)).Msg("watcher: faces changed")
			cb(names)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !IsFace(ev.Name) {
				continue
			}
			// Write changes mtime, which changes the cycling order
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) != 0 {
				scheduleRefresh()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(watchErr).Msg("watcher: error")
		}
	}
}
