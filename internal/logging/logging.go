// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the global logger at stderr and, when logPath is set, an
// append-only file. A file that cannot be opened only costs the file output.
// The returned closer releases the file.
func Setup(level, logPath string, console io.Writer) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if console == nil {
		console = os.Stderr
	}
	cw := zerolog.ConsoleWriter{Out: console, TimeFormat: "15:04:05"}

	if logPath == "" {
		log.Logger = zerolog.New(cw).With().Timestamp().Logger()
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Logger = zerolog.New(cw).With().Timestamp().Logger()
		log.Warn().Err(err).Str("path", logPath).Msg("debug log unavailable, console only")
		return nopCloser{}, nil
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(cw, f)).With().Timestamp().Logger()
	return f, nil
}

// Module returns a sub-logger tagged with module=name.
func Module(name string) zerolog.Logger {
	return log.With().Str("module", name).Logger()
}
