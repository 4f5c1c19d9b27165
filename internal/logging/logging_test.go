package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func restoreGlobal(t *testing.T) {
	t.Helper()
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestSetup_WritesFileAndConsole(t *testing.T) {
	restoreGlobal(t)
	path := filepath.Join(t.TempDir(), "Debug.log")
	var console bytes.Buffer

	closer, err := Setup("debug", path, &console)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger := Module("overlay")
	logger.Debug().Msg("hello from test")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"module":"overlay"`) || !strings.Contains(string(data), "hello from test") {
		t.Errorf("file log = %s", data)
	}
	if !strings.Contains(console.String(), "hello from test") {
		t.Errorf("console log = %s", console.String())
	}
}

func TestSetup_Level(t *testing.T) {
	restoreGlobal(t)
	var console bytes.Buffer

	if _, err := Setup("WARN", "", &console); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.Info().Msg("quiet")
	log.Warn().Msg("loud")

	if strings.Contains(console.String(), "quiet") {
		t.Error("info logged at warn level")
	}
	if !strings.Contains(console.String(), "loud") {
		t.Error("warn not logged")
	}
}

func TestSetup_EmptyLevelIsInfo(t *testing.T) {
	restoreGlobal(t)
	if _, err := Setup("", "", &bytes.Buffer{}); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("level = %s", zerolog.GlobalLevel())
	}
}

func TestSetup_BadLevel(t *testing.T) {
	restoreGlobal(t)
	if _, err := Setup("loudest", "", nil); err == nil {
		t.Error("expected error")
	}
}

func TestSetup_UnwritableFileFallsBack(t *testing.T) {
	restoreGlobal(t)
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing", "dir", "Debug.log")

	closer, err := Setup("info", path, &console)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()
	if !strings.Contains(console.String(), "debug log unavailable") {
		t.Errorf("console = %s", console.String())
	}
}
