package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), ConfigFileName))
}

func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	s := tempStore(t)

	cfg, err := s.Load()
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("err = %v, want ErrConfigNotFound", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want default %+v", *cfg, *Default())
	}
	if s.Exists() {
		t.Error("Load must not create the file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := tempStore(t)

	want := &Config{
		Version:        "1.2.3",
		Metrics:        "Memory 12 MB, 8 cores",
		ClockFace:      "Clockface3",
		WindowX:        412,
		WindowY:        97,
		WindowW:        300,
		WindowH:        320,
		Opacity:        0.45,
		GradientLength: 0.8,
		GradientDarken: false,
		RandomHands:    true,
		HourColor:      "112233",
		MinuteColor:    "AABBCC",
		SecondColor:    "FF0000",
		HideTaskbar:    true,
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, *want)
	}
}

func TestLoad_AbsentFieldsDefaulted(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte(`{"clockFace":"Clockface2","windowX":50}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.ClockFace = "Clockface2"
	want.WindowX = 50
	if *cfg != *want {
		t.Errorf("got %+v, want %+v", *cfg, *want)
	}
}

func TestLoad_MalformedFallsBackToDefault(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte(`{"clockFace": `), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := s.Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrConfigNotFound) {
		t.Errorf("parse error reported as not found: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want default", *cfg)
	}
}

func TestLoad_SanitizesValues(t *testing.T) {
	s := tempStore(t)
	raw := `{"clockFace":" Clockface5.png ","opacity":0,"windowW":-4,"windowH":200,"gradientLength":-1}`
	if err := os.WriteFile(s.Path(), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := s.Load()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if cfg.ClockFace != "Clockface5" {
		t.Errorf("ClockFace = %q, want Clockface5", cfg.ClockFace)
	}
	if cfg.Opacity != OpacityFloor {
		t.Errorf("Opacity = %v, want %v", cfg.Opacity, OpacityFloor)
	}
	if cfg.WindowW != DefaultWindowWidth || cfg.WindowH != DefaultWindowHeight {
		t.Errorf("size = %dx%d, want default", cfg.WindowW, cfg.WindowH)
	}
	if cfg.GradientLength != 0 {
		t.Errorf("GradientLength = %v, want 0", cfg.GradientLength)
	}
}

func TestLoad_OffScreenPositionReset(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"negative x", `{"clockFace":"Clockface2","windowX":-99999,"windowY":40,"windowW":300,"windowH":320}`},
		{"negative y", `{"clockFace":"Clockface2","windowX":40,"windowY":-3,"windowW":300,"windowH":320}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tempStore(t)
			if err := os.WriteFile(s.Path(), []byte(tt.raw), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := s.Load()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if cfg.WindowX != DefaultWindowX || cfg.WindowY != DefaultWindowY {
				t.Errorf("position = %d,%d, want default", cfg.WindowX, cfg.WindowY)
			}
			// untouched fields survive the coercion
			if cfg.ClockFace != "Clockface2" || cfg.WindowW != 300 || cfg.WindowH != 320 {
				t.Errorf("got %+v, other fields changed", *cfg)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("coerced record still invalid: %v", err)
			}
		})
	}
}

func TestLoad_OutOfRangeReported(t *testing.T) {
	for _, raw := range []string{
		`{"clockFace":"","windowW":-5,"opacity":-3}`,
		`{"opacity":42,"windowH":-1}`,
	} {
		s := tempStore(t)
		if err := os.WriteFile(s.Path(), []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := s.Load()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", raw, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: coerced record still invalid: %v", raw, err)
		}
	}
}

func TestSave_OmitsEmptyDiagnostics(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, key := range []string{`"version"`, `"metrics"`} {
		if strings.Contains(text, key) {
			t.Errorf("saved file contains %s for empty value:\n%s", key, text)
		}
	}
	for _, key := range []string{`"clockFace"`, `"windowW"`, `"hourColor"`, `"hideTaskbar"`} {
		if !strings.Contains(text, key) {
			t.Errorf("saved file missing %s:\n%s", key, text)
		}
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "dir", ConfigFileName))
	if err := s.Save(Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !s.Exists() {
		t.Error("file not written")
	}
}

func TestSave_NilRecord(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestResolveDir_Portable(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ResolveDir(true)
	if err != nil {
		t.Fatalf("ResolveDir: %v", err)
	}
	if got != wd {
		t.Errorf("got %q, want %q", got, wd)
	}
}
