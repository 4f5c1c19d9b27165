package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/bytedance/sonic"
)

// Store loads and saves the record at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// ResolveDir returns the directory that holds the config file and the Assets folder.
// Portable mode uses the working directory; otherwise the per-user data directory.
func ResolveDir(portable bool) (string, error) {
	if portable {
		return os.Getwd()
	}
	dir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigDirCreation, err)
	}
	return dir, nil
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the backing file is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the record. The returned config is always usable. A missing or
// unreadable file yields the default record; a record with out-of-range
// fields is coerced by Sanitize and reported with ErrInvalidConfig.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("%w: %s", ErrConfigNotFound, s.path)
		}
		return Default(), fmt.Errorf("failed to read config file %s: %w", s.path, err)
	}

	// Absent fields keep their defaults
	cfg := Default()
	if err := sonic.ConfigStd.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", s.path, err)
	}

	verr := cfg.Validate()
	cfg.Sanitize()
	if verr != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, verr)
	}
	return cfg, nil
}

// Save writes the record verbatim as indented JSON.
func (s *Store) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidConfig)
	}

	data, err := sonic.ConfigStd.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigDirCreation, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}
