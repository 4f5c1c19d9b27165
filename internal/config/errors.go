package config

import "errors"

var (
	// ErrConfigNotFound is returned when the config file doesn't exist
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig is returned when a loaded record had fields that needed coercing
	ErrInvalidConfig = errors.New("invalid config")

	// ErrConfigDirCreation is returned when the config directory cannot be created
	ErrConfigDirCreation = errors.New("failed to create config directory")
)
