package config

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config is the single persisted record. Field names are part of the file format.
type Config struct {
	Version        string  `json:"version,omitempty"`
	Metrics        string  `json:"metrics,omitempty"`
	ClockFace      string  `json:"clockFace"`
	WindowX        int     `json:"windowX"`
	WindowY        int     `json:"windowY"`
	WindowW        int     `json:"windowW"`
	WindowH        int     `json:"windowH"`
	Opacity        float64 `json:"opacity"`
	GradientLength float64 `json:"gradientLength"`
	GradientDarken bool    `json:"gradientDarken"`
	RandomHands    bool    `json:"randomHands"`
	HourColor      string  `json:"hourColor"`
	MinuteColor    string  `json:"minuteColor"`
	SecondColor    string  `json:"secondColor"`
	HideTaskbar    bool    `json:"hideTaskbar"`
}

// Default returns the canonical first-run record.
func Default() *Config {
	return &Config{
		ClockFace:      DefaultClockFace,
		WindowX:        DefaultWindowX,
		WindowY:        DefaultWindowY,
		WindowW:        DefaultWindowWidth,
		WindowH:        DefaultWindowHeight,
		Opacity:        DefaultOpacity,
		GradientLength: DefaultGradientLength,
		GradientDarken: true,
		RandomHands:    false,
		HourColor:      DefaultHourColor,
		MinuteColor:    DefaultMinuteColor,
		SecondColor:    DefaultSecondColor,
		HideTaskbar:    false,
	}
}

// Sanitize coerces values that older files or hand edits leave out of range.
func (c *Config) Sanitize() {
	c.ClockFace = strings.TrimSuffix(strings.TrimSpace(c.ClockFace), FaceExt)
	if c.ClockFace == "" {
		c.ClockFace = DefaultClockFace
	}
	c.Opacity = FloorOpacity(c.Opacity)
	if c.WindowW <= 0 || c.WindowH <= 0 {
		c.WindowW = DefaultWindowWidth
		c.WindowH = DefaultWindowHeight
	}
	if c.WindowX < 0 || c.WindowY < 0 {
		c.WindowX = DefaultWindowX
		c.WindowY = DefaultWindowY
	}
	if c.GradientLength < 0 {
		c.GradientLength = 0
	}
}

// Stamp records build and process diagnostics ahead of a save.
func (c *Config) Stamp(version, metrics string) {
	c.Version = version
	c.Metrics = metrics
	if c.Opacity == 0 {
		c.Opacity = OpacityFloor
	}
}

// Validate checks the record is usable to place and render the window.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ClockFace, validation.Required),
		validation.Field(&c.WindowX, validation.Min(0)),
		validation.Field(&c.WindowY, validation.Min(0)),
		validation.Field(&c.WindowW, validation.Required, validation.Min(1)),
		validation.Field(&c.WindowH, validation.Required, validation.Min(1)),
		validation.Field(&c.Opacity, validation.Required, validation.Min(0.0).Exclusive(), validation.Max(1.0)),
		validation.Field(&c.GradientLength, validation.Min(0.0)),
	)
}

// FloorOpacity maps an opacity into (0,1].
func FloorOpacity(v float64) float64 {
	if v <= 0 {
		return OpacityFloor
	}
	if v > 1 {
		return 1
	}
	return v
}
