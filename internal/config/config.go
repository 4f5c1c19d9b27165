package config

import "time"

const (
	AppName        = "Draggable"
	ConfigFileName = AppName + "Config.json"
	DebugLogName   = "Debug.log"

	AssetsDirName = "Assets"
	FacePattern   = "Clock*.png"
	FaceExt       = ".png"

	// Window dimensions on first run
	DefaultWindowX      = 10
	DefaultWindowY      = 10
	DefaultWindowWidth  = 245
	DefaultWindowHeight = 270
	MinWindowSize       = 60
	WheelResizeStep     = 10

	// Appearance
	DefaultClockFace      = "Clockface1c"
	DefaultOpacity        = 0.6
	OpacityFloor          = 0.1
	DefaultGradientLength = 0.5
	DefaultHourColor      = "4169E1" // royal blue
	DefaultMinuteColor    = "404040" // dark gray
	DefaultSecondColor    = "B22222" // firebrick

	// Loop timing
	TicksPerSecond   = 30
	GeometryDebounce = 500 * time.Millisecond
	WatchDebounce    = 200 * time.Millisecond
)
