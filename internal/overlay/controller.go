package overlay

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/draggable-clock/internal/clock"
	"github.com/iburimskiy/draggable-clock/internal/config"
)

// TitleLayout is the window title clock format.
const TitleLayout = "03:04 PM"

// FaceLoader decodes a face image by name. It may block.
type FaceLoader interface {
	Load(name string) (image.Image, error)
}

// FaceLister enumerates the available face names, newest first. It may block.
type FaceLister interface {
	List() ([]string, error)
}

// FacePicker asks the user to choose a face. It blocks until answered and
// returns ErrPickCanceled when dismissed.
type FacePicker interface {
	Pick(names []string, current string) (string, error)
}

// ErrPickCanceled is returned by a FacePicker when nothing was chosen.
var ErrPickCanceled = errors.New("pick canceled")

// Chimer is told the time on every tick.
type Chimer interface {
	Tick(now time.Time)
}

// Options wires a Controller to its collaborators. Window, Platform and
// Store are required.
type Options struct {
	Window   Window
	Platform Platform
	Store    Saver
	Stamp    func(*config.Config)

	Loader FaceLoader
	Lister FaceLister
	Picker FacePicker
	Chime  Chimer

	Rand   *rand.Rand
	Now    func() time.Time
	Mode   clock.Mode
	Policy clock.Policy

	ShowMessages    bool
	MiddleClickExit bool

	// Spawn runs blocking work off the UI loop. Defaults to a goroutine.
	Spawn func(fn func())

	Logger zerolog.Logger
}

// Controller owns the config for the session and turns events into window
// operations, config changes and scene updates. All methods except Post
// must be called from the UI loop.
type Controller struct {
	cfg  *config.Config
	opts Options
	log  zerolog.Logger

	queue     *Queue
	tracker   *Tracker
	drag      Drag
	cycler    *FaceCycler
	scaler    *clock.Scaler
	lifecycle *Lifecycle

	scene       Scene
	hovered     bool
	initialized bool
	done        bool
}

func NewController(cfg *config.Config, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(opts.Now().UnixNano()), 0))
	}
	if opts.Policy == (clock.Policy{}) {
		opts.Policy = clock.DefaultPolicy
	}
	if opts.Spawn == nil {
		opts.Spawn = func(fn func()) { go fn() }
	}

	c := &Controller{
		cfg:       cfg,
		opts:      opts,
		log:       opts.Logger,
		queue:     NewQueue(),
		tracker:   NewTracker(cfg, opts.Window, opts.Now, opts.Logger),
		cycler:    NewFaceCycler(nil),
		scaler:    clock.NewScaler(),
		lifecycle: NewLifecycle(opts.Store, cfg, opts.Stamp, opts.Logger),
	}
	c.scene.Mode = opts.Mode
	c.scene.ShowInfo = opts.ShowMessages
	c.scene.Profile = c.scaler.Profile()
	c.applyOpacity()
	return c
}

// Start performs first-activation setup and kicks off face enumeration.
func (c *Controller) Start() {
	c.initialize()
	c.refreshFaces()
	c.Dispatch(Tick{Now: c.opts.Now()})
}

// Post queues an event from any goroutine for the next Pump.
func (c *Controller) Post(ev Event) bool {
	return c.queue.Post(func() { c.Dispatch(ev) })
}

// Pump runs continuations posted since the last call.
func (c *Controller) Pump() int {
	return c.queue.Drain()
}

// Done reports whether the overlay should stop its loop.
func (c *Controller) Done() bool {
	return c.done
}

// Scene returns the current render state.
func (c *Controller) Scene() Scene {
	return c.scene
}

// Config returns the live config record.
func (c *Controller) Config() *config.Config {
	return c.cfg
}

// Lifecycle exposes the shutdown guard.
func (c *Controller) Lifecycle() *Lifecycle {
	return c.lifecycle
}

// Dispatch routes one event to the state machines.
func (c *Controller) Dispatch(ev Event) {
	if _, destroying := ev.(Destroying); c.done && !destroying {
		return
	}

	switch e := ev.(type) {
	case PointerDown:
		c.pointerDown(e)
	case PointerMove:
		if p, ok := c.drag.Move(c.opts.Platform.GlobalCursorPosition()); ok {
			c.opts.Window.Move(p)
		}
	case PointerUp:
		if c.drag.End() {
			c.setInfo(fmt.Sprintf("Pointer released (%s)", c.tracker.Settle()))
		}
	case PointerEnter:
		c.hovered = true
		c.applyOpacity()
	case PointerExit:
		c.hovered = false
		c.applyOpacity()
	case Wheel:
		c.wheel(e.Delta)
	case WindowGeometryChanged:
		c.geometryChanged(e)
	case WindowActivationChanged:
		c.activationChanged(e.Active)
	case Tick:
		c.tick(e.Now)
	case OpenPicker:
		c.openPicker()
	case FacesListed:
		c.cycler.SetNames(e.Names)
		c.log.Debug().Int("count", c.cycler.Len()).Msg("face list updated")
	case FacePicked:
		c.selectFace(e.Name)
	case FaceLoaded:
		c.faceLoaded(e)
	case Closing:
		c.tracker.Settle()
		c.lifecycle.Closing()
		c.shutdown()
	case Destroying:
		c.lifecycle.Destroying()
		c.shutdown()
	default:
		c.log.Warn().Str("event", fmt.Sprintf("%T", ev)).Msg("unhandled event")
	}
}

func (c *Controller) shutdown() {
	if n := c.queue.Len(); n > 0 {
		c.log.Debug().Int("pending", n).Msg("dropping queued work")
	}
	c.queue.Close()
	c.drag.End()
	c.done = true
}

func (c *Controller) pointerDown(e PointerDown) {
	c.setInfo(fmt.Sprintf("Pointer pressed at %d,%d (%s)", e.At.X, e.At.Y, e.Button))

	switch e.Button {
	case ButtonLeft:
		c.drag.Begin(c.opts.Window.Position(), c.opts.Platform.GlobalCursorPosition())
	case ButtonRight:
		name, ok := c.cycler.Next()
		if !ok {
			c.log.Warn().Msg("no clock faces to cycle")
			return
		}
		c.selectFace(name)
	case ButtonMiddle:
		if c.opts.MiddleClickExit {
			c.log.Info().Msg("middle click, closing")
			c.Dispatch(Closing{})
		}
	}
}

func (c *Controller) wheel(delta float64) {
	if delta == 0 {
		return
	}
	step := config.WheelResizeStep
	if delta < 0 {
		step = -step
	}
	size := c.opts.Window.Size()
	next := image.Pt(max(size.X+step, config.MinWindowSize), max(size.Y+step, config.MinWindowSize))
	if next != size {
		c.opts.Window.Resize(next)
	}
}

func (c *Controller) geometryChanged(e WindowGeometryChanged) {
	outcome := c.tracker.Changed()
	if e.SizeChanged {
		size := c.opts.Window.Size()
		profile, ok := c.scaler.Resize(size.X, size.Y)
		if !ok {
			c.log.Warn().Int("w", size.X).Int("h", size.Y).Msg("aspect ratio out of range, skipping hand resize")
		} else {
			c.log.Debug().
				Int("total", size.X+size.Y).
				Float64("hour", profile.Hour.Length).
				Float64("minute", profile.Minute.Length).
				Float64("second", profile.Second.Length).
				Msg("hands resized")
		}
		c.scene.Profile = profile
	}
	c.setInfo(fmt.Sprintf("Geometry %s", outcome))
}

func (c *Controller) activationChanged(active bool) {
	if !active {
		c.log.Debug().Msg("window deactivated")
		return
	}
	if err := c.opts.Platform.SetExtendedWindowStyle(StyleTopmost); err != nil {
		c.log.Error().Err(err).Msg("failed to keep window on top")
	}
	c.initialize()
	c.scene.Angles = clock.Angles(c.opts.Now())
	c.applyOpacity()
}

// initialize runs once: face image, hand geometry for the saved size, brushes.
func (c *Controller) initialize() {
	if c.initialized {
		return
	}
	c.initialized = true

	c.loadFace(c.cfg.ClockFace)
	profile, ok := c.scaler.Resize(c.cfg.WindowW, c.cfg.WindowH)
	if !ok {
		c.log.Warn().Int("w", c.cfg.WindowW).Int("h", c.cfg.WindowH).Msg("saved size has an odd aspect, using default hands")
	}
	c.scene.Profile = profile
	c.buildBrushes()
	c.applyOpacity()
}

func (c *Controller) buildBrushes() {
	colors := [3]string{c.cfg.HourColor, c.cfg.MinuteColor, c.cfg.SecondColor}
	var grads [3]clock.Gradient
	for i, s := range colors {
		base := clock.Derive(s, c.opts.Rand)
		if c.cfg.RandomHands {
			base = clock.Random(c.opts.Rand)
		}
		grads[i] = clock.NewGradient(base, c.cfg.GradientDarken, c.cfg.GradientLength)
	}
	c.scene.Hour, c.scene.Minute, c.scene.Second = grads[0], grads[1], grads[2]
}

func (c *Controller) applyOpacity() {
	if c.hovered {
		c.scene.Opacity = clock.Full()
		return
	}
	c.scene.Opacity = c.opts.Policy.Layers(config.FloorOpacity(c.cfg.Opacity))
}

func (c *Controller) tick(now time.Time) {
	c.scene.Angles = clock.Angles(now)
	if !c.opts.ShowMessages {
		c.opts.Window.SetTitle(now.Format(TitleLayout))
	}
	if c.opts.Chime != nil {
		c.opts.Chime.Tick(now)
	}
}

func (c *Controller) selectFace(name string) {
	if name == "" {
		return
	}
	c.cfg.ClockFace = name
	c.setInfo("Face " + name)
	c.loadFace(name)
}

func (c *Controller) loadFace(name string) {
	if c.opts.Loader == nil {
		return
	}
	loader := c.opts.Loader
	c.opts.Spawn(func() {
		if c.queue.Closed() {
			return
		}
		img, err := loader.Load(name)
		c.Post(FaceLoaded{Name: name, Image: img, Err: err})
	})
}

func (c *Controller) faceLoaded(e FaceLoaded) {
	if c.lifecycle.IsClosing() {
		return
	}
	if e.Err != nil {
		c.log.Warn().Err(e.Err).Str("face", e.Name).Msg("failed to load clock face, keeping previous")
		return
	}
	// a slower load for an older selection must not win
	if e.Name != c.cfg.ClockFace {
		c.log.Debug().Str("face", e.Name).Msg("dropping stale face image")
		return
	}
	c.scene.Face = e.Image
	c.scene.FaceName = e.Name
	c.scene.FaceVersion++
	c.log.Debug().Str("face", e.Name).Msg("clock face loaded")
}

func (c *Controller) refreshFaces() {
	if c.opts.Lister == nil {
		return
	}
	lister := c.opts.Lister
	c.opts.Spawn(func() {
		if c.queue.Closed() {
			return
		}
		names, err := lister.List()
		if err != nil {
			c.log.Warn().Err(err).Msg("failed to list clock faces")
			return
		}
		c.Post(FacesListed{Names: names})
	})
}

func (c *Controller) openPicker() {
	if c.opts.Picker == nil {
		return
	}
	if c.cycler.Len() == 0 {
		c.log.Warn().Msg("no clock faces to pick from")
		return
	}
	picker := c.opts.Picker
	names := c.cycler.Names()
	current := c.cfg.ClockFace
	c.opts.Spawn(func() {
		if c.queue.Closed() {
			return
		}
		name, err := picker.Pick(names, current)
		if err != nil {
			if !errors.Is(err, ErrPickCanceled) {
				c.log.Warn().Err(err).Msg("face picker failed")
			}
			return
		}
		c.Post(FacePicked{Name: name})
	})
}

func (c *Controller) setInfo(msg string) {
	if !c.opts.ShowMessages {
		return
	}
	c.scene.Info = msg
}
