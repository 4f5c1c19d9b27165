package game

import (
	"errors"
	"image"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/draggable-clock/internal/config"
	"github.com/iburimskiy/draggable-clock/internal/overlay"
)

var buttons = [3]ebiten.MouseButton{
	overlay.ButtonLeft:   ebiten.MouseButtonLeft,
	overlay.ButtonRight:  ebiten.MouseButtonRight,
	overlay.ButtonMiddle: ebiten.MouseButtonMiddle,
}

// Game hosts the overlay controller inside the ebiten loop.
type Game struct {
	ctrl *overlay.Controller
	win  *Window
	log  zerolog.Logger

	input   overlay.InputState
	prevKey map[ebiten.Key]bool

	face        *ebiten.Image
	faceVersion int
	lastSecond  time.Time

	started bool
	stop    atomic.Bool
}

func New(ctrl *overlay.Controller, win *Window, logger zerolog.Logger) *Game {
	return &Game{
		ctrl:    ctrl,
		win:     win,
		log:     logger,
		prevKey: map[ebiten.Key]bool{},
	}
}

// Stop ends the loop on the next frame without a close request. Safe to
// call from any goroutine.
func (g *Game) Stop() {
	g.stop.Store(true)
}

func (g *Game) Update() error {
	if !g.started {
		g.started = true
		g.ctrl.Start()
	}
	g.ctrl.Pump()

	if g.stop.Load() {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		g.ctrl.Dispatch(overlay.Closing{})
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	for _, ev := range g.input.Translate(g.readFrame()) {
		g.ctrl.Dispatch(ev)
	}
	if justPressed(ebiten.KeyP) {
		g.ctrl.Dispatch(overlay.OpenPicker{})
	}
	if justPressed(ebiten.KeyEscape) {
		g.ctrl.Dispatch(overlay.Closing{})
	}

	now := time.Now().Truncate(time.Second)
	if !now.Equal(g.lastSecond) {
		g.lastSecond = now
		g.ctrl.Dispatch(overlay.Tick{Now: now})
	}

	g.syncFace()

	if g.ctrl.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) readFrame() overlay.Frame {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()

	f := overlay.Frame{
		Cursor:  image.Pt(x, y),
		WinPos:  g.win.Position(),
		WinSize: g.win.Size(),
		Focused: ebiten.IsFocused(),
		Wheel:   wy,
	}
	for i, b := range buttons {
		f.Pressed[i] = inpututil.IsMouseButtonJustPressed(b)
		f.Released[i] = inpututil.IsMouseButtonJustReleased(b)
	}
	return f
}

// syncFace rebuilds the face texture when the controller swaps images.
func (g *Game) syncFace() {
	s := g.ctrl.Scene()
	if s.FaceVersion == g.faceVersion {
		return
	}
	g.faceVersion = s.FaceVersion
	if g.face != nil {
		g.face.Deallocate()
		g.face = nil
	}
	if s.Face != nil {
		g.face = ebiten.NewImageFromImage(s.Face)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.ctrl.Scene()
	g.drawFace(screen, s)
	g.drawHands(screen, s)
	drawInfo(screen, s)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the borderless window at the saved geometry and blocks until
// the overlay finishes.
func (g *Game) Run(cfg *config.Config) error {
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(config.MinWindowSize, config.MinWindowSize, -1, -1)
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowPosition(cfg.WindowX, cfg.WindowY)
	ebiten.SetWindowTitle(config.AppName)
	ebiten.SetTPS(config.TicksPerSecond)

	g.log.Info().
		Int("x", cfg.WindowX).Int("y", cfg.WindowY).
		Int("w", cfg.WindowW).Int("h", cfg.WindowH).
		Bool("skipTaskbar", cfg.HideTaskbar).
		Msg("starting overlay")

	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       cfg.HideTaskbar,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
